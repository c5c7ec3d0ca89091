package config

import (
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/naming"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

// Default value constants.
const (
	DefaultNamespace = naming.Product
	DefaultLogLevel  = "warn"
	DefaultType      = string(models.PluginTypeExtension)
	DefaultVersion   = "1.0.0"
	DefaultNPM       = false
	DefaultGit       = true
	DefaultBranch    = "main"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LLQQNT_"
)

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Namespace: DefaultNamespace,
		LogLevel:  DefaultLogLevel,
		Defaults: DefaultsConfig{
			Type:      DefaultType,
			Platforms: DefaultPlatforms(),
			Version:   DefaultVersion,
			NPM:       DefaultNPM,
			Git:       DefaultGit,
		},
		Repository: RepositoryConfig{
			Branch: DefaultBranch,
		},
	}
}

// DefaultPlatforms returns every supported platform.
func DefaultPlatforms() []string {
	platforms := models.ValidPlatforms()
	out := make([]string, len(platforms))
	for i, p := range platforms {
		out[i] = string(p)
	}
	return out
}
