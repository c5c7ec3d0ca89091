package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/validate"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

// Dynamic token patterns that must not appear in configuration values.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// validLogLevels lists the accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for correctness and returns
// *ValidationErrors listing every problem found.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, checkField("namespace", cfg.Namespace, validate.FileName)...)
	errs = append(errs, validateLogLevel(cfg.LogLevel)...)
	errs = append(errs, validateDefaults(&cfg.Defaults)...)
	errs = append(errs, checkField("repository.owner", cfg.Repository.Owner,
		validate.Optional(validate.Chain(validate.ASCIIPrintable, validate.NoWhitespace)))...)
	errs = append(errs, checkField("repository.branch", cfg.Repository.Branch,
		validate.Optional(validate.NoWhitespace))...)
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateLogLevel(level string) []ValidationError {
	if level == "" || slices.Contains(validLogLevels, strings.ToLower(level)) {
		return nil
	}
	return []ValidationError{{
		Field:   "log_level",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		Value:   level,
		Wrapped: ErrInvalidConfig,
	}}
}

func validateDefaults(d *DefaultsConfig) []ValidationError {
	var errs []ValidationError

	if !models.PluginType(d.Type).IsValid() {
		errs = append(errs, ValidationError{
			Field:   "defaults.type",
			Message: "must be one of: extension, theme, framework",
			Value:   d.Type,
			Wrapped: ErrInvalidConfig,
		})
	}

	for i, p := range d.Platforms {
		if !models.Platform(p).IsValid() {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("defaults.platforms[%d]", i),
				Message: "must be one of: win32, linux, darwin",
				Value:   p,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	errs = append(errs, checkField("defaults.version", d.Version, validate.SemVer)...)
	return errs
}

// checkField runs a wizard validator against a config value.
func checkField(field, value string, fn validate.Func) []ValidationError {
	if err := fn(value); err != nil {
		return []ValidationError{{
			Field:   field,
			Message: err.Error(),
			Value:   value,
			Wrapped: ErrInvalidConfig,
		}}
	}
	return nil
}

func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError
	errs = append(errs, checkStringField("namespace", cfg.Namespace)...)
	errs = append(errs, checkStringField("template_dir", cfg.TemplateDir)...)
	errs = append(errs, checkStringField("repository.owner", cfg.Repository.Owner)...)
	return errs
}

func checkStringField(field, value string) []ValidationError {
	for _, p := range dynamicTokenPatterns {
		if p.MatchString(value) {
			return []ValidationError{{
				Field:   field,
				Message: "contains unexpanded dynamic token",
				Value:   value,
				Wrapped: ErrDynamicToken,
			}}
		}
	}
	return nil
}
