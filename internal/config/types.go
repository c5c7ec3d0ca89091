package config

// Config is the root configuration. Every field can be set in config.yaml
// and overridden by an LLQQNT_ environment variable.
type Config struct {
	Namespace   string           `yaml:"namespace" env:"NAMESPACE"`
	TemplateDir string           `yaml:"template_dir" env:"TEMPLATE_DIR"`
	LogLevel    string           `yaml:"log_level" env:"LOG_LEVEL"`
	Defaults    DefaultsConfig   `yaml:"defaults" envPrefix:"DEFAULT_"`
	Repository  RepositoryConfig `yaml:"repository" envPrefix:"REPOSITORY_"`
}

// DefaultsConfig holds the initial values the wizard offers.
type DefaultsConfig struct {
	Type      string   `yaml:"type" env:"TYPE"`
	Platforms []string `yaml:"platforms" env:"PLATFORMS" envSeparator:","`
	Version   string   `yaml:"version" env:"VERSION"`
	NPM       bool     `yaml:"npm" env:"NPM"`
	Git       bool     `yaml:"git" env:"GIT"`
}

// RepositoryConfig configures the optional manifest repository record.
type RepositoryConfig struct {
	Owner  string `yaml:"owner" env:"OWNER"`
	Branch string `yaml:"branch" env:"BRANCH"`
}
