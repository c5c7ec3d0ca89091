package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Namespace != "LiteLoaderQQNT" {
		t.Errorf("Namespace = %q", cfg.Namespace)
	}
	if cfg.Defaults.Type != "extension" || cfg.Defaults.Version != "1.0.0" {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if cfg.Defaults.NPM || !cfg.Defaults.Git {
		t.Errorf("toggles: npm=%v git=%v, want false/true", cfg.Defaults.NPM, cfg.Defaults.Git)
	}
	if !slices.Equal(cfg.Defaults.Platforms, []string{"win32", "linux", "darwin"}) {
		t.Errorf("Platforms = %v", cfg.Defaults.Platforms)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
namespace: LLQQNT
log_level: debug
defaults:
  type: theme
  platforms: [linux]
  version: 0.1.0
  git: false
repository:
  owner: octocat
`)

	cfg, err := NewLoader(WithEnvironment(map[string]string{})).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Namespace != "LLQQNT" || cfg.LogLevel != "debug" {
		t.Errorf("top level = %q/%q", cfg.Namespace, cfg.LogLevel)
	}
	if cfg.Defaults.Type != "theme" || cfg.Defaults.Version != "0.1.0" || cfg.Defaults.Git {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if !slices.Equal(cfg.Defaults.Platforms, []string{"linux"}) {
		t.Errorf("Platforms = %v", cfg.Defaults.Platforms)
	}
	// Unset fields keep their defaults.
	if cfg.Repository.Branch != DefaultBranch {
		t.Errorf("Branch = %q, want default", cfg.Repository.Branch)
	}
	if cfg.Repository.Owner != "octocat" {
		t.Errorf("Owner = %q", cfg.Repository.Owner)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "defaults:\n  type: theme\n  npm: false\n")
	environ := map[string]string{
		"LLQQNT_DEFAULT_TYPE":      "framework",
		"LLQQNT_DEFAULT_NPM":       "true",
		"LLQQNT_DEFAULT_PLATFORMS": "win32,darwin",
		"LLQQNT_NAMESPACE":         "Custom",
	}

	cfg, err := NewLoader(WithEnvironment(environ)).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Type != "framework" {
		t.Errorf("Type = %q, want env value", cfg.Defaults.Type)
	}
	if !cfg.Defaults.NPM {
		t.Error("NPM = false, want env value true")
	}
	if !slices.Equal(cfg.Defaults.Platforms, []string{"win32", "darwin"}) {
		t.Errorf("Platforms = %v", cfg.Defaults.Platforms)
	}
	if cfg.Namespace != "Custom" {
		t.Errorf("Namespace = %q", cfg.Namespace)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	path := writeConfig(t, "")
	environ := map[string]string{"LLQQNT_DEFAULT_GIT": "maybe"}

	_, err := NewLoader(WithEnvironment(environ)).Load(path)
	if !errors.Is(err, ErrInvalidEnv) {
		t.Errorf("err = %v, want ErrInvalidEnv", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := NewLoader(WithEnvironment(map[string]string{})).Load(path)
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := NewLoader(WithEnvironment(map[string]string{})).Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Namespace != DefaultNamespace {
		t.Errorf("Namespace = %q, want default", cfg.Namespace)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "defaults: [unclosed\n")

	_, err := NewLoader(WithEnvironment(map[string]string{})).Load(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("err = %v, want ErrInvalidYAML", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
		wantErr   error
	}{
		{"bad type", func(c *Config) { c.Defaults.Type = "widget" }, "defaults.type", ErrInvalidConfig},
		{"bad platform", func(c *Config) { c.Defaults.Platforms = []string{"linux", "beos"} }, "defaults.platforms[1]", ErrInvalidConfig},
		{"bad version", func(c *Config) { c.Defaults.Version = "1.0" }, "defaults.version", ErrInvalidConfig},
		{"namespace with space", func(c *Config) { c.Namespace = "Lite Loader" }, "namespace", ErrInvalidConfig},
		{"empty namespace", func(c *Config) { c.Namespace = "" }, "namespace", ErrInvalidConfig},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level", ErrInvalidConfig},
		{"branch with space", func(c *Config) { c.Repository.Branch = "my branch" }, "repository.branch", ErrInvalidConfig},
		{"dynamic token", func(c *Config) { c.TemplateDir = "${HOME}/templates" }, "template_dir", ErrDynamicToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("err = %T, want *ValidationErrors", err)
			}
			found := false
			for _, ve := range verrs.Errors {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q in %v", tt.wantField, err)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	err := &ValidationErrors{Errors: []ValidationError{
		{Field: "a", Message: "bad", Value: 1},
		{Field: "b", Message: "worse"},
	}}
	want := `validation failed with 2 error(s): validation error: field "a": bad (got: 1); validation error: field "b": worse`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q\nwant     %q", got, want)
	}
}
