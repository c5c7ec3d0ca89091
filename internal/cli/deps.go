// Package cli provides the Cobra command tree and the dependency wiring for
// create-llqqnt-plugin. This file defines the Dependencies struct
// (Composition Root) that wires the domain packages together.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/cli/wizard"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/config"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/git"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/project"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/ui"
)

// GitClient is the subset of git the scaffolder needs.
type GitClient interface {
	// UserName returns the configured user.name.
	UserName(ctx context.Context) (string, error)
	// Init creates a repository rooted at dir.
	Init(ctx context.Context, dir string) error
}

// Dependencies holds every service the commands use. Commands reach them
// through the package-level deps variable only.
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Git      GitClient
	FS       project.FileSystem
	Headless *ui.HeadlessManager
	Theme    *ui.Theme

	// Prompter answers the questions flags leave open in interactive mode.
	// Nil selects huh forms.
	Prompter wizard.Prompter
}

// deps is the global dependencies instance, set by InitDependencies or
// SetDeps.
var deps *Dependencies

// InitOptions carries the flag values dependency construction depends on.
type InitOptions struct {
	ConfigPath string
	LogLevel   string // Overrides the configured level when non-empty.
	LogOutput  io.Writer
}

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root that wires config, logging, git, filesystem and UI.
// @MX:REASON: [AUTO] fan_in=3, called from root.go PersistentPreRunE, cli tests
// InitDependencies loads the configuration and creates all dependencies.
func InitDependencies(opts InitOptions) (*Dependencies, error) {
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cfg, err := config.NewLoader(config.WithLogger(slog.New(slog.DiscardHandler))).Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, err := newLogger(opts.LogOutput, level)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Git:      git.NewClient(git.WithLogger(logger)),
		FS:       project.OSFileSystem{},
		Headless: ui.NewHeadlessManager(),
		Theme:    ui.NewTheme(ui.ThemeConfig{}),
	}, nil
}

// newLogger returns an slog.Logger backed by a charmbracelet/log handler.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:  lvl,
		Prefix: "llqqnt",
	})
	return slog.New(handler), nil
}

// GetDeps returns the current Dependencies instance, or nil before
// initialization.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
