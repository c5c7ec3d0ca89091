package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/defs"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/version"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
	create     createOptions
}

// NewRootCmd builds the command tree. The root command scaffolds a project;
// subcommands inspect existing ones.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   defs.AppName + " [project-name]",
		Short: "Scaffold a LiteLoaderQQNT plugin",
		Long: `create-llqqnt-plugin asks a few questions and creates a ready-to-edit
LiteLoaderQQNT plugin: manifest.json, the main, preload and renderer
scripts, and optionally package.json and a git repository.

Flags answer questions up front. With --yes, or when stdin/stdout is not a
terminal, every unanswered question takes its default.`,
		Version:      version.GetVersion(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if deps != nil {
				return nil
			}
			d, err := InitDependencies(InitOptions{
				ConfigPath: opts.configPath,
				LogLevel:   opts.logLevel,
				LogOutput:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			deps = d
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, &opts.create)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("%s %s\n", defs.AppName, version.GetFullVersion()))

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $UserConfigDir/create-llqqnt-plugin/config.yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	opts.create.register(cmd)
	cmd.AddCommand(newCheckCmd())

	return cmd
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the create-llqqnt-plugin CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/create-llqqnt-plugin/main.go, cli tests
// Execute runs the root command. Cancelling ctx interrupts the wizard.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
