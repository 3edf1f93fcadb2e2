// Package cli defines the toolfinder command tree.
package cli

import (
	"fmt"

	"toolfinder/app"
	"toolfinder/config"

	"github.com/spf13/cobra"
)

// AppLoader builds the application for commands that need it.
type AppLoader func() (*app.App, error)

// LoadApp reads configuration and wires the full application.
func LoadApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return app.New(cfg)
}

// NewRootCommand returns the root command with every subcommand attached.
func NewRootCommand(load AppLoader) *cobra.Command {
	root := &cobra.Command{
		Use:   app.Name,
		Short: "Educational tool recommendations for teachers",
		Long: `toolfinder maps a teacher's request in plain language onto a catalog of
educational tools, remembers what each teacher asked for and personalizes
later recommendations.

It runs as an HTTP service, as an MCP server on stdio, or as one-off
commands for classifying a query and browsing the catalog.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(load),
		newClassifyCommand(load),
		newToolsCommand(),
		newMCPCommand(load),
		newMemoryCommand(),
		newVersionCommand(),
	)

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Name, app.Version)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand(LoadApp).Execute()
}
