package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	tfmcp "toolfinder/mcp"

	"github.com/spf13/cobra"
)

func newMCPCommand(load AppLoader) *cobra.Command {
	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the toolfinder MCP (Model Context Protocol) server.",
	}

	mcpCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start the toolfinder MCP server on stdio transport.

The server exposes recommend_tools, list_tools, get_categories, search_tools
and get_user_insights. Logs go to stderr because stdout carries the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(os.Stderr)

			a, err := load()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if err := tfmcp.NewServer(a).Run(ctx); err != nil {
				return fmt.Errorf("running MCP server: %w", err)
			}
			return nil
		},
	})

	return mcpCmd
}
