package cli

import (
	"fmt"

	"toolfinder/config"
	"toolfinder/services/memory"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/spf13/cobra"
)

func newMemoryCommand() *cobra.Command {
	memoryCmd := &cobra.Command{
		Use:   "memory",
		Short: "Memory store maintenance",
	}

	memoryCmd.AddCommand(&cobra.Command{
		Use:   "init-index",
		Short: "Create the Pinecone memory index when it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.PineconeAPIKey == "" {
				return fmt.Errorf("PINECONE_API_KEY environment variable is required")
			}

			pc, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: cfg.PineconeAPIKey})
			if err != nil {
				return fmt.Errorf("failed to create Pinecone client: %w", err)
			}

			if err := memory.EnsureIndex(cmd.Context(), pc, cfg.PineconeIndexName); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Index %s is ready\n", cfg.PineconeIndexName)
			return nil
		},
	})

	return memoryCmd
}
