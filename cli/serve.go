package cli

import (
	"fmt"
	"log"
	"net/http"

	"toolfinder/handlers"

	"github.com/spf13/cobra"
)

func newServeCommand(load AppLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				log.Fatalf("[ERROR] Failed to initialize application: %v", err)
			}
			defer a.Close()

			addr := a.Config.Addr()
			log.Printf("[INFO] Server starting on %s", addr)

			if err := http.ListenAndServe(addr, handlers.NewRouter(a)); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}
}
