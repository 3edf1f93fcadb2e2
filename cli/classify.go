package cli

import (
	"fmt"
	"strings"

	"toolfinder/models"

	"github.com/spf13/cobra"
)

func newClassifyCommand(load AppLoader) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "classify <query>",
		Short: "Recommend tools for a query and print the response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.Chat.Process(cmd.Context(), &models.ChatRequest{
				Query:  strings.Join(args, " "),
				UserID: userID,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Query type: %s (confidence %.2f)\n\n", result.QueryType, result.ConfidenceScore)
			fmt.Fprintln(out, result.ResponseText)

			if len(result.Recommendations) > 0 {
				fmt.Fprintln(out, "\nRecommendations:")
				for i, rec := range result.Recommendations {
					fmt.Fprintf(out, "  %d. %s - %s\n", i+1, rec.Name, rec.URL)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "user identifier for memory and personalization")
	return cmd
}
