package cli

import (
	"fmt"
	"io"

	"toolfinder/models"
	"toolfinder/services"
	"toolfinder/services/catalog"

	"github.com/spf13/cobra"
)

func newToolsCommand() *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List catalog tools",
		Long:  "List the catalog tools, optionally filtered by category or ranked by a search query.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && search != "" {
				return fmt.Errorf("--category and --search cannot be combined")
			}

			toolService := services.NewToolService(catalog.MustLoad())

			var tools []models.ToolRecommendation
			switch {
			case category != "":
				found, err := toolService.GetToolsByCategory(category)
				if err != nil {
					return err
				}
				tools = found
			case search != "":
				tools = toolService.SearchTools(search)
			default:
				tools = toolService.GetAllTools()
			}

			printTools(cmd.OutOrStdout(), tools)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list tools in this category")
	cmd.Flags().StringVar(&search, "search", "", "rank tools against a search query")
	return cmd
}

func printTools(w io.Writer, tools []models.ToolRecommendation) {
	if len(tools) == 0 {
		fmt.Fprintln(w, "No tools found.")
		return
	}
	for _, tool := range tools {
		fmt.Fprintf(w, "%-32s %-26s %s\n", tool.Name, tool.Category, tool.URL)
	}
	fmt.Fprintf(w, "\n%d tools\n", len(tools))
}
