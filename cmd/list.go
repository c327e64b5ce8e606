package cmd

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tools offered by the server",
	Long: `Lists every tool the server advertises: the utility functions, named
<category>/<operation>, and the discovery tools.

Examples:
  monolith list
  monolith list --category strings
  monolith list -o table`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	formatter, err := clientOpts.formatter()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	client, err := clientOpts.connect(ctx, cmd, clientOpts.logger(cmd))
	if err != nil {
		return err
	}
	defer client.Close()

	tools := client.GetToolCache()
	if listCategory != "" {
		prefix := strings.ToLower(listCategory) + "/"
		var filtered []mcp.Tool
		for _, tool := range tools {
			if strings.HasPrefix(strings.ToLower(tool.Name), prefix) {
				filtered = append(filtered, tool)
			}
		}
		tools = filtered
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatToolsList(tools))
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	addClientFlags(listCmd)
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only list functions of this category")
	_ = listCmd.RegisterFlagCompletionFunc("category", completeCategories)
}
