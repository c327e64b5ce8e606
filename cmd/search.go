package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCategory string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search functions by keyword",
	Long: `Searches function names, descriptions, categories and tags for the query
(case-insensitive) using the search_functions discovery tool.

Examples:
  monolith search case
  monolith search valid --category validation
  monolith search "base 64" -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	resp, err := client.Search(ctx, strings.Join(args, " "), searchCategory)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSearch(*resp))
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addClientFlags(searchCmd)
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Restrict the search to one category")
	_ = searchCmd.RegisterFlagCompletionFunc("category", completeCategories)
}
