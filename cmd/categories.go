package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List function categories",
	Long:  `Lists every function category with its description and function count.`,
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
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

	resp, err := client.Categories(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCategories(*resp))
	return nil
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	addClientFlags(categoriesCmd)
}
