package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <function>",
	Short: "Show the full description of a function",
	Long: `Shows parameters, return type, examples and tags of one function using
the describe_function discovery tool.

Examples:
  monolith describe strings/truncate
  monolith describe dates/formatDate -o yaml`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeFunctionNames,
	RunE:              runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
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

	entry, err := client.Describe(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFunction(*entry))
	return nil
}

func init() {
	rootCmd.AddCommand(describeCmd)
	addClientFlags(describeCmd)
}
