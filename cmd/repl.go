package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romellogoodman/monolith/internal/agent"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Explore and call functions interactively",
	Long: `Starts an interactive session with tab completion and command history.

Inside the REPL:
  list [category]                  List tools
  search <query> [category=<c>]    Search functions
  categories                       List categories
  describe <name>                  Show a function
  call <tool> key=value ...        Call a tool
  format <console|json|yaml|table> Change the output format
  help, exit

Without --endpoint the REPL runs against an in-process server.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func runREPL(cmd *cobra.Command, args []string) error {
	options, err := clientOpts.formatOptions()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	logger := clientOpts.logger(cmd)
	client, err := clientOpts.connect(ctx, cmd, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	repl := agent.NewREPL(client, logger, options)
	if err := repl.Run(ctx); err != nil {
		return fmt.Errorf("REPL error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(replCmd)
	addClientFlags(replCmd)
}
