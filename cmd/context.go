package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	monolithctx "github.com/romellogoodman/monolith/internal/context"
	"github.com/romellogoodman/monolith/internal/formatting"
)

var (
	contextQuiet     bool
	contextEndpoint  string
	contextTransport string
	contextOutput    string
	contextSetUse    bool
	contextForce     bool
	contextShowAs    string
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Manage named server endpoints",
	Long: `Manage named contexts pointing at running monolith servers, so client
commands can reach them without --endpoint.

Examples:
  monolith context                                  # List contexts
  monolith context add local --endpoint http://localhost:8090/mcp --use
  monolith context add edge --endpoint https://edge.example.com/sse --transport sse
  monolith context use edge                         # Switch (alias: switch)
  monolith context current                          # Print the current context
  monolith context show edge -o json                # Show details
  monolith context update edge --endpoint <url>     # Change a context (alias: set)
  monolith context rename edge edge-eu
  monolith context delete edge-eu --force           # Remove (alias: rm)

Contexts are stored in ~/.config/monolith/contexts.yaml.

Client commands pick their server from, highest first:
  1. --endpoint flag
  2. --context flag
  3. MONOLITH_CONTEXT environment variable
  4. current-context from contexts.yaml
  5. an in-process server`,
	Args: cobra.NoArgs,
	RunE: runContextList,
}

var contextListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all contexts",
	Args:    cobra.NoArgs,
	RunE:    runContextList,
}

var contextCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current context name",
	Long:  `Prints the current context name, or nothing when none is selected.`,
	Args:  cobra.NoArgs,
	RunE:  runContextCurrent,
}

var contextUseCmd = &cobra.Command{
	Use:               "use <name>",
	Aliases:           []string{"switch"},
	Short:             "Switch the current context",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeContextNames,
	RunE:              runContextUse,
}

var contextAddCmd = &cobra.Command{
	Use:   "add <name> --endpoint <url>",
	Short: "Add a new context",
	Long: `Adds a named context. Names are 1-63 lowercase letters, numbers and
hyphens, starting and ending with a letter or number.`,
	Args: cobra.ExactArgs(1),
	RunE: runContextAdd,
}

var contextUpdateCmd = &cobra.Command{
	Use:               "update <name> --endpoint <url>",
	Aliases:           []string{"set"},
	Short:             "Replace the settings of a context",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeContextNames,
	RunE:              runContextUpdate,
}

var contextDeleteCmd = &cobra.Command{
	Use:               "delete <name>",
	Aliases:           []string{"rm", "remove"},
	Short:             "Delete a context",
	Long:              `Deletes a context after confirmation. Deleting the current context unsets it.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeContextNames,
	RunE:              runContextDelete,
}

var contextRenameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a context",
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return completeContextNames(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runContextRename,
}

var contextShowCmd = &cobra.Command{
	Use:               "show <name>",
	Aliases:           []string{"describe", "get"},
	Short:             "Show context details",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeContextNames,
	RunE:              runContextShow,
}

func init() {
	rootCmd.AddCommand(contextCmd)
	contextCmd.AddCommand(contextListCmd, contextCurrentCmd, contextUseCmd, contextAddCmd,
		contextUpdateCmd, contextDeleteCmd, contextRenameCmd, contextShowCmd)

	contextCmd.PersistentFlags().BoolVarP(&contextQuiet, "quiet", "q", false, "Suppress non-essential output")

	for _, c := range []*cobra.Command{contextAddCmd, contextUpdateCmd} {
		c.Flags().StringVar(&contextEndpoint, "endpoint", "", "MCP endpoint URL (required)")
		c.Flags().StringVar(&contextTransport, "transport", "", "Transport for the endpoint (streamable-http, sse)")
		c.Flags().StringVar(&contextOutput, "output-format", "", "Default output format for client commands")
		_ = c.MarkFlagRequired("endpoint")
	}
	contextAddCmd.Flags().BoolVar(&contextSetUse, "use", false, "Make the new context current")
	contextDeleteCmd.Flags().BoolVarP(&contextForce, "force", "f", false, "Skip the confirmation prompt")
	contextShowCmd.Flags().StringVarP(&contextShowAs, "output", "o", string(formatting.FormatConsole), "Output format (console, json, yaml, table)")
}

func completeContextNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	storage, err := contextStorage()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := storage.Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func openContextStorage() (*monolithctx.Storage, error) {
	storage, err := contextStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context storage: %w", err)
	}
	return storage, nil
}

// contextFromFlags builds a context from the add/update flags.
func contextFromFlags(name string) (monolithctx.Context, error) {
	ctx := monolithctx.Context{Name: name, Endpoint: contextEndpoint, Transport: contextTransport}
	if contextOutput != "" {
		if _, ok := formatting.ParseFormat(contextOutput); !ok {
			return ctx, fmt.Errorf("unsupported output format %q (supported: %v)", contextOutput, formatting.Formats)
		}
		ctx.Settings = &monolithctx.Settings{Output: contextOutput}
	}
	return ctx, nil
}

func runContextList(cmd *cobra.Command, args []string) error {
	storage, err := openContextStorage()
	if err != nil {
		return err
	}
	cfg, err := storage.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cfg.Contexts) == 0 {
		if !contextQuiet {
			fmt.Fprintln(out, "No contexts configured yet.")
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, "Add one with:")
			fmt.Fprintln(out, "  monolith context add local --endpoint http://localhost:8090/mcp --use")
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CURRENT\tNAME\tENDPOINT\tTRANSPORT")
	for _, c := range cfg.Contexts {
		current := ""
		if c.Name == cfg.CurrentContext {
			current = "*"
		}
		transport := c.Transport
		if transport == "" {
			transport = "streamable-http"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", current, c.Name, c.Endpoint, transport)
	}
	return w.Flush()
}

func runContextCurrent(cmd *cobra.Command, args []string) error {
	storage, err := openContextStorage()
	if err != nil {
		return err
	}
	cfg, err := storage.Load()
	if err != nil {
		return err
	}
	if cfg.CurrentContext != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cfg.CurrentContext)
	}
	return nil
}

func runContextUse(cmd *cobra.Command, args []string) error {
	storage, err := openContextStorage()
	if err != nil {
		return err
	}
	if err := storage.Use(args[0]); err != nil {
		var notFound *monolithctx.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w. Use 'monolith context list' to see available contexts", err)
		}
		return fmt.Errorf("failed to set current context: %w", err)
	}
	if !contextQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Switched to context %q\n", args[0])
	}
	return nil
}

func runContextAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	storage, err := openContextStorage()
	if err != nil {
		return err
	}
	ctx, err := contextFromFlags(name)
	if err != nil {
		return err
	}
	if err := storage.Add(ctx); err != nil {
		return fmt.Errorf("failed to add context: %w", err)
	}

	out := cmd.OutOrStdout()
	if !contextQuiet {
		fmt.Fprintf(out, "Context %q added.\n", name)
	}
	if contextSetUse {
		if err := storage.Use(name); err != nil {
			return fmt.Errorf("failed to set current context: %w", err)
		}
		if !contextQuiet {
			fmt.Fprintf(out, "Switched to context %q\n", name)
		}
	}
	return nil
}

func runContextUpdate(cmd *cobra.Command, args []string) error {
	storage, err := openContextStorage()
	if err != nil {
		return err
	}
	ctx, err := contextFromFlags(args[0])
	if err != nil {
		return err
	}
	if err := storage.Update(ctx); err != nil {
		var notFound *monolithctx.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w. Use 'monolith context add' to create it", err)
		}
		return fmt.Errorf("failed to update context: %w", err)
	}
	if !contextQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Context %q updated.\n", args[0])
	}
	return nil
}

func runContextDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	storage, err := openContextStorage()
	if err != nil {
		return err
	}
	cfg, err := storage.Load()
	if err != nil {
		return err
	}
	if cfg.Get(name) == nil {
		return &monolithctx.NotFoundError{Name: name}
	}
	wasCurrent := cfg.CurrentContext == name

	out := cmd.OutOrStdout()
	if !contextForce {
		prompt := fmt.Sprintf("Delete context %q?", name)
		if wasCurrent {
			prompt = fmt.Sprintf("Delete context %q (current context)?", name)
		}
		if !confirmAction(cmd.InOrStdin(), out, prompt) {
			if !contextQuiet {
				fmt.Fprintln(out, "Aborted.")
			}
			return nil
		}
	}

	if err := storage.Delete(name); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}
	if !contextQuiet {
		fmt.Fprintf(out, "Context %q deleted.\n", name)
		if wasCurrent {
			fmt.Fprintln(out, "Note: this was the current context. Current context is now unset.")
		}
	}
	return nil
}

func runContextRename(cmd *cobra.Command, args []string) error {
	storage, err := openContextStorage()
	if err != nil {
		return err
	}
	if err := storage.Rename(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to rename context: %w", err)
	}
	if !contextQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Context %q renamed to %q.\n", args[0], args[1])
	}
	return nil
}

func runContextShow(cmd *cobra.Command, args []string) error {
	format, ok := formatting.ParseFormat(strings.ToLower(contextShowAs))
	if !ok {
		return fmt.Errorf("unsupported output format %q (supported: %v)", contextShowAs, formatting.Formats)
	}

	storage, err := openContextStorage()
	if err != nil {
		return err
	}
	cfg, err := storage.Load()
	if err != nil {
		return err
	}
	ctx := cfg.Get(args[0])
	if ctx == nil {
		return &monolithctx.NotFoundError{Name: args[0]}
	}

	details := map[string]interface{}{
		"name":     ctx.Name,
		"endpoint": ctx.Endpoint,
		"current":  cfg.CurrentContext == ctx.Name,
	}
	if ctx.Transport != "" {
		details["transport"] = ctx.Transport
	}
	if ctx.Settings != nil && ctx.Settings.Output != "" {
		details["output"] = ctx.Settings.Output
	}

	formatter := formatting.NewFactory().CreateFormatter(formatting.Options{Format: format})
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatData(details))
	return nil
}

// confirmAction asks a yes/no question on out and reads the answer from in.
func confirmAction(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
