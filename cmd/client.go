package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/romellogoodman/monolith/internal/agent"
	"github.com/romellogoodman/monolith/internal/app"
	monolithctx "github.com/romellogoodman/monolith/internal/context"
	"github.com/romellogoodman/monolith/internal/formatting"
	"github.com/romellogoodman/monolith/internal/functions"
)

// clientOptions holds the flags shared by every command that talks to a
// monolith server.
type clientOptions struct {
	endpoint   string
	context    string
	transport  string
	configPath string
	output     string
	quiet      bool
	verbose    bool
	noColor    bool
}

var clientOpts = defaultClientOptions()

// contextStorage opens the contexts file; tests point it at a temp dir.
var contextStorage = monolithctx.NewStorage

func defaultClientOptions() clientOptions {
	return clientOptions{
		transport: string(agent.TransportStreamableHTTP),
		output:    string(formatting.FormatConsole),
	}
}

// addClientFlags binds the shared client flags to cmd.
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&clientOpts.endpoint, "endpoint", clientOpts.endpoint, "MCP endpoint of a running server (default: the selected context, else an in-process server)")
	cmd.Flags().StringVar(&clientOpts.context, "context", clientOpts.context, "Named context to connect to (see 'monolith context')")
	cmd.Flags().StringVar(&clientOpts.transport, "transport", clientOpts.transport, "Transport for --endpoint (streamable-http, sse)")
	cmd.Flags().StringVar(&clientOpts.configPath, "config-path", clientOpts.configPath, "Configuration file or directory for the in-process server")
	cmd.Flags().StringVarP(&clientOpts.output, "output", "o", clientOpts.output, "Output format (console, json, yaml, table)")
	cmd.Flags().BoolVarP(&clientOpts.quiet, "quiet", "q", clientOpts.quiet, "Suppress decorative output")
	cmd.Flags().BoolVar(&clientOpts.verbose, "verbose", clientOpts.verbose, "Enable verbose logging")
	cmd.Flags().BoolVar(&clientOpts.noColor, "no-color", clientOpts.noColor, "Disable colored output")
	_ = cmd.RegisterFlagCompletionFunc("context", completeContextNames)
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		return clientOpts.applyContext(cmd)
	}
}

// applyContext fills endpoint, transport and output from the selected
// context. Flags set on the command line are left alone, and nothing is
// resolved when --endpoint is given.
func (o *clientOptions) applyContext(cmd *cobra.Command) error {
	if o.endpoint != "" {
		return nil
	}

	storage, err := contextStorage()
	if err != nil {
		return fmt.Errorf("failed to initialize context storage: %w", err)
	}
	selected, err := storage.Resolve(o.context)
	if err != nil {
		return err
	}
	if selected == nil {
		return nil
	}

	o.endpoint = selected.Endpoint
	if selected.Transport != "" && !cmd.Flags().Changed("transport") {
		o.transport = selected.Transport
	}
	if selected.Settings != nil && selected.Settings.Output != "" && !cmd.Flags().Changed("output") {
		o.output = selected.Settings.Output
	}
	return nil
}

// formatOptions validates --output and --quiet.
func (o clientOptions) formatOptions() (formatting.Options, error) {
	format, ok := formatting.ParseFormat(strings.ToLower(o.output))
	if !ok {
		return formatting.Options{}, fmt.Errorf("unsupported output format %q (supported: %v)", o.output, formatting.Formats)
	}
	return formatting.Options{Format: format, Quiet: o.quiet}, nil
}

// formatter builds the formatter selected by --output.
func (o clientOptions) formatter() (formatting.Formatter, error) {
	options, err := o.formatOptions()
	if err != nil {
		return nil, err
	}
	return formatting.NewFactory().CreateFormatter(options), nil
}

// logger writes status messages to the command's stderr and results to its
// stdout.
func (o clientOptions) logger(cmd *cobra.Command) *agent.Logger {
	return agent.NewLoggerWithWriter(o.verbose, !o.noColor, cmd.ErrOrStderr(), cmd.OutOrStdout())
}

// connect returns a connected client. Without an endpoint an in-process server
// is bootstrapped from the local configuration.
func (o clientOptions) connect(ctx context.Context, cmd *cobra.Command, logger *agent.Logger) (*agent.Client, error) {
	var client *agent.Client

	if o.endpoint == "" {
		logOutput := io.Discard
		if o.verbose {
			logOutput = cmd.ErrOrStderr()
		}
		cfg := app.NewConfig(o.verbose, o.configPath)
		cfg.Version = rootCmd.Version
		cfg.LogOutput = logOutput

		application, err := app.NewApplication(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize in-process server: %w", err)
		}
		client = agent.NewInProcessClient(application.Services().Server.MCPServer(), logger)
	} else {
		var transport agent.TransportType
		switch o.transport {
		case string(agent.TransportSSE):
			transport = agent.TransportSSE
		case string(agent.TransportStreamableHTTP):
			transport = agent.TransportStreamableHTTP
		default:
			return nil, fmt.Errorf("unsupported transport: %s (supported: streamable-http, sse)", o.transport)
		}
		client = agent.NewClient(o.endpoint, logger, transport)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", client.Endpoint(), err)
	}
	return client, nil
}

// commandContext returns the command's context, or a background one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// completeFunctionNames offers catalog names for shell completion without
// contacting a server.
func completeFunctionNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := functions.NewRegistry(functions.Options{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, entry := range reg.Store().All() {
		if strings.HasPrefix(entry.Name, toComplete) {
			names = append(names, entry.Name)
		}
	}
	sort.Strings(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeCategories offers catalog categories for shell completion.
func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, err := functions.NewRegistry(functions.Options{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, c := range reg.Store().Categories() {
		if strings.HasPrefix(c.Name, toComplete) {
			names = append(names, c.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
