package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romellogoodman/monolith/internal/app"
	"github.com/romellogoodman/monolith/internal/config"
)

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveConfigPath names a configuration file or a directory holding
// config.yaml, config.yml or config.toml.
var serveConfigPath string

// serveTransport, serveHost and servePort override the configured listener.
var (
	serveTransport string
	serveHost      string
	servePort      int
)

// serveCmd defines the serve command structure.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the monolith MCP server",
	Long: `Starts the MCP server exposing the utility function catalog and the
discovery tools (search_functions, list_categories, describe_function).

Transports:
  stdio (default)    JSON-RPC over standard input and output, for MCP hosts
                     that launch monolith as a subprocess
  streamable-http    MCP endpoint at http://<host>:<port>/mcp
  sse                MCP endpoint at http://<host>:<port>/sse

The HTTP transports also serve Prometheus metrics (default /metrics) and a
/healthz health check.

Configuration:
  Settings are layered: built-in defaults, then the configuration file, then
  MONOLITH_* environment variables, then the flags below.

  The configuration file is looked up in ~/.config/monolith unless
  --config-path names a file or directory. Example config.yaml:

    server:
      transport: streamable-http
      host: localhost
      port: 8090
      metricsPath: /metrics
    logging:
      level: info
      format: text
    functions:
      timezone: UTC

  Environment variables: MONOLITH_SERVER_TRANSPORT, MONOLITH_SERVER_HOST,
  MONOLITH_SERVER_PORT, MONOLITH_SERVER_METRICS_PATH, MONOLITH_LOGGING_LEVEL,
  MONOLITH_LOGGING_FORMAT, MONOLITH_FUNCTIONS_TIMEZONE.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveDebug, serveConfigPath)
	cfg.Transport = serveTransport
	cfg.Host = serveHost
	cfg.Port = servePort
	cfg.Version = rootCmd.Version
	cfg.Stdin = cmd.InOrStdin()
	cfg.Stdout = cmd.OutOrStdout()
	cfg.LogOutput = cmd.ErrOrStderr()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Configuration file or directory (default: ~/.config/monolith)")
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", fmt.Sprintf("MCP transport: %v (default from config: %s)", config.Transports, config.DefaultTransport))
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host for HTTP transports")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port for HTTP transports")
}
