// Package app provides application bootstrap and lifecycle management for
// the monolith MCP server.
//
// # Bootstrap
//
// NewApplication performs the complete initialization sequence:
//
//  1. Logging is configured on stderr, since stdout carries the stdio transport
//  2. Configuration is loaded from the config path (or ~/.config/monolith)
//     and MONOLITH_* environment variables
//  3. Command line overrides are applied and the result is validated
//  4. Services are created: function registry, discovery provider, metrics
//     recorder, dispatch router and MCP server
//
// # Running
//
// Run starts the configured transport and blocks until SIGINT/SIGTERM, context
// cancellation, or the end of the stdio input stream, then shuts the server
// down gracefully.
//
// Example:
//
//	cfg := app.NewConfig(debug, configPath)
//	cfg.Transport = "streamable-http"
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//		return err
//	}
//	return application.Run(ctx)
//
// Client-side commands reuse the same bootstrap and talk to
// Services().Server through an in-process MCP client instead of calling Run.
package app
