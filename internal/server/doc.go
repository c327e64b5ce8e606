// Package server exposes the dispatch router as an MCP server.
//
// Every tool returned by the router's listing is registered with
// github.com/mark3labs/mcp-go, and every registered handler calls back into
// the same router, so the advertised tool set and the dispatchable tool set
// cannot drift apart.
//
// # Transports
//
//   - stdio: JSON-RPC over the process streams (default)
//   - streamable-http: POST/GET/DELETE on /mcp
//   - sse: event stream on /sse, client messages on /message
//
// The HTTP transports additionally serve Prometheus metrics on the configured
// metrics path and a liveness check on /healthz.
//
// # Lifecycle
//
//	srv := server.New(cfg, router, recorder)
//	if err := srv.Start(ctx); err != nil {
//		return err
//	}
//	defer srv.Stop(context.Background())
//
// Start binds HTTP listeners synchronously and notifies systemd once the
// transport is ready. Stop gives in-flight requests five seconds to finish.
package server
