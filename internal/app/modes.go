package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/romellogoodman/monolith/pkg/logging"
)

// runServer starts the MCP server and blocks until it should stop.
//
// Shutdown is triggered by:
//   - SIGINT (Ctrl+C) or SIGTERM
//   - cancellation of ctx
//   - the transport finishing on its own, e.g. stdin reaching EOF
func runServer(ctx context.Context, services *Services) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := services.Server
	if err := srv.Start(ctx); err != nil {
		logging.Error("Server", err, "Failed to start MCP server")
		return err
	}
	logging.Info("Server", "MCP server listening on %s", srv.Endpoint())

	done := make(chan error, 1)
	go func() {
		done <- srv.Wait()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logging.Info("Server", "Shutdown requested")
	case runErr = <-done:
		if runErr != nil {
			logging.Error("Server", runErr, "MCP server stopped unexpectedly")
		} else {
			logging.Info("Server", "Client disconnected")
		}
	}

	if err := srv.Stop(context.Background()); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
