// Package logging provides subsystem-scoped structured logging for monolith,
// built on Go's standard slog package.
//
// # Log Levels
//   - Debug: detailed information for tracing individual tool calls
//   - Info: general messages about server lifecycle
//   - Warn: recoverable problems such as rejected arguments
//   - Error: failures of the dispatch pipeline or transports
//
// Every entry carries a "subsystem" attribute and, for errors, an "error"
// attribute.
//
// # Usage
//
//	logging.InitWithFormat(logging.LevelInfo, logging.FormatJSON, os.Stderr)
//
//	logging.Info("Bootstrap", "Registered %d functions", n)
//	logging.Debug("Dispatch", "Calling %s", name)
//	logging.Error("Server", err, "Transport stopped")
//
// # Output
//
// When serving over stdio, stdout carries protocol frames, so the logger
// must be pointed at stderr (or a file). Messages logged before
// initialization are dropped, except errors, which go to stderr.
package logging
