package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/romellogoodman/monolith/internal/config"
	"github.com/romellogoodman/monolith/internal/dispatch"
	"github.com/romellogoodman/monolith/internal/metrics"
	"github.com/romellogoodman/monolith/pkg/logging"
)

const (
	// DefaultName and DefaultVersion identify the server during initialization.
	DefaultName    = "monolith"
	DefaultVersion = "1.0.0"

	shutdownTimeout = 5 * time.Second
)

// Config controls how the MCP server is exposed.
type Config struct {
	Transport   string
	Host        string
	Port        int
	MetricsPath string

	Name    string
	Version string

	// Stdin and Stdout are used by the stdio transport. They default to the
	// process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// Server exposes a dispatch router over MCP.
type Server struct {
	config  Config
	router  *dispatch.Router
	metrics *metrics.Recorder

	mcpServer *mcpserver.MCPServer

	// Transport-specific servers
	sseServer            *mcpserver.SSEServer
	streamableHTTPServer *mcpserver.StreamableHTTPServer
	httpServer           *http.Server
	listener             net.Listener

	// Lifecycle management
	cancelFunc context.CancelFunc
	group      *errgroup.Group
	mu         sync.RWMutex
}

// New creates a server and registers every tool the router exposes. The
// recorder may be nil.
func New(cfg Config, router *dispatch.Router, rec *metrics.Recorder) *Server {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = config.DefaultMetricsPath
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	fallback, redirect, hide := unknownToolRoute(router)
	hooks := &mcpserver.Hooks{}
	hooks.AddBeforeCallTool(redirect)

	mcpServer := mcpserver.NewMCPServer(
		cfg.Name,
		cfg.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithHooks(hooks),
		mcpserver.WithToolFilter(hide),
	)
	tools := buildServerTools(router)
	mcpServer.AddTools(append(tools, fallback)...)
	logging.Debug("Server", "Registered %d tools", len(tools))

	return &Server{
		config:    cfg,
		router:    router,
		metrics:   rec,
		mcpServer: mcpServer,
	}
}

// MCPServer returns the underlying mcp-go server, e.g. for in-process clients.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// Start starts the configured transport. HTTP transports are bound before
// Start returns, so Endpoint reports the actual address even for port 0.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.group != nil {
		return fmt.Errorf("server already started")
	}

	runCtx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(runCtx)

	switch s.config.Transport {
	case config.MCPTransportStdio:
		logging.Info("Server", "Starting MCP server with stdio transport")
		stdioServer := mcpserver.NewStdioServer(s.mcpServer)
		group.Go(func() error {
			err := stdioServer.Listen(groupCtx, s.config.Stdin, s.config.Stdout)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("stdio server error: %w", err)
			}
			return nil
		})

	case config.MCPTransportSSE, config.MCPTransportStreamableHTTP:
		if err := s.startHTTP(group); err != nil {
			cancel()
			return err
		}

	default:
		cancel()
		return fmt.Errorf("unsupported transport %q", s.config.Transport)
	}

	s.cancelFunc = cancel
	s.group = group

	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		logging.Warn("Server", "Failed to notify systemd: %v", err)
	} else if ok {
		logging.Debug("Server", "Notified systemd of readiness")
	}
	return nil
}

func (s *Server) startHTTP(group *errgroup.Group) error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprintf("%d", s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	httpServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	switch s.config.Transport {
	case config.MCPTransportSSE:
		logging.Info("Server", "Starting MCP server with SSE transport on %s", listener.Addr())
		s.sseServer = mcpserver.NewSSEServer(
			s.mcpServer,
			mcpserver.WithBaseURL("http://"+listener.Addr().String()),
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
			mcpserver.WithHTTPServer(httpServer),
		)
		mux.Handle("/sse", s.sseServer.SSEHandler())
		mux.Handle("/message", s.sseServer.MessageHandler())

	default:
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", listener.Addr())
		s.streamableHTTPServer = mcpserver.NewStreamableHTTPServer(
			s.mcpServer,
			mcpserver.WithStreamableHTTPServer(httpServer),
		)
		mux.Handle("/mcp", s.streamableHTTPServer)
	}

	mux.Handle(s.config.MetricsPath, s.metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.httpServer = httpServer
	s.listener = listener

	group.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	return nil
}

// Wait blocks until every transport goroutine has finished. For stdio this
// happens when the client closes its input.
func (s *Server) Wait() error {
	s.mu.RLock()
	group := s.group
	s.mu.RUnlock()

	if group == nil {
		return fmt.Errorf("server not started")
	}
	return group.Wait()
}

// Stop shuts the transports down, waiting at most five seconds for
// in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.group == nil {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping MCP server")
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	cancelFunc := s.cancelFunc
	group := s.group
	sseServer := s.sseServer
	streamableServer := s.streamableHTTPServer
	s.mu.Unlock()

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Both transports own the shared http.Server and shut it down.
	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
		}
	}
	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
		}
	}

	// Stdio stops on context cancellation.
	cancelFunc()
	err := group.Wait()

	s.mu.Lock()
	s.group = nil
	s.cancelFunc = nil
	s.sseServer = nil
	s.streamableHTTPServer = nil
	s.httpServer = nil
	s.listener = nil
	s.mu.Unlock()

	return err
}

// Endpoint returns the URL clients connect to, or "stdio".
func (s *Server) Endpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addr := net.JoinHostPort(s.config.Host, fmt.Sprintf("%d", s.config.Port))
	if s.listener != nil {
		addr = s.listener.Addr().String()
	}

	switch s.config.Transport {
	case config.MCPTransportSSE:
		return fmt.Sprintf("http://%s/sse", addr)
	case config.MCPTransportStreamableHTTP:
		return fmt.Sprintf("http://%s/mcp", addr)
	default:
		return "stdio"
	}
}
