package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/metatools"
)

// TransportType defines the transport type for MCP connections
type TransportType string

const (
	TransportSSE            TransportType = "sse"
	TransportStreamableHTTP TransportType = "streamable-http"
	TransportInProcess      TransportType = "in-process"
)

const defaultTimeout = 30 * time.Second

// ErrNotConnected is returned by operations issued before Connect.
var ErrNotConnected = errors.New("client not connected")

// Client represents an MCP client used by both the REPL and the one-shot CLI
// commands. It caches the tool listing for completion and lookups.
type Client struct {
	endpoint  string
	transport TransportType
	logger    *Logger
	client    *client.Client
	inProcess *mcpserver.MCPServer
	toolCache []mcp.Tool
	mu        sync.RWMutex
	timeout   time.Duration
}

// NewClient creates a client for a remote server reached over transport.
func NewClient(endpoint string, logger *Logger, transport TransportType) *Client {
	return &Client{
		endpoint:  endpoint,
		transport: transport,
		logger:    logger,
		toolCache: []mcp.Tool{},
		timeout:   defaultTimeout,
	}
}

// NewInProcessClient creates a client talking directly to srv without any
// network transport.
func NewInProcessClient(srv *mcpserver.MCPServer, logger *Logger) *Client {
	c := NewClient(string(TransportInProcess), logger, TransportInProcess)
	c.inProcess = srv
	return c
}

// SetTimeout changes the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Endpoint returns the address the client connects to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Transport returns the transport the client was created with.
func (c *Client) Transport() TransportType {
	return c.transport
}

// createClient builds the underlying mcp-go client based on transport type
func (c *Client) createClient() (*client.Client, error) {
	switch c.transport {
	case TransportInProcess:
		if c.inProcess == nil {
			return nil, fmt.Errorf("in-process client has no server")
		}
		return client.NewInProcessClient(c.inProcess)
	case TransportSSE:
		sseClient, err := client.NewSSEMCPClient(c.endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to create SSE client: %w", err)
		}
		return sseClient, nil
	case TransportStreamableHTTP:
		httpClient, err := client.NewStreamableHttpClient(c.endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to create streamable-http client: %w", err)
		}
		return httpClient, nil
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", c.transport)
	}
}

// Connect starts the transport, performs the MCP handshake and loads the
// tool listing.
func (c *Client) Connect(ctx context.Context) error {
	mcpClient, err := c.createClient()
	if err != nil {
		return err
	}

	if err := mcpClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start %s client: %w", c.transport, err)
	}
	c.client = mcpClient

	if err := c.initialize(ctx); err != nil {
		_ = c.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}

	if err := c.RefreshToolCache(ctx); err != nil {
		_ = c.Close()
		return fmt.Errorf("initial tool listing failed: %w", err)
	}
	return nil
}

// initialize performs the MCP protocol handshake
func (c *Client) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "monolith-cli", Version: "1.0.0"}

	c.debug("Initializing MCP session with %s...", c.endpoint)

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Initialize(timeoutCtx, req)
	if err != nil {
		return err
	}
	c.debug("Connected to %s %s", result.ServerInfo.Name, result.ServerInfo.Version)
	return nil
}

// RefreshToolCache reloads the tool listing from the server.
func (c *Client) RefreshToolCache(ctx context.Context) error {
	if c.client == nil {
		return ErrNotConnected
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}

	c.mu.Lock()
	c.toolCache = result.Tools
	c.mu.Unlock()

	c.debug("Loaded %d tools", len(result.Tools))
	return nil
}

// GetToolCache returns a copy of the cached tool listing.
func (c *Client) GetToolCache() []mcp.Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tools := make([]mcp.Tool, len(c.toolCache))
	copy(tools, c.toolCache)
	return tools
}

// CallTool executes a tool and returns the result
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, ErrNotConnected
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.debug("Calling %s", name)
	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolText executes a tool and returns the joined text content. A result
// flagged as an error is returned as an error carrying that text.
func (c *Client) CallToolText(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	text := ResultText(result)
	if result.IsError {
		return "", fmt.Errorf("tool error: %s", text)
	}
	return text, nil
}

// CallFunction executes a utility function and decodes its envelope. Failures
// reported by the function are returned inside the Response, not as errors.
func (c *Client) CallFunction(ctx context.Context, name string, args map[string]interface{}) (api.Response, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return api.Response{}, err
	}

	var resp api.Response
	if err := json.Unmarshal([]byte(ResultText(result)), &resp); err != nil {
		return api.Response{}, fmt.Errorf("failed to decode %s result: %w", name, err)
	}
	return resp, nil
}

// Search runs search_functions. An empty category searches every category.
func (c *Client) Search(ctx context.Context, query, category string) (*metatools.SearchResponse, error) {
	args := map[string]interface{}{"query": query}
	if category != "" {
		args["category"] = category
	}

	var resp metatools.SearchResponse
	if err := c.callDiscovery(ctx, metatools.ToolSearchFunctions, args, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Categories runs list_categories.
func (c *Client) Categories(ctx context.Context) (*metatools.CategoriesResponse, error) {
	var resp metatools.CategoriesResponse
	if err := c.callDiscovery(ctx, metatools.ToolListCategories, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Describe runs describe_function. An unknown name is reported as an error
// carrying the server's message.
func (c *Client) Describe(ctx context.Context, name string) (*catalog.Entry, error) {
	text, err := c.CallToolText(ctx, metatools.ToolDescribeFunction, map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}

	var notFound metatools.NotFoundResponse
	if err := json.Unmarshal([]byte(text), &notFound); err == nil && notFound.ErrorCode != "" {
		return nil, fmt.Errorf("%s", notFound.Error)
	}

	var entry catalog.Entry
	if err := json.Unmarshal([]byte(text), &entry); err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", metatools.ToolDescribeFunction, err)
	}
	return &entry, nil
}

func (c *Client) callDiscovery(ctx context.Context, tool string, args map[string]interface{}, out interface{}) error {
	text, err := c.CallToolText(ctx, tool, args)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", tool, err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

func (c *Client) debug(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(format, args...)
	}
}

// ResultText joins the text content items of result with newlines.
func ResultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	var parts []string
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
