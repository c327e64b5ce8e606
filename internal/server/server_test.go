package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/config"
	"github.com/romellogoodman/monolith/internal/dispatch"
	"github.com/romellogoodman/monolith/internal/functions"
	"github.com/romellogoodman/monolith/internal/metatools"
	"github.com/romellogoodman/monolith/internal/metrics"
)

func newRouter(t *testing.T, rec *metrics.Recorder) *dispatch.Router {
	t.Helper()
	reg, err := functions.NewRegistry(functions.Options{})
	require.NoError(t, err)
	router, err := dispatch.NewRouter(
		[]api.ToolProvider{metatools.NewProvider(reg.Store()), reg},
		dispatch.WithMetrics(rec),
	)
	require.NoError(t, err)
	return router
}

func initialize(t *testing.T, ctx context.Context, c *client.Client) {
	t.Helper()
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "server-test", Version: "0.0.0"}
	res, err := c.Initialize(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, res.ServerInfo.Name)
	assert.Equal(t, DefaultVersion, res.ServerInfo.Version)
}

func newInProcessClient(t *testing.T, srv *Server) *client.Client {
	t.Helper()
	ctx := context.Background()
	c, err := client.NewInProcessClient(srv.MCPServer())
	require.NoError(t, err)
	require.NoError(t, c.Start(ctx))
	t.Cleanup(func() { _ = c.Close() })
	initialize(t, ctx, c)
	return c
}

func callTool(t *testing.T, c *client.Client, name string, args map[string]interface{}) (*mcp.CallToolResult, map[string]interface{}) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := c.CallTool(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return res, payload
}

func TestConvertToMCPSchema(t *testing.T) {
	schema := convertToMCPSchema([]api.ArgMetadata{
		{Name: "input", Type: "string", Required: true, Description: "Text"},
		{Name: "suffix", Type: "string", Description: "Suffix", Default: "..."},
		{Name: "direction", Type: "string", Enum: []string{"asc", "desc"}},
		{Name: "array", Type: "array", Items: "object", Required: true},
	})

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"input", "array"}, schema.Required)
	assert.Equal(t, map[string]interface{}{"type": "string", "description": "Text"}, schema.Properties["input"])
	assert.Equal(t, "...", schema.Properties["suffix"].(map[string]interface{})["default"])
	assert.Equal(t, []string{"asc", "desc"}, schema.Properties["direction"].(map[string]interface{})["enum"])
	assert.Equal(t, map[string]interface{}{"type": "object"}, schema.Properties["array"].(map[string]interface{})["items"])
}

func TestConvertToMCPSchema_NoArgs(t *testing.T) {
	schema := convertToMCPSchema(nil)
	assert.Equal(t, "object", schema.Type)
	assert.Empty(t, schema.Properties)
	assert.Empty(t, schema.Required)
}

func TestConvertToMCPResult(t *testing.T) {
	res := convertToMCPResult(&api.CallToolResult{
		Content: []interface{}{"plain", map[string]interface{}{"k": 1}},
		IsError: true,
	})

	require.Len(t, res.Content, 2)
	assert.Equal(t, "plain", res.Content[0].(mcp.TextContent).Text)
	assert.Equal(t, `{"k":1}`, res.Content[1].(mcp.TextContent).Text)
	assert.True(t, res.IsError)
}

func TestServer_ListingMatchesRouter(t *testing.T) {
	router := newRouter(t, nil)
	srv := New(Config{Transport: config.MCPTransportStdio}, router, nil)
	c := newInProcessClient(t, srv)

	res, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)

	var listed []string
	for _, tool := range res.Tools {
		listed = append(listed, tool.Name)
	}
	var routed []string
	for _, meta := range router.Tools() {
		routed = append(routed, meta.Name)
	}
	assert.ElementsMatch(t, routed, listed)
	assert.Len(t, listed, 20)

	for _, tool := range res.Tools {
		if tool.Name == "strings/truncate" {
			assert.Equal(t, []string{"input", "length"}, tool.InputSchema.Required)
			assert.Equal(t, "...", tool.InputSchema.Properties["suffix"].(map[string]interface{})["default"])
		}
	}
}

func TestServer_Scenarios(t *testing.T) {
	srv := New(Config{Transport: config.MCPTransportStdio}, newRouter(t, nil), nil)
	c := newInProcessClient(t, srv)

	t.Run("functional call succeeds", func(t *testing.T) {
		res, payload := callTool(t, c, "strings/toCamelCase", map[string]interface{}{"input": "hello-world"})
		assert.False(t, res.IsError)
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, "helloWorld", payload["result"])
	})

	t.Run("domain failure stays a transport success", func(t *testing.T) {
		res, payload := callTool(t, c, "math/clamp", map[string]interface{}{"value": 5, "min": 10, "max": 1})
		assert.False(t, res.IsError)
		assert.Equal(t, false, payload["success"])
		assert.Equal(t, "INVALID_RANGE", payload["errorCode"])
	})

	t.Run("validation failure is an execution error", func(t *testing.T) {
		res, payload := callTool(t, c, "strings/truncate", map[string]interface{}{"input": "x"})
		assert.True(t, res.IsError)
		assert.Equal(t, "TOOL_EXECUTION_ERROR", payload["errorCode"])
		assert.Contains(t, payload["error"], "length")
	})

	t.Run("discovery search", func(t *testing.T) {
		res, payload := callTool(t, c, "search_functions", map[string]interface{}{"query": "base64"})
		assert.False(t, res.IsError)
		assert.Equal(t, float64(2), payload["count"])
	})

	t.Run("unknown tool is an execution error", func(t *testing.T) {
		for _, name := range []string{"nonexistent/op", unknownToolName} {
			res, payload := callTool(t, c, name, map[string]interface{}{"input": "x"})
			assert.True(t, res.IsError, name)
			assert.Equal(t, false, payload["success"], name)
			assert.Equal(t, "TOOL_EXECUTION_ERROR", payload["errorCode"], name)
			assert.Equal(t, "Unknown tool: "+name, payload["error"], name)
		}
	})

	t.Run("unknown tool keeps caller meta", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Name = "strings/reverse"
		req.Params.Meta = &mcp.Meta{ProgressToken: "p-1"}
		res, err := c.CallTool(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		require.Len(t, res.Content, 1)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "Unknown tool: strings/reverse")
	})

	t.Run("describe unknown is data", func(t *testing.T) {
		res, payload := callTool(t, c, "describe_function", map[string]interface{}{"name": "nope"})
		assert.False(t, res.IsError)
		assert.Equal(t, "FUNCTION_NOT_FOUND", payload["errorCode"])
	})
}

// syncBuffer guards a buffer shared with the stdio writer goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestServer_Stdio(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","capabilities":{},"clientInfo":{"name":"t","version":"0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"encoding/base64Encode","arguments":{"input":"Hello World"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"nonexistent/op","arguments":{}}}`,
	}, "\n") + "\n"

	out := &syncBuffer{}
	srv := New(Config{
		Transport: config.MCPTransportStdio,
		Stdin:     strings.NewReader(input),
		Stdout:    out,
	}, newRouter(t, nil), nil)

	require.NoError(t, srv.Start(context.Background()))
	assert.Equal(t, "stdio", srv.Endpoint())

	// EOF on stdin ends the transport.
	require.NoError(t, srv.Wait())
	assert.Contains(t, out.String(), `"serverInfo":{"name":"monolith","version":"1.0.0"}`)
	assert.Contains(t, out.String(), "SGVsbG8gV29ybGQ=")
	assert.Contains(t, out.String(), "Unknown tool: nonexistent/op")
	assert.NotContains(t, out.String(), "not found")

	assert.Error(t, srv.Start(context.Background()), "second start must fail")
	require.NoError(t, srv.Stop(context.Background()))
}

func TestServer_StreamableHTTP(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.SetCatalogSize(17)

	srv := New(Config{
		Transport:   config.MCPTransportStreamableHTTP,
		Host:        "127.0.0.1",
		Port:        0,
		MetricsPath: "/metrics",
	}, newRouter(t, rec), rec)

	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	endpoint := srv.Endpoint()
	require.True(t, strings.HasPrefix(endpoint, "http://127.0.0.1:"))
	require.True(t, strings.HasSuffix(endpoint, "/mcp"))
	base := strings.TrimSuffix(endpoint, "/mcp")

	resp, err := http.Get(base + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx := context.Background()
	c, err := client.NewStreamableHttpClient(endpoint)
	require.NoError(t, err)
	require.NoError(t, c.Start(ctx))
	defer c.Close()
	initialize(t, ctx, c)

	_, payload := callTool(t, c, "math/round", map[string]interface{}{"value": 3.14159, "decimals": 2})
	assert.Equal(t, 3.14, payload["result"])

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Contains(t, string(body), "monolith_catalog_functions 17")
	assert.Contains(t, string(body), `monolith_tool_calls_total{outcome="success",tool="math/round"} 1`)
}

func TestServer_SSEEndpoint(t *testing.T) {
	srv := New(Config{Transport: config.MCPTransportSSE, Host: "127.0.0.1"}, newRouter(t, nil), nil)
	require.NoError(t, srv.Start(context.Background()))

	endpoint := srv.Endpoint()
	assert.True(t, strings.HasSuffix(endpoint, "/sse"))

	ctx := context.Background()
	c, err := client.NewSSEMCPClient(endpoint)
	require.NoError(t, err)
	require.NoError(t, c.Start(ctx))
	initialize(t, ctx, c)

	_, payload := callTool(t, c, "validation/isEmail", map[string]interface{}{"input": "user@example.com"})
	assert.Equal(t, true, payload["result"])
	_ = c.Close()

	require.NoError(t, srv.Stop(context.Background()))
	assert.Error(t, srv.Stop(context.Background()), "stopping twice must fail")
}

func TestServer_UnsupportedTransport(t *testing.T) {
	srv := New(Config{Transport: "carrier-pigeon"}, newRouter(t, nil), nil)
	err := srv.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport")

	assert.Error(t, srv.Wait())
}
