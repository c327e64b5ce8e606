package agent

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/dispatch"
	"github.com/romellogoodman/monolith/internal/functions"
	"github.com/romellogoodman/monolith/internal/metatools"
	"github.com/romellogoodman/monolith/internal/server"
)

// connectedClient returns a client attached to an in-process server that
// serves the full catalog.
func connectedClient(t *testing.T) *Client {
	t.Helper()
	reg, err := functions.NewRegistry(functions.Options{})
	require.NoError(t, err)
	router, err := dispatch.NewRouter([]api.ToolProvider{metatools.NewProvider(reg.Store()), reg})
	require.NoError(t, err)
	srv := server.New(server.Config{}, router, nil)

	c := NewInProcessClient(srv.MCPServer(), NewDevNullLogger())
	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewClient(t *testing.T) {
	logger := NewLogger(false, false)
	client := NewClient("http://localhost:8090/mcp", logger, TransportStreamableHTTP)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8090/mcp", client.Endpoint())
	assert.Equal(t, TransportStreamableHTTP, client.Transport())
	assert.NotNil(t, client.logger)
	assert.Empty(t, client.GetToolCache())
}

func TestClient_NotConnected(t *testing.T) {
	client := NewClient("http://localhost:8090/mcp", nil, TransportStreamableHTTP)
	ctx := context.Background()

	_, err := client.CallTool(ctx, "math/round", nil)
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.ErrorIs(t, client.RefreshToolCache(ctx), ErrNotConnected)
	assert.NoError(t, client.Close())
}

func TestClient_UnsupportedTransport(t *testing.T) {
	client := NewClient("http://localhost:8090/mcp", nil, TransportType("carrier-pigeon"))
	err := client.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type")
}

func TestClient_ToolCache(t *testing.T) {
	c := connectedClient(t)

	tools := c.GetToolCache()
	assert.Len(t, tools, 20)

	// The cache is a copy.
	tools[0].Name = "changed"
	assert.NotEqual(t, "changed", c.GetToolCache()[0].Name)
}

func TestClient_CallFunction(t *testing.T) {
	c := connectedClient(t)
	ctx := context.Background()

	resp, err := c.CallFunction(ctx, "strings/truncate", map[string]interface{}{"input": "Hello World", "length": 8.0})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Hello...", resp.Result)

	resp, err = c.CallFunction(ctx, "math/clamp", map[string]interface{}{"value": 1.0, "min": 10.0, "max": 5.0})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, api.ErrCodeInvalidRange, resp.ErrorCode)
}

func TestClient_CallToolText_Error(t *testing.T) {
	c := connectedClient(t)

	_, err := c.CallToolText(context.Background(), "strings/nope", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool error")
	assert.Contains(t, err.Error(), "Unknown tool: strings/nope")
}

func TestClient_Discovery(t *testing.T) {
	c := connectedClient(t)
	ctx := context.Background()

	search, err := c.Search(ctx, "base64", "")
	require.NoError(t, err)
	assert.Equal(t, 2, search.Count)

	search, err = c.Search(ctx, "is", "validation")
	require.NoError(t, err)
	assert.Equal(t, "validation", search.Category)
	for _, fn := range search.Functions {
		assert.Equal(t, "validation", fn.Category)
	}

	cats, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, cats.Count)

	entry, err := c.Describe(ctx, "strings/truncate")
	require.NoError(t, err)
	assert.Equal(t, "strings", entry.Category)
	assert.NotEmpty(t, entry.Parameters)

	_, err = c.Describe(ctx, "strings/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strings/nope")
}

func TestLogger(t *testing.T) {
	var status, out bytes.Buffer
	logger := NewLoggerWithWriter(false, false, &status, &out)

	logger.OutputLine("result %d", 1)
	logger.Info("connected")
	logger.Debug("hidden")
	assert.Equal(t, "result 1\n", out.String())
	assert.Contains(t, status.String(), "connected")
	assert.NotContains(t, status.String(), "hidden")

	logger.SetVerbose(true)
	logger.Debug("shown")
	assert.Contains(t, status.String(), "shown")
}

func TestColorize(t *testing.T) {
	logger := NewLogger(false, true)
	assert.Equal(t, colorRed+"test"+colorReset, logger.colorize("test", colorRed))

	logger2 := NewLogger(false, false)
	assert.Equal(t, "test", logger2.colorize("test", colorRed))
}
