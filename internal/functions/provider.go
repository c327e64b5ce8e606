package functions

import (
	"context"
	"fmt"
	"time"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/pkg/logging"
)

// GetTools exposes every catalog entry as a tool. The argument metadata is
// derived from the entry parameters, so listing and validation agree.
func (r *Registry) GetTools() []api.ToolMetadata {
	entries := r.store.All()
	tools := make([]api.ToolMetadata, len(entries))
	for i, e := range entries {
		tools[i] = api.ToolMetadata{
			Name:        e.Name,
			Description: e.Description,
			Args:        e.Args(),
		}
	}
	return tools
}

// ExecuteTool runs a utility function. args must already be validated
// against the tool's argument metadata. The envelope is returned as JSON
// text; a failed envelope is still a successful tool call.
//
// Args:
//   - ctx: request context (unused, functions are synchronous)
//   - toolName: full function name, e.g. "strings/toCamelCase"
//   - args: normalized arguments
//
// Returns:
//   - *api.CallToolResult: the serialized envelope
//   - error: when toolName is not a registered function
func (r *Registry) ExecuteTool(_ context.Context, toolName string, args map[string]interface{}) (*api.CallToolResult, error) {
	invoke, ok := r.invokers[toolName]
	if !ok {
		return nil, api.NewNotFoundError("function", toolName)
	}

	resp := run(invoke, args)
	logging.Debug("Functions", "Executed %s (success=%t)", toolName, resp.Success)

	result, err := api.JSONResult(resp)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", toolName, err)
	}
	return result, nil
}

// run calls fn and stamps the execution time, in milliseconds, on a
// successful envelope.
func run(fn invokeFunc, args map[string]interface{}) api.Response {
	start := time.Now()
	resp := fn(schema.Args(args))
	if resp.Success {
		elapsed := float64(time.Since(start).Microseconds()) / 1000
		if resp.Metadata == nil {
			resp.Metadata = &api.Metadata{}
		}
		resp.Metadata.ExecutionTime = &elapsed
	}
	return resp
}
