package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/dispatch"
)

// buildServerTools converts the router's listing into mcp-go tools whose
// handlers all dispatch back through the same router.
func buildServerTools(router *dispatch.Router) []mcpserver.ServerTool {
	tools := router.Tools()
	out := make([]mcpserver.ServerTool, 0, len(tools))
	for _, meta := range tools {
		out = append(out, mcpserver.ServerTool{
			Tool: mcp.Tool{
				Name:        meta.Name,
				Description: meta.Description,
				InputSchema: convertToMCPSchema(meta.Args),
			},
			Handler: createToolHandler(router, meta.Name),
		})
	}
	return out
}

// unknownToolName is a hidden tool that receives calls for names the router
// does not know, so they fail with the router's uniform failure payload
// instead of a JSON-RPC error. requestedToolKey carries the original name.
const (
	unknownToolName  = "monolith/unknown-tool"
	requestedToolKey = "monolith/requestedTool"
)

// unknownToolRoute returns the fallback tool, the hook that redirects
// unregistered names to it, and the filter that hides it from listings.
func unknownToolRoute(router *dispatch.Router) (mcpserver.ServerTool, mcpserver.OnBeforeCallToolFunc, mcpserver.ToolFilterFunc) {
	tool := mcpserver.ServerTool{
		Tool: mcp.Tool{
			Name:        unknownToolName,
			InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]interface{}{}},
		},
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name := unknownToolName
			if meta := req.Params.Meta; meta != nil {
				if requested, ok := meta.AdditionalFields[requestedToolKey].(string); ok {
					name = requested
				}
			}
			return convertToMCPResult(router.Call(ctx, name, req.GetArguments())), nil
		},
	}

	redirect := func(_ context.Context, _ any, req *mcp.CallToolRequest) {
		if _, ok := router.Lookup(req.Params.Name); ok {
			return
		}
		if req.Params.Meta == nil {
			req.Params.Meta = &mcp.Meta{}
		}
		if req.Params.Meta.AdditionalFields == nil {
			req.Params.Meta.AdditionalFields = make(map[string]any)
		}
		req.Params.Meta.AdditionalFields[requestedToolKey] = req.Params.Name
		req.Params.Name = unknownToolName
	}

	hide := func(_ context.Context, tools []mcp.Tool) []mcp.Tool {
		out := make([]mcp.Tool, 0, len(tools))
		for _, t := range tools {
			if t.Name != unknownToolName {
				out = append(out, t)
			}
		}
		return out
	}

	return tool, redirect, hide
}

// createToolHandler creates an MCP tool handler for the named tool. The
// router reports every failure inside the result, so the handler never
// returns a protocol error.
func createToolHandler(router *dispatch.Router, toolName string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		if args == nil {
			args = make(map[string]interface{})
		}
		return convertToMCPResult(router.Call(ctx, toolName, args)), nil
	}
}

// convertToMCPSchema converts argument metadata into the JSON schema
// advertised in the tool listing.
//
// Each property carries its type and description, plus default, enum and
// array item type when the argument declares them. Required arguments are
// listed in declaration order.
func convertToMCPSchema(params []api.ArgMetadata) mcp.ToolInputSchema {
	properties := make(map[string]interface{})
	required := []string{}

	for _, param := range params {
		propSchema := map[string]interface{}{
			"type":        param.Type,
			"description": param.Description,
		}

		if param.Default != nil {
			propSchema["default"] = param.Default
		}
		if len(param.Enum) > 0 {
			propSchema["enum"] = param.Enum
		}
		if param.Type == "array" && param.Items != "" {
			propSchema["items"] = map[string]interface{}{"type": param.Items}
		}

		properties[param.Name] = propSchema

		if param.Required {
			required = append(required, param.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// convertToMCPResult converts a dispatch result to MCP format. String
// content becomes text content, other values are marshalled to JSON text.
// The error flag is preserved.
func convertToMCPResult(result *api.CallToolResult) *mcp.CallToolResult {
	mcpContent := make([]mcp.Content, len(result.Content))

	for i, content := range result.Content {
		if text, ok := content.(string); ok {
			mcpContent[i] = mcp.NewTextContent(text)
		} else {
			jsonBytes, _ := json.Marshal(content)
			mcpContent[i] = mcp.NewTextContent(string(jsonBytes))
		}
	}

	return &mcp.CallToolResult{
		Content: mcpContent,
		IsError: result.IsError,
	}
}
