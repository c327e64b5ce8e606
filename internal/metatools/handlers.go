package metatools

import (
	"context"
	"fmt"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/pkg/logging"
)

// ExecuteTool executes a discovery tool by name with validated arguments.
// This implements the api.ToolProvider interface for tool execution.
//
// Args:
//   - ctx: Context for the operation
//   - toolName: The name of the discovery tool to execute
//   - args: Arguments for the tool execution
//
// Returns:
//   - *api.CallToolResult: The result of the tool execution
//   - error: Error if the tool doesn't exist or the result cannot be encoded
func (p *Provider) ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*api.CallToolResult, error) {
	logging.Debug("metatools", "Executing tool %s with args: %v", toolName, args)

	switch toolName {
	case ToolSearchFunctions:
		return p.handleSearchFunctions(ctx, args)
	case ToolListCategories:
		return p.handleListCategories(ctx, args)
	case ToolDescribeFunction:
		return p.handleDescribeFunction(ctx, args)
	default:
		return nil, fmt.Errorf("unknown meta-tool: %s", toolName)
	}
}

// handleSearchFunctions handles the search_functions tool. An absent or
// empty category searches the whole catalog.
func (p *Provider) handleSearchFunctions(_ context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	query, _ := args["query"].(string)
	category, _ := args["category"].(string)

	matches := p.store.Search(query, category)
	return api.JSONResult(p.formatters.SearchResponse(query, category, matches))
}

// handleListCategories handles the list_categories tool.
func (p *Provider) handleListCategories(_ context.Context, _ map[string]interface{}) (*api.CallToolResult, error) {
	categories := p.formatters.SortCategories(p.store.Categories())
	return api.JSONResult(CategoriesResponse{
		Count:      len(categories),
		Categories: categories,
	})
}

// handleDescribeFunction handles the describe_function tool. An unknown
// name is reported in the payload with FUNCTION_NOT_FOUND.
func (p *Provider) handleDescribeFunction(_ context.Context, args map[string]interface{}) (*api.CallToolResult, error) {
	name, _ := args["name"].(string)

	entry, err := p.store.ByName(name)
	if api.IsNotFound(err) {
		return api.JSONResult(NotFoundResponse{
			Error:     fmt.Sprintf("Function '%s' not found", name),
			ErrorCode: api.ErrCodeFunctionNotFound,
		})
	}
	if err != nil {
		return nil, err
	}
	return api.JSONResult(entry)
}
