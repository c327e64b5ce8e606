package commands

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListCommand lists the tools advertised by the server
type ListCommand struct {
	*BaseCommand
}

// NewListCommand creates a new list command
func NewListCommand(client ClientInterface, output OutputLogger, formats *FormatSelector) *ListCommand {
	return &ListCommand{
		BaseCommand: NewBaseCommand(client, output, formats),
	}
}

// Execute lists all tools, or only the functions of one category
func (l *ListCommand) Execute(ctx context.Context, args []string) error {
	if err := l.client.RefreshToolCache(ctx); err != nil {
		l.output.Error("Failed to refresh tool cache: %v", err)
		// Continue with the cached tools if refresh fails
	}

	tools := l.client.GetToolCache()
	if len(args) > 0 {
		tools = filterByCategory(tools, args[0])
	}

	l.output.OutputLine(l.formatter().FormatToolsList(tools))
	return nil
}

// filterByCategory keeps the tools whose name is namespaced under category.
func filterByCategory(tools []mcp.Tool, category string) []mcp.Tool {
	prefix := strings.ToLower(category) + "/"
	var filtered []mcp.Tool
	for _, tool := range tools {
		if strings.HasPrefix(strings.ToLower(tool.Name), prefix) {
			filtered = append(filtered, tool)
		}
	}
	return filtered
}

// Usage returns the usage string
func (l *ListCommand) Usage() string {
	return "list [category]"
}

// Description returns the command description
func (l *ListCommand) Description() string {
	return "List available tools, optionally limited to one category"
}

// Completions returns possible completions
func (l *ListCommand) Completions(input string) []string {
	return l.getCategoryCompletions()
}

// Aliases returns command aliases
func (l *ListCommand) Aliases() []string {
	return []string{"ls"}
}
