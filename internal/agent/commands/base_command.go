package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/formatting"
	"github.com/romellogoodman/monolith/internal/metatools"
)

// ClientInterface defines the interface that commands need from the client.
// This interface abstracts the client functionality required by commands,
// enabling them to access cached data and perform operations without
// depending directly on the concrete client implementation.
type ClientInterface interface {
	// Tool listing cache
	GetToolCache() []mcp.Tool
	RefreshToolCache(ctx context.Context) error

	// Direct tool execution
	CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error)

	// Discovery
	Search(ctx context.Context, query, category string) (*metatools.SearchResponse, error)
	Categories(ctx context.Context) (*metatools.CategoriesResponse, error)
	Describe(ctx context.Context, name string) (*catalog.Entry, error)
}

// FormatSelector holds the output formatter shared by all commands of one
// REPL session. The format command switches it.
type FormatSelector struct {
	mu      sync.RWMutex
	factory formatting.Factory
	current formatting.Formatter
}

// NewFormatSelector creates a selector starting with options.
func NewFormatSelector(options formatting.Options) *FormatSelector {
	factory := formatting.NewFactory()
	return &FormatSelector{
		factory: factory,
		current: factory.CreateFormatter(options),
	}
}

// Current returns the active formatter.
func (s *FormatSelector) Current() formatting.Formatter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Select switches the active output format, keeping the other options.
func (s *FormatSelector) Select(format formatting.OutputFormat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	options := s.current.GetOptions()
	options.Format = format
	s.current = s.factory.CreateFormatter(options)
}

// BaseCommand provides common functionality for all REPL commands.
// It encapsulates shared dependencies and utility methods that most
// commands need, reducing code duplication and ensuring consistent
// behavior across the command system.
type BaseCommand struct {
	client  ClientInterface // MCP client for operations
	output  OutputLogger    // Logger for user-facing output
	formats *FormatSelector // Active output formatter
}

// NewBaseCommand creates a new base command with the specified dependencies.
//
// Args:
//   - client: MCP client interface for operations
//   - output: Logger interface for user-facing output
//   - formats: Shared formatter selection
//
// Returns:
//   - Configured base command instance
func NewBaseCommand(client ClientInterface, output OutputLogger, formats *FormatSelector) *BaseCommand {
	return &BaseCommand{
		client:  client,
		output:  output,
		formats: formats,
	}
}

// formatter returns the formatter currently selected for the session.
func (b *BaseCommand) formatter() formatting.Formatter {
	return b.formats.Current()
}

// parseArgs validates command arguments against minimum requirements and
// returns an error carrying the usage string when too few are given.
func (b *BaseCommand) parseArgs(args []string, minArgs int, usage string) ([]string, error) {
	if len(args) < minArgs {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	return args, nil
}

// joinArgsFrom joins arguments starting from a specific index into a single string.
// This is useful for commands that accept free-form text or JSON arguments
// where multiple command line arguments should be treated as one logical argument.
func (b *BaseCommand) joinArgsFrom(args []string, index int) string {
	if index >= len(args) {
		return ""
	}
	return strings.Join(args[index:], " ")
}

// getToolCompletions returns tool name completions from the client cache.
func (b *BaseCommand) getToolCompletions() []string {
	tools := b.client.GetToolCache()
	completions := make([]string, 0, len(tools))
	for _, tool := range tools {
		completions = append(completions, tool.Name)
	}
	sort.Strings(completions)
	return completions
}

// getFunctionCompletions returns the names of utility functions, which are
// the cached tools namespaced as "<category>/<operation>".
func (b *BaseCommand) getFunctionCompletions() []string {
	var completions []string
	for _, name := range b.getToolCompletions() {
		if strings.Contains(name, "/") {
			completions = append(completions, name)
		}
	}
	return completions
}

// getCategoryCompletions derives category names from the cached tool names.
func (b *BaseCommand) getCategoryCompletions() []string {
	seen := make(map[string]bool)
	var completions []string
	for _, name := range b.getFunctionCompletions() {
		category := name[:strings.Index(name, "/")]
		if !seen[category] {
			seen[category] = true
			completions = append(completions, category)
		}
	}
	return completions
}

// stripQuotes removes surrounding single or double quotes from a string.
// This handles the common shell habit of quoting values.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') ||
			(s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ParseKeyValueArgs parses arguments in key=value format. Values are decoded
// as JSON where possible so numbers, booleans, arrays and objects keep their
// type; anything else is kept as a string with surrounding quotes removed.
//
// Args:
//   - args: Slice of "key=value" formatted strings
//
// Returns:
//   - map[string]interface{}: the parsed arguments
//   - error: when an argument has no '=' or an empty key
func ParseKeyValueArgs(args []string) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(args))

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not in key=value form", arg)
		}
		if key == "" {
			return nil, fmt.Errorf("argument %q has an empty key", arg)
		}

		var jsonValue interface{}
		if err := json.Unmarshal([]byte(value), &jsonValue); err == nil {
			params[key] = jsonValue
		} else {
			params[key] = stripQuotes(value)
		}
	}

	return params, nil
}

// ParseToolArgs accepts either a single JSON object or key=value pairs.
func ParseToolArgs(args []string) (map[string]interface{}, error) {
	if len(args) == 0 {
		return map[string]interface{}{}, nil
	}

	joined := strings.TrimSpace(strings.Join(args, " "))
	if strings.HasPrefix(joined, "{") {
		var params map[string]interface{}
		if err := json.Unmarshal([]byte(joined), &params); err != nil {
			return nil, fmt.Errorf("arguments must be a valid JSON object: %w", err)
		}
		if params == nil {
			params = map[string]interface{}{}
		}
		return params, nil
	}

	return ParseKeyValueArgs(args)
}

// findToolByName looks up a tool by name from the cache.
func findToolByName(tools []mcp.Tool, name string) *mcp.Tool {
	for i := range tools {
		if tools[i].Name == name {
			return &tools[i]
		}
	}
	return nil
}

// getToolParamNames returns all parameter names for a tool, sorted alphabetically.
func getToolParamNames(tool *mcp.Tool) []string {
	if tool == nil || len(tool.InputSchema.Properties) == 0 {
		return nil
	}

	params := make([]string, 0, len(tool.InputSchema.Properties))
	for name := range tool.InputSchema.Properties {
		params = append(params, name)
	}
	sort.Strings(params)
	return params
}
