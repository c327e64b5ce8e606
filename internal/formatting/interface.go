// Package formatting provides unified output formatting for the CLI and the
// interactive agent.
//
// Formatters render MCP tool listings and the discovery payloads (search
// results, categories, function descriptions) in one of several output
// formats (console, JSON, YAML, table). They return strings; callers decide
// where the output goes.
package formatting

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/metatools"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// Formats lists every supported output format.
var Formats = []OutputFormat{FormatConsole, FormatJSON, FormatYAML, FormatTable}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements
}

// Formatter renders MCP and discovery data
type Formatter interface {
	// Tool formatting
	FormatToolsList(tools []mcp.Tool) string
	FormatToolDetail(tool mcp.Tool) string
	FindTool(tools []mcp.Tool, name string) *mcp.Tool

	// Discovery formatting
	FormatSearch(resp metatools.SearchResponse) string
	FormatCategories(resp metatools.CategoriesResponse) string
	FormatFunction(entry catalog.Entry) string

	// Generic data formatting (for function results)
	FormatData(data interface{}) string

	// Configuration
	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options)
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (OutputFormat, bool) {
	for _, f := range Formats {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// base holds the state and lookups shared by every formatter.
type base struct {
	options Options
}

// FindTool finds a tool by name in the cache
func (b *base) FindTool(tools []mcp.Tool, name string) *mcp.Tool {
	for i := range tools {
		if tools[i].Name == name {
			return &tools[i]
		}
	}
	return nil
}

// SetOptions updates the formatter options
func (b *base) SetOptions(options Options) {
	b.options = options
}

// GetOptions returns the current formatter options
func (b *base) GetOptions() Options {
	return b.options
}
