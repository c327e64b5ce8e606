package api

import (
	"context"
)

// CallToolResult represents the result of a tool call before it is handed to
// the transport. Content items are strings or JSON-serializable values.
type CallToolResult struct {
	Content []interface{} `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ToolMetadata describes a tool that can be exposed
type ToolMetadata struct {
	Name        string // e.g., "strings/toCamelCase", "search_functions"
	Description string
	Args        []ArgMetadata
}

// ArgMetadata describes a single tool argument. The same description drives
// both the advertised input schema and argument validation.
type ArgMetadata struct {
	Name        string
	Type        string // "string", "number", "integer", "boolean", "array", "object"
	Required    bool
	Description string
	Default     interface{}
	// Items is the element type for "array" arguments; empty means any.
	Items string
	// Enum restricts string values to a fixed set.
	Enum []string
	// Rules holds validator tags (e.g. "gt=0") applied after type coercion.
	Rules string
}

// ToolProvider interface for components that provide tools
type ToolProvider interface {
	// Returns all tools this provider offers
	GetTools() []ToolMetadata

	// Executes a tool by name
	ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*CallToolResult, error)
}
