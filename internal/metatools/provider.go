package metatools

import (
	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
)

// Provider implements the api.ToolProvider interface for the discovery
// tools. It only reads the catalog it was given and can be used
// concurrently.
type Provider struct {
	store      *catalog.Store
	formatters *Formatters
}

// NewProvider creates a discovery provider over store.
//
// Args:
//   - store: the function catalog to search and describe
//
// Returns:
//   - *Provider: A new provider instance ready to handle discovery requests
func NewProvider(store *catalog.Store) *Provider {
	return &Provider{
		store:      store,
		formatters: NewFormatters(),
	}
}

// GetTools returns metadata for the three discovery tools.
func (p *Provider) GetTools() []api.ToolMetadata {
	return []api.ToolMetadata{
		{
			Name:        ToolSearchFunctions,
			Description: "Search for utility functions by keywords. Returns matching functions with their descriptions.",
			Args: []api.ArgMetadata{
				{
					Name:        "query",
					Type:        "string",
					Required:    true,
					Description: "Search query (keywords or description)",
				},
				{
					Name:        "category",
					Type:        "string",
					Required:    false,
					Description: "Optional category filter",
				},
			},
		},
		{
			Name:        ToolListCategories,
			Description: "List all available function categories with their counts.",
			Args:        []api.ArgMetadata{},
		},
		{
			Name:        ToolDescribeFunction,
			Description: "Get detailed information about a specific function including parameters, examples, and usage.",
			Args: []api.ArgMetadata{
				{
					Name:        "name",
					Type:        "string",
					Required:    true,
					Description: "Full function name (e.g., 'strings/toCamelCase')",
				},
			},
		},
	}
}
