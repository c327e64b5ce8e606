package metatools

import (
	"github.com/romellogoodman/monolith/internal/catalog"
)

// Discovery tool name constants.
const (
	// ToolSearchFunctions finds functions by keyword, optionally within a category.
	ToolSearchFunctions = "search_functions"

	// ToolListCategories lists every category with its function count.
	ToolListCategories = "list_categories"

	// ToolDescribeFunction returns the full catalog entry of one function.
	ToolDescribeFunction = "describe_function"
)

// FunctionSummary is the short form of a catalog entry used in search results.
type FunctionSummary struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// SearchResponse is the response structure from the search_functions tool.
type SearchResponse struct {
	Query     string            `json:"query"`
	Category  string            `json:"category,omitempty"`
	Count     int               `json:"count"`
	Functions []FunctionSummary `json:"functions"`
}

// CategoriesResponse is the response structure from the list_categories tool.
type CategoriesResponse struct {
	Count      int                    `json:"count"`
	Categories []catalog.CategoryInfo `json:"categories"`
}

// NotFoundResponse is returned as data by describe_function for an unknown
// name. It is not a transport error.
type NotFoundResponse struct {
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode"`
}
