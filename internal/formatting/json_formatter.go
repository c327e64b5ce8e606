package formatting

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/metatools"
)

// JSONFormatter provides JSON output formatting
type JSONFormatter struct {
	base
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{base{options: options}}
}

// FormatToolsList formats tools list as JSON
func (f *JSONFormatter) FormatToolsList(tools []mcp.Tool) string {
	return f.marshal(tools)
}

// FormatToolDetail formats tool detail as JSON
func (f *JSONFormatter) FormatToolDetail(tool mcp.Tool) string {
	return f.marshal(tool)
}

// FormatSearch formats search results as JSON
func (f *JSONFormatter) FormatSearch(resp metatools.SearchResponse) string {
	return f.marshal(resp)
}

// FormatCategories formats the category listing as JSON
func (f *JSONFormatter) FormatCategories(resp metatools.CategoriesResponse) string {
	return f.marshal(resp)
}

// FormatFunction formats a catalog entry as JSON
func (f *JSONFormatter) FormatFunction(entry catalog.Entry) string {
	return f.marshal(entry)
}

// FormatData formats generic data as JSON
func (f *JSONFormatter) FormatData(data interface{}) string {
	return f.marshal(data)
}

// marshal converts data to JSON string with appropriate formatting
func (f *JSONFormatter) marshal(data interface{}) string {
	if !f.options.Quiet {
		return PrettyJSON(data)
	}

	// Compact JSON for quiet mode
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf(`{"error": "Failed to format JSON: %v"}`, err)
	}
	return string(jsonBytes)
}
