package formatting

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"sigs.k8s.io/yaml"

	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/metatools"
)

// YAMLFormatter provides YAML output formatting. Field names follow the
// json tags, so YAML and JSON output agree.
type YAMLFormatter struct {
	base
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{base{options: options}}
}

// FormatToolsList formats tools list as YAML
func (f *YAMLFormatter) FormatToolsList(tools []mcp.Tool) string {
	return f.marshal(tools)
}

// FormatToolDetail formats tool detail as YAML
func (f *YAMLFormatter) FormatToolDetail(tool mcp.Tool) string {
	return f.marshal(tool)
}

// FormatSearch formats search results as YAML
func (f *YAMLFormatter) FormatSearch(resp metatools.SearchResponse) string {
	return f.marshal(resp)
}

// FormatCategories formats the category listing as YAML
func (f *YAMLFormatter) FormatCategories(resp metatools.CategoriesResponse) string {
	return f.marshal(resp)
}

// FormatFunction formats a catalog entry as YAML
func (f *YAMLFormatter) FormatFunction(entry catalog.Entry) string {
	return f.marshal(entry)
}

// FormatData formats generic data as YAML
func (f *YAMLFormatter) FormatData(data interface{}) string {
	return f.marshal(data)
}

// marshal converts data to YAML string
func (f *YAMLFormatter) marshal(data interface{}) string {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Sprintf("error: \"Failed to format YAML: %v\"\n", err)
	}
	return string(yamlBytes)
}
