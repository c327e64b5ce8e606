package formatting

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/metatools"
	pkgstrings "github.com/romellogoodman/monolith/pkg/strings"
)

const functionTemplate = `{{ .Name }} ({{ .Category }})
{{ .Description }}

Parameters:
{{- range .Parameters }}
  - {{ .Name }} ({{ .Type }}{{ if .Items }} of {{ .Items }}{{ end }}{{ if .Required }}, required{{ end }}){{ if .Description }}: {{ .Description }}{{ end }}
{{- if ne (toJson .Default) "null" }} [default: {{ toJson .Default }}]{{ end }}
{{- if .Enum }} [one of: {{ join ", " .Enum }}]{{ end }}
{{- else }}
  (none)
{{- end }}

Returns: {{ .Returns }}
{{- if .Examples }}

Examples:
{{- range $i, $e := .Examples }}
  {{ add1 $i }}. {{ $e.Description }}
     input:  {{ toJson $e.Input }}
     output: {{ toJson $e.Output }}
{{- end }}
{{- end }}
{{- if .Tags }}

Tags: {{ join ", " .Tags }}
{{- end }}
`

var functionTmpl = template.Must(template.New("function").Funcs(sprig.TxtFuncMap()).Parse(functionTemplate))

// ConsoleFormatter provides simple console output formatting
type ConsoleFormatter struct {
	base
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{base{options: options}}
}

// FormatToolsList formats tools list for console output
func (f *ConsoleFormatter) FormatToolsList(tools []mcp.Tool) string {
	if len(tools) == 0 {
		return "No tools available."
	}

	var output []string
	output = append(output, fmt.Sprintf("Available tools (%d):", len(tools)))
	for i, tool := range tools {
		output = append(output, fmt.Sprintf("  %d. %-30s - %s", i+1, tool.Name,
			pkgstrings.TruncateDescription(tool.Description, 80)))
	}
	return strings.Join(output, "\n")
}

// FormatToolDetail formats detailed tool information
func (f *ConsoleFormatter) FormatToolDetail(tool mcp.Tool) string {
	var output []string
	output = append(output, fmt.Sprintf("Tool: %s", tool.Name))
	output = append(output, fmt.Sprintf("Description: %s", tool.Description))
	output = append(output, "Input Schema:")
	output = append(output, PrettyJSON(tool.InputSchema))
	return strings.Join(output, "\n")
}

// FormatSearch formats search results for console output
func (f *ConsoleFormatter) FormatSearch(resp metatools.SearchResponse) string {
	scope := ""
	if resp.Category != "" {
		scope = fmt.Sprintf(" in %s", resp.Category)
	}
	if resp.Count == 0 {
		return fmt.Sprintf("No functions match %q%s.", resp.Query, scope)
	}

	var output []string
	output = append(output, fmt.Sprintf("Found %d functions for %q%s:", resp.Count, resp.Query, scope))
	for i, fn := range resp.Functions {
		output = append(output, fmt.Sprintf("  %d. %-24s - %s", i+1, fn.Name, fn.Description))
	}
	return strings.Join(output, "\n")
}

// FormatCategories formats the category listing for console output
func (f *ConsoleFormatter) FormatCategories(resp metatools.CategoriesResponse) string {
	if resp.Count == 0 {
		return "No categories available."
	}

	var output []string
	output = append(output, fmt.Sprintf("Categories (%d):", resp.Count))
	for _, c := range resp.Categories {
		output = append(output, fmt.Sprintf("  %-12s %2d  %s", c.Name, c.Count, c.Description))
	}
	return strings.Join(output, "\n")
}

// FormatFunction renders a catalog entry with its parameters and examples
func (f *ConsoleFormatter) FormatFunction(entry catalog.Entry) string {
	var buf bytes.Buffer
	if err := functionTmpl.Execute(&buf, entry); err != nil {
		return fmt.Sprintf("Error formatting function %s: %v", entry.Name, err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// FormatData formats generic data (fallback to simple text representation)
func (f *ConsoleFormatter) FormatData(data interface{}) string {
	switch d := data.(type) {
	case map[string]interface{}, []interface{}:
		return PrettyJSON(d)
	case string:
		return d
	default:
		return fmt.Sprintf("%v", d)
	}
}
