package formatting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/metatools"
	pkgstrings "github.com/romellogoodman/monolith/pkg/strings"
)

const descriptionWidth = 60

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	base
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{base{options: options}}
}

// FormatToolsList formats tools list as a table
func (f *TableFormatter) FormatToolsList(tools []mcp.Tool) string {
	if len(tools) == 0 {
		return f.formatEmptyMessage("No tools found")
	}

	t := f.createTable("NAME", "DESCRIPTION", "ARGS")
	for _, tool := range tools {
		t.AppendRow(table.Row{
			tool.Name,
			pkgstrings.TruncateDescription(tool.Description, descriptionWidth),
			strings.Join(sortedKeys(tool.InputSchema.Properties), ", "),
		})
	}
	return f.render(t, len(tools), "tools")
}

// FormatToolDetail formats detailed tool information
func (f *TableFormatter) FormatToolDetail(tool mcp.Tool) string {
	t := f.createTable("ARG", "TYPE", "REQUIRED", "DESCRIPTION")
	required := make(map[string]bool, len(tool.InputSchema.Required))
	for _, name := range tool.InputSchema.Required {
		required[name] = true
	}
	for _, name := range sortedKeys(tool.InputSchema.Properties) {
		prop, _ := tool.InputSchema.Properties[name].(map[string]interface{})
		t.AppendRow(table.Row{name, prop["type"], yesNo(required[name]), prop["description"]})
	}
	t.SetTitle(fmt.Sprintf("%s: %s", tool.Name, tool.Description))
	return t.Render()
}

// FormatSearch formats search results as a table
func (f *TableFormatter) FormatSearch(resp metatools.SearchResponse) string {
	if resp.Count == 0 {
		return f.formatEmptyMessage(fmt.Sprintf("No functions match %q", resp.Query))
	}

	t := f.createTable("NAME", "CATEGORY", "DESCRIPTION", "TAGS")
	for _, fn := range resp.Functions {
		t.AppendRow(table.Row{
			fn.Name,
			fn.Category,
			pkgstrings.TruncateDescription(fn.Description, descriptionWidth),
			strings.Join(fn.Tags, ", "),
		})
	}
	return f.render(t, resp.Count, "functions")
}

// FormatCategories formats the category listing as a table
func (f *TableFormatter) FormatCategories(resp metatools.CategoriesResponse) string {
	if resp.Count == 0 {
		return f.formatEmptyMessage("No categories found")
	}

	t := f.createTable("CATEGORY", "FUNCTIONS", "DESCRIPTION")
	for _, c := range resp.Categories {
		t.AppendRow(table.Row{c.Name, c.Count, c.Description})
	}
	return f.render(t, resp.Count, "categories")
}

// FormatFunction formats a catalog entry as a parameter table titled with
// the function's name and description.
func (f *TableFormatter) FormatFunction(entry catalog.Entry) string {
	t := f.createTable("PARAMETER", "TYPE", "REQUIRED", "DEFAULT", "DESCRIPTION")
	for _, p := range entry.Parameters {
		def := ""
		if p.Default != nil {
			def = fmt.Sprintf("%v", p.Default)
		}
		typ := p.Type
		if p.Items != "" {
			typ = fmt.Sprintf("%s<%s>", p.Type, p.Items)
		}
		t.AppendRow(table.Row{p.Name, typ, yesNo(p.Required), def, p.Description})
	}
	t.SetTitle(fmt.Sprintf("%s (%s): %s", entry.Name, entry.Category, entry.Description))
	// Footers are upper-cased by the style; a caption keeps the text as written.
	t.SetCaption("Returns: %s", entry.Returns)
	return t.Render()
}

// FormatData formats generic data using table logic
func (f *TableFormatter) FormatData(data interface{}) string {
	switch d := data.(type) {
	case map[string]interface{}:
		return f.formatObjectData(d)
	case []interface{}:
		return f.formatArrayData(d)
	case string:
		return d
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Helper methods

// createTable creates a new table with standard styling and cyan headers
func (f *TableFormatter) createTable(headers ...string) table.Writer {
	style := table.StyleRounded
	style.Color.Header = text.Colors{text.FgHiCyan}

	t := table.NewWriter()
	t.SetStyle(style)

	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	t.AppendHeader(row)
	return t
}

// render renders t followed by a total line unless quiet
func (f *TableFormatter) render(t table.Writer, total int, noun string) string {
	out := t.Render()
	if f.options.Quiet {
		return out
	}
	return fmt.Sprintf("%s\n%s %s %s", out,
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(total),
		text.FgHiBlue.Sprint(noun))
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(message string) string {
	return text.FgYellow.Sprint(message)
}

// formatObjectData formats object data as key-value pairs
func (f *TableFormatter) formatObjectData(data map[string]interface{}) string {
	t := f.createTable("KEY", "VALUE")
	for _, key := range sortedKeys(data) {
		valueStr := fmt.Sprintf("%v", data[key])
		if nested, ok := data[key].(map[string]interface{}); ok {
			valueStr = PrettyJSON(nested)
		}
		t.AppendRow(table.Row{key, pkgstrings.Truncate(valueStr, 100, "...")})
	}
	return t.Render()
}

// formatArrayData renders an array of objects with one column per key and
// any other array as a numbered list.
func (f *TableFormatter) formatArrayData(data []interface{}) string {
	if len(data) == 0 {
		return f.formatEmptyMessage("No items found")
	}

	columns := map[string]bool{}
	for _, item := range data {
		obj, ok := item.(map[string]interface{})
		if !ok {
			columns = nil
			break
		}
		for k := range obj {
			columns[k] = true
		}
	}

	if columns == nil {
		t := f.createTable("#", "VALUE")
		for i, item := range data {
			t.AppendRow(table.Row{i + 1, fmt.Sprintf("%v", item)})
		}
		return f.render(t, len(data), "items")
	}

	keys := make([]string, 0, len(columns))
	for k := range columns {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := f.createTable(keys...)
	for _, item := range data {
		obj := item.(map[string]interface{})
		row := make(table.Row, len(keys))
		for i, k := range keys {
			if v, ok := obj[k]; ok {
				row[i] = v
			}
		}
		t.AppendRow(row)
	}
	return f.render(t, len(data), "items")
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
