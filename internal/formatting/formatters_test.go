package formatting

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/metatools"
)

var (
	sampleEntry = catalog.Entry{
		Name:        "strings/truncate",
		Category:    "strings",
		Description: "Truncate string to specified length",
		Parameters: []catalog.Parameter{
			{Name: "input", Type: "string", Description: "String to truncate", Required: true},
			{Name: "length", Type: "integer", Description: "Maximum length", Required: true},
			{Name: "suffix", Type: "string", Description: "Suffix to add", Default: "..."},
		},
		Returns: "Truncated string",
		Examples: []catalog.Example{
			{Description: "Truncate long text", Input: map[string]interface{}{"input": "Hello World", "length": 8.0}, Output: "Hello..."},
		},
		Tags: []string{"string", "truncate"},
	}

	sampleSearch = metatools.SearchResponse{
		Query: "case",
		Count: 2,
		Functions: []metatools.FunctionSummary{
			{Name: "strings/toCamelCase", Category: "strings", Description: "Convert string to camelCase", Tags: []string{"case"}},
			{Name: "strings/toKebabCase", Category: "strings", Description: "Convert string to kebab-case", Tags: []string{"case"}},
		},
	}

	sampleCategories = metatools.CategoriesResponse{
		Count: 2,
		Categories: []catalog.CategoryInfo{
			{Name: "math", Description: "Math utility functions", Count: 2},
			{Name: "strings", Description: "Strings utility functions", Count: 3},
		},
	}

	sampleTools = []mcp.Tool{
		{
			Name:        "strings/toCamelCase",
			Description: "Convert string to camelCase",
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: map[string]interface{}{"input": map[string]interface{}{"type": "string", "description": "String to convert"}},
				Required:   []string{"input"},
			},
		},
	}
)

func TestFactory_CreateFormatter(t *testing.T) {
	factory := NewFactory()
	tests := []struct {
		format OutputFormat
		want   interface{}
	}{
		{FormatConsole, &ConsoleFormatter{}},
		{FormatJSON, &JSONFormatter{}},
		{FormatYAML, &YAMLFormatter{}},
		{FormatTable, &TableFormatter{}},
		{"unknown", &ConsoleFormatter{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := factory.CreateFormatter(Options{Format: tt.format})
			assert.IsType(t, tt.want, f)
			assert.Equal(t, tt.format, f.GetOptions().Format)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("yaml")
	assert.True(t, ok)
	assert.Equal(t, FormatYAML, f)

	_, ok = ParseFormat("xml")
	assert.False(t, ok)
}

func TestFindTool(t *testing.T) {
	f := NewConsoleFormatter(Options{})
	tool := f.FindTool(sampleTools, "strings/toCamelCase")
	require.NotNil(t, tool)
	assert.Equal(t, "Convert string to camelCase", tool.Description)
	assert.Nil(t, f.FindTool(sampleTools, "nope"))
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter(Options{})

	var decoded metatools.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(f.FormatSearch(sampleSearch)), &decoded))
	assert.Equal(t, sampleSearch, decoded)
	assert.Contains(t, f.FormatSearch(sampleSearch), "\n  \"query\": \"case\"")

	f.SetOptions(Options{Format: FormatJSON, Quiet: true})
	assert.Equal(t, `{"a":1}`, f.FormatData(map[string]interface{}{"a": 1}))
}

func TestYAMLFormatter_UsesJSONFieldNames(t *testing.T) {
	f := NewYAMLFormatter(Options{})

	out := f.FormatCategories(sampleCategories)
	assert.Contains(t, out, "count: 2")
	assert.Contains(t, out, "- count: 2\n  description: Math utility functions\n  name: math")

	out = f.FormatFunction(sampleEntry)
	assert.Contains(t, out, "name: strings/truncate")
	assert.Contains(t, out, "name: suffix")
	assert.NotContains(t, out, "Rules")
}

func TestConsoleFormatter_FormatFunction(t *testing.T) {
	out := NewConsoleFormatter(Options{}).FormatFunction(sampleEntry)

	expected := strings.Join([]string{
		"strings/truncate (strings)",
		"Truncate string to specified length",
		"",
		"Parameters:",
		"  - input (string, required): String to truncate",
		"  - length (integer, required): Maximum length",
		`  - suffix (string): Suffix to add [default: "..."]`,
		"",
		"Returns: Truncated string",
		"",
		"Examples:",
		"  1. Truncate long text",
		`     input:  {"input":"Hello World","length":8}`,
		`     output: "Hello..."`,
		"",
		"Tags: string, truncate",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestConsoleFormatter_FormatFunction_EnumAndItems(t *testing.T) {
	entry := catalog.Entry{
		Name:     "data/sortBy",
		Category: "data",
		Parameters: []catalog.Parameter{
			{Name: "array", Type: "array", Items: "object", Required: true},
			{Name: "direction", Type: "string", Default: "asc", Enum: []string{"asc", "desc"}},
		},
	}
	out := NewConsoleFormatter(Options{}).FormatFunction(entry)
	assert.Contains(t, out, "  - array (array of object, required)\n")
	assert.Contains(t, out, `  - direction (string) [default: "asc"] [one of: asc, desc]`)
	assert.NotContains(t, out, "Examples:")
	assert.NotContains(t, out, "Tags:")
}

func TestConsoleFormatter_Listings(t *testing.T) {
	f := NewConsoleFormatter(Options{})

	out := f.FormatSearch(sampleSearch)
	assert.True(t, strings.HasPrefix(out, `Found 2 functions for "case":`))
	assert.Contains(t, out, "strings/toKebabCase")

	scoped := sampleSearch
	scoped.Category = "math"
	scoped.Count = 0
	scoped.Functions = nil
	assert.Equal(t, `No functions match "case" in math.`, f.FormatSearch(scoped))

	out = f.FormatCategories(sampleCategories)
	assert.Contains(t, out, "Categories (2):")
	assert.Contains(t, out, "Strings utility functions")

	assert.Contains(t, f.FormatToolsList(sampleTools), "Available tools (1):")
	assert.Equal(t, "No tools available.", f.FormatToolsList(nil))
	assert.Contains(t, f.FormatToolDetail(sampleTools[0]), `"required": [`)

	assert.Equal(t, "plain", f.FormatData("plain"))
	assert.Equal(t, "42", f.FormatData(42))
	assert.Equal(t, "[\n  1\n]", f.FormatData([]interface{}{1}))
}

func TestTableFormatter(t *testing.T) {
	f := NewTableFormatter(Options{})

	out := f.FormatSearch(sampleSearch)
	assert.Contains(t, out, "strings/toCamelCase")
	assert.Contains(t, out, "Convert string to kebab-case")
	assert.Contains(t, out, "Total:")

	out = f.FormatCategories(sampleCategories)
	assert.Contains(t, out, "Math utility functions")

	out = f.FormatFunction(sampleEntry)
	assert.Contains(t, out, "strings/truncate (strings)")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "Returns: Truncated string")

	out = f.FormatToolsList(sampleTools)
	assert.Contains(t, out, "strings/toCamelCase")
	assert.Contains(t, f.FormatToolDetail(sampleTools[0]), "String to convert")

	f.SetOptions(Options{Format: FormatTable, Quiet: true})
	assert.NotContains(t, f.FormatSearch(sampleSearch), "Total:")
}

func TestTableFormatter_FormatData(t *testing.T) {
	f := NewTableFormatter(Options{Quiet: true})

	out := f.FormatData([]interface{}{
		map[string]interface{}{"name": "Alice", "age": 30.0},
		map[string]interface{}{"name": "Bob"},
	})
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Less(t, strings.Index(out, "AGE"), strings.Index(out, "NAME"), "columns are sorted")

	out = f.FormatData([]interface{}{"x", "y"})
	assert.Contains(t, out, "x")

	out = f.FormatData(map[string]interface{}{"success": true, "result": "ok"})
	assert.Less(t, strings.Index(out, "result"), strings.Index(out, "success"))

	assert.Contains(t, f.FormatData([]interface{}{}), "No items found")
	assert.Equal(t, "hi", f.FormatData("hi"))
}
