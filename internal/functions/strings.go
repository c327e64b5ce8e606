package functions

import (
	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/internal/utility"
)

func stringDefinitions() []definition {
	return []definition{
		{
			entry: catalog.Entry{
				Name:        "strings/toCamelCase",
				Category:    "strings",
				Subcategory: "case",
				Description: "Convert string to camelCase format",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "String to convert to camelCase", Required: true},
				},
				Returns: "string in camelCase format",
				Examples: []catalog.Example{
					{Description: "Convert hyphenated string", Input: map[string]interface{}{"input": "hello-world"}, Output: "helloWorld"},
					{Description: "Convert spaced string", Input: map[string]interface{}{"input": "Hello World"}, Output: "helloWorld"},
				},
				Tags:        []string{"string", "case", "camelCase", "transform"},
				Performance: "< 1ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.ToCamelCase(args.String("input"))
			},
		},
		{
			entry: catalog.Entry{
				Name:        "strings/toKebabCase",
				Category:    "strings",
				Subcategory: "case",
				Description: "Convert string to kebab-case format",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "String to convert to kebab-case", Required: true},
				},
				Returns: "string in kebab-case format",
				Examples: []catalog.Example{
					{Description: "Convert camelCase string", Input: map[string]interface{}{"input": "helloWorld"}, Output: "hello-world"},
					{Description: "Convert spaced string", Input: map[string]interface{}{"input": "Hello World"}, Output: "hello-world"},
				},
				Tags:        []string{"string", "case", "kebabCase", "transform"},
				Performance: "< 1ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.ToKebabCase(args.String("input"))
			},
		},
		{
			entry: catalog.Entry{
				Name:        "strings/truncate",
				Category:    "strings",
				Subcategory: "manipulation",
				Description: "Truncate string to specified length with optional suffix",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "String to truncate", Required: true},
					{Name: "length", Type: schema.TypeInteger, Description: "Maximum length", Required: true, Rules: "gt=0"},
					{Name: "suffix", Type: schema.TypeString, Description: "Suffix to append when truncated", Default: "..."},
				},
				Returns: "truncated string",
				Examples: []catalog.Example{
					{Description: "Truncate long string", Input: map[string]interface{}{"input": "Hello World", "length": 8.0}, Output: "Hello..."},
					{Description: "String shorter than limit", Input: map[string]interface{}{"input": "Hi", "length": 10.0}, Output: "Hi"},
				},
				Tags:        []string{"string", "truncate", "shorten", "ellipsis"},
				Performance: "< 1ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.Truncate(args.String("input"), args.Int("length"), args.String("suffix"))
			},
		},
	}
}
