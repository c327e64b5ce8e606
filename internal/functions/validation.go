package functions

import (
	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/internal/utility"
)

// withInput adapts a single-string utility to an invokeFunc reading "input".
func withInput(fn func(string) api.Response) invokeFunc {
	return func(args schema.Args) api.Response {
		return fn(args.String("input"))
	}
}

func validationDefinitions() []definition {
	return []definition{
		{
			entry: catalog.Entry{
				Name:        "validation/isEmail",
				Category:    "validation",
				Description: "Validate if string is a valid email address",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "String to validate as email", Required: true},
				},
				Returns: "boolean indicating if input is valid email",
				Examples: []catalog.Example{
					{Description: "Valid email", Input: map[string]interface{}{"input": "user@example.com"}, Output: true},
					{Description: "Invalid email", Input: map[string]interface{}{"input": "not-an-email"}, Output: false},
				},
				Tags:        []string{"validation", "email", "check", "verify"},
				Performance: "< 1ms",
			},
			invoke: withInput(utility.IsEmail),
		},
		{
			entry: catalog.Entry{
				Name:        "validation/isUrl",
				Category:    "validation",
				Description: "Validate if string is a valid URL",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "String to validate as URL", Required: true},
				},
				Returns: "boolean indicating if input is valid URL",
				Examples: []catalog.Example{
					{Description: "Valid URL", Input: map[string]interface{}{"input": "https://example.com"}, Output: true},
					{Description: "Invalid URL", Input: map[string]interface{}{"input": "not a url"}, Output: false},
				},
				Tags:        []string{"validation", "url", "link", "check"},
				Performance: "< 1ms",
			},
			invoke: withInput(utility.IsURL),
		},
		{
			entry: catalog.Entry{
				Name:        "validation/isUuid",
				Category:    "validation",
				Description: "Validate if string is a valid UUID",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "String to validate as UUID", Required: true},
				},
				Returns: "boolean indicating if input is valid UUID",
				Examples: []catalog.Example{
					{Description: "Valid UUID", Input: map[string]interface{}{"input": "550e8400-e29b-41d4-a716-446655440000"}, Output: true},
					{Description: "Invalid UUID", Input: map[string]interface{}{"input": "not-a-uuid"}, Output: false},
				},
				Tags:        []string{"validation", "uuid", "guid", "check"},
				Performance: "< 1ms",
			},
			invoke: withInput(utility.IsUUID),
		},
	}
}
