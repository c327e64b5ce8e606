package functions

import (
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/internal/utility"
)

func encodingDefinitions() []definition {
	return []definition{
		{
			entry: catalog.Entry{
				Name:        "encoding/base64Encode",
				Category:    "encoding",
				Description: "Encode string to base64",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "String to encode to base64", Required: true},
				},
				Returns: "base64 encoded string",
				Examples: []catalog.Example{
					{Description: "Encode simple string", Input: map[string]interface{}{"input": "Hello World"}, Output: "SGVsbG8gV29ybGQ="},
				},
				Tags:        []string{"encoding", "base64", "encode"},
				Performance: "< 1ms",
			},
			invoke: withInput(utility.Base64Encode),
		},
		{
			entry: catalog.Entry{
				Name:        "encoding/base64Decode",
				Category:    "encoding",
				Description: "Decode base64 string",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "Base64 string to decode", Required: true},
				},
				Returns: "decoded string",
				Examples: []catalog.Example{
					{Description: "Decode base64 string", Input: map[string]interface{}{"input": "SGVsbG8gV29ybGQ="}, Output: "Hello World"},
				},
				Tags:        []string{"encoding", "base64", "decode"},
				Performance: "< 1ms",
			},
			invoke: withInput(utility.Base64Decode),
		},
	}
}
