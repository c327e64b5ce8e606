package functions

import (
	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/internal/utility"
)

func conversionDefinitions() []definition {
	return []definition{
		{
			entry: catalog.Entry{
				Name:        "conversion/jsonToCsv",
				Category:    "conversion",
				Description: "Convert JSON array of objects to CSV string",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeArray, Items: schema.TypeObject, Description: "Array of objects to convert to CSV", Required: true},
					{Name: "columns", Type: schema.TypeArray, Items: schema.TypeString, Description: "Optional header columns in output order (default: sorted keys of all objects)"},
				},
				Returns: "CSV string representation",
				Examples: []catalog.Example{
					{
						Description: "Convert simple array",
						Input: map[string]interface{}{
							"input": []interface{}{
								map[string]interface{}{"name": "Alice", "age": 30.0},
								map[string]interface{}{"name": "Bob", "age": 25.0},
							},
							"columns": []interface{}{"name", "age"},
						},
						Output: "name,age\nAlice,30\nBob,25",
					},
				},
				Tags:        []string{"conversion", "json", "csv", "format"},
				Performance: "< 5ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.JSONToCSV(args.Objects("input"), args.Strings("columns"))
			},
		},
		{
			entry: catalog.Entry{
				Name:        "conversion/csvToJson",
				Category:    "conversion",
				Description: "Parse CSV string into JSON array of objects",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "CSV string to parse into JSON array", Required: true},
				},
				Returns: "array of objects",
				Examples: []catalog.Example{
					{
						Description: "Parse simple CSV",
						Input:       map[string]interface{}{"input": "name,age\nAlice,30\nBob,25"},
						Output: []interface{}{
							map[string]interface{}{"name": "Alice", "age": "30"},
							map[string]interface{}{"name": "Bob", "age": "25"},
						},
					},
				},
				Tags:        []string{"conversion", "csv", "json", "parse"},
				Performance: "< 5ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.CSVToJSON(args.String("input"))
			},
		},
	}
}
