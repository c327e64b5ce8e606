package functions

import (
	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/internal/utility"
)

func dataDefinitions() []definition {
	bob := map[string]interface{}{"name": "Bob", "age": 25.0}
	alice := map[string]interface{}{"name": "Alice", "age": 30.0}

	return []definition{
		{
			entry: catalog.Entry{
				Name:        "data/arrays/unique",
				Category:    "data",
				Subcategory: "arrays",
				Description: "Get unique values from array",
				Parameters: []catalog.Parameter{
					{Name: "array", Type: schema.TypeArray, Description: "Array to get unique values from", Required: true},
				},
				Returns: "array of unique values",
				Examples: []catalog.Example{
					{
						Description: "Remove duplicates",
						Input:       map[string]interface{}{"array": []interface{}{1.0, 2.0, 2.0, 3.0, 3.0, 3.0}},
						Output:      []interface{}{1.0, 2.0, 3.0},
					},
				},
				Tags:        []string{"data", "array", "unique", "dedupe"},
				Performance: "< 2ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.Unique(args.Slice("array"))
			},
		},
		{
			entry: catalog.Entry{
				Name:        "data/arrays/sortBy",
				Category:    "data",
				Subcategory: "arrays",
				Description: "Sort array of objects by key",
				Parameters: []catalog.Parameter{
					{Name: "array", Type: schema.TypeArray, Items: schema.TypeObject, Description: "Array of objects to sort", Required: true},
					{Name: "key", Type: schema.TypeString, Description: "Key to sort by", Required: true},
					{
						Name:        "direction",
						Type:        schema.TypeString,
						Description: "Sort direction: 'asc' or 'desc'",
						Default:     utility.SortAscending,
						Enum:        []string{utility.SortAscending, utility.SortDescending},
					},
				},
				Returns: "sorted array",
				Examples: []catalog.Example{
					{
						Description: "Sort by age ascending",
						Input:       map[string]interface{}{"array": []interface{}{bob, alice}, "key": "age"},
						Output:      []interface{}{bob, alice},
					},
					{
						Description: "Sort by name descending",
						Input:       map[string]interface{}{"array": []interface{}{alice, bob}, "key": "name", "direction": "desc"},
						Output:      []interface{}{bob, alice},
					},
				},
				Tags:        []string{"data", "array", "sort", "order"},
				Performance: "< 5ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.SortBy(args.Objects("array"), args.String("key"), args.String("direction"))
			},
		},
	}
}
