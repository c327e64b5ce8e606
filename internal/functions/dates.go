package functions

import (
	"time"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/internal/utility"
)

func dateDefinitions(loc *time.Location) []definition {
	return []definition{
		{
			entry: catalog.Entry{
				Name:        "dates/parseDate",
				Category:    "dates",
				Subcategory: "parsing",
				Description: "Parse date string to ISO 8601 format",
				Parameters: []catalog.Parameter{
					{Name: "input", Type: schema.TypeString, Description: "Date string to parse", Required: true},
					{Name: "format", Type: schema.TypeString, Description: "Optional format pattern for parsing"},
				},
				Returns: "ISO 8601 date string",
				Examples: []catalog.Example{
					{Description: "Parse standard date", Input: map[string]interface{}{"input": "2025-12-11"}, Output: "2025-12-11T00:00:00.000Z"},
					{Description: "Parse with pattern", Input: map[string]interface{}{"input": "11/12/2025", "format": "dd/MM/yyyy"}, Output: "2025-12-11T00:00:00.000Z"},
				},
				Tags:        []string{"date", "parse", "iso", "format"},
				Performance: "< 2ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.ParseDate(args.String("input"), args.String("format"), loc)
			},
		},
		{
			entry: catalog.Entry{
				Name:        "dates/formatDate",
				Category:    "dates",
				Subcategory: "formatting",
				Description: "Format ISO date string with custom pattern",
				Parameters: []catalog.Parameter{
					{Name: "isoDate", Type: schema.TypeString, Description: "ISO date string to format", Required: true},
					{Name: "format", Type: schema.TypeString, Description: "Format pattern (e.g., 'yyyy-MM-dd', 'MMMM d, yyyy')", Required: true},
				},
				Returns: "formatted date string",
				Examples: []catalog.Example{
					{
						Description: "Format as US date",
						Input:       map[string]interface{}{"isoDate": "2025-12-11T00:00:00.000Z", "format": "MMMM d, yyyy"},
						Output:      "December 11, 2025",
					},
				},
				Tags:        []string{"date", "format", "display"},
				Performance: "< 2ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.FormatDate(args.String("isoDate"), args.String("format"), loc)
			},
		},
		{
			entry: catalog.Entry{
				Name:        "dates/addDays",
				Category:    "dates",
				Subcategory: "arithmetic",
				Description: "Add or subtract days from ISO date",
				Parameters: []catalog.Parameter{
					{Name: "isoDate", Type: schema.TypeString, Description: "ISO date string", Required: true},
					{Name: "days", Type: schema.TypeInteger, Description: "Number of days to add (negative to subtract)", Required: true},
				},
				Returns: "ISO date string with days added",
				Examples: []catalog.Example{
					{
						Description: "Add 7 days",
						Input:       map[string]interface{}{"isoDate": "2025-12-11T00:00:00.000Z", "days": 7.0},
						Output:      "2025-12-18T00:00:00.000Z",
					},
				},
				Tags:        []string{"date", "add", "subtract", "arithmetic"},
				Performance: "< 2ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.AddDays(args.String("isoDate"), args.Int("days"), loc)
			},
		},
	}
}
