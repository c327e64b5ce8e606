package functions

import (
	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/internal/utility"
)

func mathDefinitions() []definition {
	return []definition{
		{
			entry: catalog.Entry{
				Name:        "math/round",
				Category:    "math",
				Description: "Round number to specified decimal places",
				Parameters: []catalog.Parameter{
					{Name: "value", Type: schema.TypeNumber, Description: "Number to round", Required: true},
					{Name: "decimals", Type: schema.TypeInteger, Description: "Number of decimal places", Required: true, Rules: "gte=0"},
				},
				Returns: "rounded number",
				Examples: []catalog.Example{
					{Description: "Round to 2 decimals", Input: map[string]interface{}{"value": 3.14159, "decimals": 2.0}, Output: 3.14},
					{Description: "Round to integer", Input: map[string]interface{}{"value": 3.7, "decimals": 0.0}, Output: 4.0},
				},
				Tags:        []string{"math", "round", "decimal", "precision"},
				Performance: "< 1ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.Round(args.Float("value"), args.Int("decimals"))
			},
		},
		{
			entry: catalog.Entry{
				Name:        "math/clamp",
				Category:    "math",
				Description: "Clamp number between minimum and maximum values",
				Parameters: []catalog.Parameter{
					{Name: "value", Type: schema.TypeNumber, Description: "Number to clamp", Required: true},
					{Name: "min", Type: schema.TypeNumber, Description: "Minimum value", Required: true},
					{Name: "max", Type: schema.TypeNumber, Description: "Maximum value", Required: true},
				},
				Returns: "clamped number",
				Examples: []catalog.Example{
					{Description: "Clamp value above max", Input: map[string]interface{}{"value": 100.0, "min": 0.0, "max": 50.0}, Output: 50.0},
					{Description: "Clamp value below min", Input: map[string]interface{}{"value": -10.0, "min": 0.0, "max": 100.0}, Output: 0.0},
				},
				Tags:        []string{"math", "clamp", "limit", "constrain"},
				Performance: "< 1ms",
			},
			invoke: func(args schema.Args) api.Response {
				return utility.Clamp(args.Float("value"), args.Float("min"), args.Float("max"))
			},
		},
	}
}
