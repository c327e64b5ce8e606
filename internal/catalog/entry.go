package catalog

import (
	"github.com/romellogoodman/monolith/internal/api"
)

// Entry is the static description of one callable utility function.
type Entry struct {
	// Name is unique across the catalog, namespaced as "<category>/<operation>".
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory,omitempty"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
	Examples    []Example   `json:"examples"`
	Tags        []string    `json:"tags"`
	Performance string      `json:"performance,omitempty"`
}

// Parameter describes one argument of an Entry. Order is significant for
// display only; binding is by name.
type Parameter struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Default     interface{} `json:"default,omitempty"`
	Items       string      `json:"items,omitempty"`
	Enum        []string    `json:"enum,omitempty"`
	Rules       string      `json:"-"`
}

// Example is a documented invocation. Examples double as golden test cases.
type Example struct {
	Description string                 `json:"description"`
	Input       map[string]interface{} `json:"input"`
	Output      interface{}            `json:"output"`
}

// CategoryInfo is derived from the entries on demand; it is never stored.
type CategoryInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Args converts the entry's parameters into the argument metadata used for
// both the advertised input schema and validation.
func (e Entry) Args() []api.ArgMetadata {
	args := make([]api.ArgMetadata, len(e.Parameters))
	for i, p := range e.Parameters {
		args[i] = api.ArgMetadata{
			Name:        p.Name,
			Type:        p.Type,
			Required:    p.Required,
			Description: p.Description,
			Default:     p.Default,
			Items:       p.Items,
			Enum:        append([]string(nil), p.Enum...),
			Rules:       p.Rules,
		}
	}
	return args
}

// clone returns a copy of e that shares no slices or maps with it.
func (e Entry) clone() Entry {
	out := e
	out.Tags = append([]string(nil), e.Tags...)

	out.Parameters = make([]Parameter, len(e.Parameters))
	for i, p := range e.Parameters {
		p.Enum = append([]string(nil), p.Enum...)
		p.Default = deepCopy(p.Default)
		out.Parameters[i] = p
	}

	out.Examples = make([]Example, len(e.Examples))
	for i, ex := range e.Examples {
		input, _ := deepCopy(ex.Input).(map[string]interface{})
		out.Examples[i] = Example{
			Description: ex.Description,
			Input:       input,
			Output:      deepCopy(ex.Output),
		}
	}
	return out
}

func deepCopy(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = deepCopy(val)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, val := range t {
			s[i] = deepCopy(val)
		}
		return s
	case []map[string]interface{}:
		s := make([]interface{}, len(t))
		for i, val := range t {
			s[i] = deepCopy(val)
		}
		return s
	}
	return v
}
