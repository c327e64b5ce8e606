// Package template resolves {{ name.path }} placeholders in tool arguments
// against values stored by earlier calls.
package template

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// placeholderPattern matches {{ name }}, {{ .name }} and dotted paths such as
// {{ rows.result.0.name }}.
var placeholderPattern = regexp.MustCompile(`\{\{\s*\.?([a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z0-9_]+)*)\s*\}\}`)

// Engine substitutes placeholders in strings, maps and slices.
type Engine struct{}

// New creates a template engine.
func New() *Engine {
	return &Engine{}
}

// Replace returns a copy of value with every placeholder resolved from vars.
// A string consisting of a single placeholder is replaced by the referenced
// value itself, keeping its type; placeholders embedded in longer strings
// are replaced by the value's text form. Unresolvable paths are reported
// together.
func (e *Engine) Replace(value interface{}, vars map[string]interface{}) (interface{}, error) {
	var missing []string
	out := e.replace(value, vars, &missing)
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing template variables: %s", strings.Join(missing, ", "))
	}
	return out, nil
}

// ReplaceArgs is Replace for an argument map.
func (e *Engine) ReplaceArgs(args map[string]interface{}, vars map[string]interface{}) (map[string]interface{}, error) {
	if args == nil {
		return nil, nil
	}
	out, err := e.Replace(args, vars)
	if err != nil {
		return nil, err
	}
	return out.(map[string]interface{}), nil
}

func (e *Engine) replace(value interface{}, vars map[string]interface{}, missing *[]string) interface{} {
	switch v := value.(type) {
	case string:
		return e.replaceString(v, vars, missing)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = e.replace(item, vars, missing)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = e.replace(item, vars, missing)
		}
		return out
	default:
		return value
	}
}

func (e *Engine) replaceString(s string, vars map[string]interface{}, missing *[]string) interface{} {
	if m := placeholderPattern.FindStringSubmatchIndex(s); m != nil && m[0] == 0 && m[1] == len(s) {
		path := s[m[2]:m[3]]
		v, ok := Lookup(vars, path)
		if !ok {
			*missing = append(*missing, path)
			return s
		}
		return v
	}

	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		path := placeholderPattern.FindStringSubmatch(match)[1]
		v, ok := Lookup(vars, path)
		if !ok {
			*missing = append(*missing, path)
			return match
		}
		return toText(v)
	})
}

// Variables lists the distinct placeholder paths referenced by value.
func (e *Engine) Variables(value interface{}) []string {
	seen := make(map[string]bool)
	var walk func(interface{})
	walk = func(v interface{}) {
		switch v := v.(type) {
		case string:
			for _, m := range placeholderPattern.FindAllStringSubmatch(v, -1) {
				seen[m[1]] = true
			}
		case map[string]interface{}:
			for _, item := range v {
				walk(item)
			}
		case []interface{}:
			for _, item := range v {
				walk(item)
			}
		}
	}
	walk(value)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a dotted path through maps and slices. Numeric segments
// index slices.
func Lookup(root interface{}, path string) (interface{}, bool) {
	current := root
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []interface{}:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			current = node[i]
		default:
			return nil, false
		}
	}
	return current, true
}

func toText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
