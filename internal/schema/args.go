package schema

// Args is a normalized argument bag returned by Validate. Its accessors
// assume the bag was validated, so a missing or mistyped value yields the
// zero value instead of an error.
type Args map[string]interface{}

// Has reports whether name is present after normalization.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

func (a Args) Float(name string) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (a Args) Int(name string) int {
	switch v := a[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

func (a Args) Slice(name string) []interface{} {
	s, _ := a[name].([]interface{})
	return s
}

// Strings returns a []string view of an array argument, skipping
// non-string elements.
func (a Args) Strings(name string) []string {
	items := a.Slice(name)
	if items == nil {
		if s, ok := a[name].([]string); ok {
			return s
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Objects returns the elements of an array argument that are JSON objects.
func (a Args) Objects(name string) []map[string]interface{} {
	items := a.Slice(name)
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
