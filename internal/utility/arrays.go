package utility

import (
	"fmt"
	"sort"
	"strings"

	"github.com/romellogoodman/monolith/internal/api"
)

// SortAscending and SortDescending are the accepted SortBy directions.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Unique removes repeated primitive values, keeping the first occurrence.
// Primitives are equal when both type and value match, so 1 and "1" are
// distinct. Numbers compare by value whatever their Go type, 0 equals -0
// and NaN equals NaN. Objects and arrays are never considered equal to
// each other.
func Unique(items []interface{}) api.Response {
	seen := make(map[string]bool, len(items))
	out := make([]interface{}, 0, len(items))

	for _, item := range items {
		switch item.(type) {
		case map[string]interface{}, []interface{}:
			out = append(out, item)
			continue
		}
		key := uniqueKey(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return api.Success(out, meta(typeArray, typeArray))
}

func uniqueKey(item interface{}) string {
	if n, ok := toFloat(item); ok {
		if n == 0 {
			n = 0 // -0 and 0 share a key
		}
		return fmt.Sprintf("number:%v", n)
	}
	return fmt.Sprintf("%T:%v", item, item)
}

// SortBy stably sorts objects by the value under key. Numbers compare
// numerically, strings lexically and booleans false before true. Missing
// values or values of different types compare equal and keep their order.
func SortBy(items []map[string]interface{}, key, direction string) api.Response {
	switch direction {
	case "", SortAscending, SortDescending:
	default:
		return api.Failure(fmt.Sprintf("Invalid sort direction %q", direction), api.ErrCodeSort)
	}

	sorted := make([]map[string]interface{}, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareValues(sorted[i][key], sorted[j][key])
		if direction == SortDescending {
			return c > 0
		}
		return c < 0
	})

	out := make([]interface{}, len(sorted))
	for i, m := range sorted {
		out[i] = m
	}
	return api.Success(out, meta(typeArray, typeArray))
}

func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok && av != bv {
			if !av {
				return -1
			}
			return 1
		}
	}
	return 0
}

// toFloat widens the numeric types arguments arrive as: float64 from JSON,
// ints from Go callers.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
