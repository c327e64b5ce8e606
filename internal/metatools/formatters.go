package metatools

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/romellogoodman/monolith/internal/catalog"
)

// Formatters shapes catalog data into discovery payloads.
// The formatters instance is stateless and can be safely used concurrently.
type Formatters struct{}

// NewFormatters creates a new formatters instance.
func NewFormatters() *Formatters {
	return &Formatters{}
}

// SearchResponse summarizes matches for the search_functions payload. The
// match order is kept.
func (f *Formatters) SearchResponse(query, category string, matches []catalog.Entry) SearchResponse {
	functions := make([]FunctionSummary, len(matches))
	for i, e := range matches {
		functions[i] = FunctionSummary{
			Name:        e.Name,
			Category:    e.Category,
			Description: e.Description,
			Tags:        e.Tags,
		}
	}
	return SearchResponse{
		Query:     query,
		Category:  category,
		Count:     len(functions),
		Functions: functions,
	}
}

// SortCategories orders categories by name with English collation rules.
// The input slice is sorted in place and returned.
//
// Args:
//   - categories: category summaries in any order
//
// Returns:
//   - []catalog.CategoryInfo: the same slice, sorted ascending by name
func (f *Formatters) SortCategories(categories []catalog.CategoryInfo) []catalog.CategoryInfo {
	// Collators keep internal buffers, so each call gets its own.
	c := collate.New(language.English)
	sort.SliceStable(categories, func(i, j int) bool {
		return c.CompareString(categories[i].Name, categories[j].Name) < 0
	})
	return categories
}
