package catalog

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/romellogoodman/monolith/internal/api"
)

// DuplicateNameError is returned by Builder.Build when two registrations
// share a name.
type DuplicateNameError struct {
	Name string
	// Positions are the registration indexes of the first and the repeated entry.
	First, Second int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate function name %q (registrations %d and %d)", e.Name, e.First, e.Second)
}

// Builder collects registrations for a Store. It is used once, during
// startup, and discarded after Build.
type Builder struct {
	entries []Entry
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register appends entry. Uniqueness is checked by Build, not here.
func (b *Builder) Register(entry Entry) *Builder {
	b.entries = append(b.entries, entry.clone())
	return b
}

// Build freezes the registered entries into an immutable Store. It fails
// when a name was registered more than once.
func (b *Builder) Build() (*Store, error) {
	seen := make(map[string]int, len(b.entries))
	for i, e := range b.entries {
		if first, ok := seen[e.Name]; ok {
			return nil, &DuplicateNameError{Name: e.Name, First: first, Second: i}
		}
		seen[e.Name] = i
	}

	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)
	return &Store{entries: entries}, nil
}

// Store is the immutable, insertion-ordered function catalog. All accessors
// return copies; a Store is safe for concurrent readers.
type Store struct {
	entries []Entry
}

// Len returns the number of registered entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns every entry in registration order.
func (s *Store) All() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.clone()
	}
	return out
}

// ByCategory returns the entries whose category equals category exactly,
// in registration order.
func (s *Store) ByCategory(category string) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Category == category {
			out = append(out, e.clone())
		}
	}
	return out
}

// ByName returns the entry with the given name (case-sensitive).
//
// Returns:
//   - Entry: the matching entry
//   - error: *api.NotFoundError when no entry has that name
func (s *Store) ByName(name string) (Entry, error) {
	for _, e := range s.entries {
		if e.Name == name {
			return e.clone(), nil
		}
	}
	return Entry{}, api.NewNotFoundError("function", name)
}

// Categories aggregates the distinct categories with their entry counts.
// The result is freshly computed on every call; its order is not part of
// the contract, so callers that display it must sort.
func (s *Store) Categories() []CategoryInfo {
	index := make(map[string]int)
	var out []CategoryInfo
	for _, e := range s.entries {
		if i, ok := index[e.Category]; ok {
			out[i].Count++
			continue
		}
		index[e.Category] = len(out)
		out = append(out, CategoryInfo{
			Name:        e.Category,
			Description: capitalize(e.Category) + " utility functions",
			Count:       1,
		})
	}
	return out
}

// Search returns the entries matching query, in registration order. A
// non-empty category restricts the result to that exact category. The query
// matches case-insensitively as a substring of the name, description,
// category or any tag; the empty query matches everything.
func (s *Store) Search(query, category string) []Entry {
	q := strings.ToLower(query)

	var out []Entry
	for _, e := range s.entries {
		if category != "" && e.Category != category {
			continue
		}
		if matches(e, q) {
			out = append(out, e.clone())
		}
	}
	return out
}

func matches(e Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Category), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
