package functions

import (
	"fmt"
	"time"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/catalog"
	"github.com/romellogoodman/monolith/internal/schema"
	"github.com/romellogoodman/monolith/pkg/logging"
)

// invokeFunc runs one utility function with a validated argument bag.
type invokeFunc func(args schema.Args) api.Response

// definition pairs a catalog entry with the code that implements it.
type definition struct {
	entry  catalog.Entry
	invoke invokeFunc
}

// Options configures a Registry.
type Options struct {
	// Location is the time zone used by the date functions for inputs that
	// carry no offset. Nil means UTC.
	Location *time.Location
}

// Registry owns the function catalog and the implementations behind it.
// It is built once at startup and is read-only afterwards.
type Registry struct {
	store    *catalog.Store
	invokers map[string]invokeFunc
}

// NewRegistry registers every utility function and freezes the catalog.
//
// Args:
//   - opts: registry options; the zero value is valid
//
// Returns:
//   - *Registry: the populated registry
//   - error: when the catalog cannot be built (e.g. a duplicate name)
func NewRegistry(opts Options) (*Registry, error) {
	return newRegistry(allDefinitions(opts.location()))
}

func newRegistry(defs []definition) (*Registry, error) {
	builder := catalog.NewBuilder()
	invokers := make(map[string]invokeFunc, len(defs))
	for _, d := range defs {
		builder.Register(d.entry)
		invokers[d.entry.Name] = d.invoke
	}

	store, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build function catalog: %w", err)
	}

	logging.Debug("Functions", "Registered %d functions in %d categories", store.Len(), len(store.Categories()))
	return &Registry{store: store, invokers: invokers}, nil
}

// Store returns the catalog shared by discovery and dispatch.
func (r *Registry) Store() *catalog.Store {
	return r.store
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// allDefinitions lists every function in catalog order.
func allDefinitions(loc *time.Location) []definition {
	var defs []definition
	defs = append(defs, stringDefinitions()...)
	defs = append(defs, validationDefinitions()...)
	defs = append(defs, conversionDefinitions()...)
	defs = append(defs, dateDefinitions(loc)...)
	defs = append(defs, mathDefinitions()...)
	defs = append(defs, dataDefinitions()...)
	defs = append(defs, encodingDefinitions()...)
	return defs
}
