// Package utility implements the pure functions exposed by the catalog.
//
// Every function returns an api.Response. Domain problems (an unparseable
// date, an inverted range) are reported inside the envelope with an
// operation-specific error code and never as Go errors; callers only need to
// guard against panics.
package utility

import (
	"github.com/romellogoodman/monolith/internal/api"
)

const (
	typeString  = "string"
	typeNumber  = "number"
	typeBoolean = "boolean"
	typeArray   = "array"
)

func meta(in, out string) *api.Metadata {
	return &api.Metadata{InputType: in, OutputType: out}
}
