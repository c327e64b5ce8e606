// Package functions registers the utility functions served by monolith.
//
// NewRegistry builds the immutable catalog.Store from one definition per
// function (metadata plus implementation) and exposes the functions as an
// api.ToolProvider. Tool names are the catalog names, e.g.
// "strings/toCamelCase" or "data/arrays/sortBy".
//
// Every function returns an api.Response envelope serialized as indented
// JSON text. Domain failures (an unparseable date, an inverted range) are
// reported inside the envelope and never as Go errors.
//
// Catalog examples are executable: the package tests invoke each example
// input and compare the result against the documented output.
package functions
