// Package metatools provides the discovery tools of the monolith server.
//
// Discovery tools let a remote caller find out what the function catalog
// offers before calling anything:
//   - search_functions: keyword search over names, descriptions, categories
//     and tags, optionally restricted to one category
//   - list_categories: every category with its function count, sorted by name
//   - describe_function: the full catalog entry of one function
//
// All three always succeed at the transport level. Their payload is indented
// JSON text; describe_function reports an unknown name inside the payload
// with errorCode FUNCTION_NOT_FOUND.
//
// The Provider reads an explicit *catalog.Store and holds no other state.
package metatools
