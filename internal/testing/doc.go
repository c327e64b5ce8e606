// Package testing runs YAML test scenarios against a monolith server.
//
// A scenario is a list of tool calls, each with an expected outcome:
//
//	name: math-round-and-clamp
//	category: math
//	tags: [smoke]
//	steps:
//	  - id: clamp-inverted-range
//	    tool: math/clamp
//	    args: {value: 5, min: 10, max: 1}
//	    expected:
//	      success: false
//	      is_error: false
//	      error_code: INVALID_RANGE
//
// Expectations distinguish the two failure levels of a call. "success"
// follows the envelope; "is_error" checks the transport error flag, which is
// only set when the dispatch pipeline rejected the call. "result" compares
// the envelope result, and "json_path" compares values at dotted paths such
// as "functions.0.name".
//
// A step with "store: name" saves its decoded response. Args of later steps
// may reference it as {{ name.result }}; a placeholder that makes up a whole
// value keeps the stored value's type, so arrays and objects pass through.
//
// Scenarios covering every catalog function are embedded in the binary and
// used when no scenario path is given. The runner executes scenarios on a
// worker pool; steps within a scenario run in order and stop at the first
// failure.
package testing
