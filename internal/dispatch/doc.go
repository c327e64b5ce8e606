// Package dispatch routes tool calls to the provider that owns them.
//
// A call goes through a fixed pipeline:
//
//  1. resolve the name in the lookup table built from every api.ToolProvider
//  2. validate and normalize the arguments with schema.Validate against the
//     same metadata that is advertised to clients
//  3. execute the provider
//
// Any failure in the pipeline, including a panic inside a provider, yields
// an IsError result whose text is
//
//	{"success": false, "error": "<message>", "errorCode": "TOOL_EXECUTION_ERROR"}
//
// Domain failures reported by a function inside its own envelope are not
// pipeline failures and pass through untouched.
package dispatch
