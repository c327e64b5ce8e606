// Package api holds the contracts shared by every monolith package: tool
// metadata, the ToolProvider interface implemented by the discovery and
// function providers, the Response envelope returned by functional
// operations, and the common error types.
//
// # Tool providers
//
// A ToolProvider advertises tools through GetTools and executes them through
// ExecuteTool. The dispatch router builds its lookup table from providers, so
// the advertised argument metadata is the same data used to validate calls.
//
// # Response envelope
//
// Functional operations never return Go errors for domain problems. They
// return a Response:
//
//	api.Success("helloWorld", &api.Metadata{InputType: "string", OutputType: "string"})
//	api.Failure("Min value cannot be greater than max value", api.ErrCodeInvalidRange)
//
// A failed envelope is still a successful tool call at the transport level.
// Only pipeline failures (unknown tool, invalid arguments, internal faults)
// are flagged as transport errors, and they always use ErrCodeToolExecution.
package api
