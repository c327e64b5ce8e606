// Package metrics exposes Prometheus collectors for tool calls.
//
// The dispatch router records every call as monolith_tool_calls_total
// {tool, outcome} and monolith_tool_call_duration_seconds {tool}. Names
// that are not registered are recorded under the tool label "unknown" so the
// label set stays bounded. HTTP transports serve the registry on the
// configured metrics path.
package metrics
