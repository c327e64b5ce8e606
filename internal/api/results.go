package api

import (
	"encoding/json"
	"fmt"
)

// TextResult creates a successful single-text result.
func TextResult(text string) *CallToolResult {
	return &CallToolResult{
		Content: []interface{}{text},
		IsError: false,
	}
}

// JSONResult renders v as two-space indented JSON text. Discovery payloads
// and Response envelopes are both delivered this way.
//
// Returns:
//   - *CallToolResult: a successful result carrying the JSON text
//   - error: when v cannot be marshalled
func JSONResult(v interface{}) (*CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return TextResult(string(b)), nil
}

// ExecutionErrorResult builds the transport-level failure produced when the
// dispatch pipeline cannot complete a call. The text is a failure envelope
// with ErrCodeToolExecution and IsError is set.
func ExecutionErrorResult(message string) *CallToolResult {
	b, err := json.MarshalIndent(ExecutionFailure(message), "", "  ")
	if err != nil {
		b = []byte(fmt.Sprintf(`{"success":false,"error":%q,"errorCode":%q}`, message, ErrCodeToolExecution))
	}
	return &CallToolResult{
		Content: []interface{}{string(b)},
		IsError: true,
	}
}
