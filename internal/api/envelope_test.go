package api

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_MarshalSuccess(t *testing.T) {
	tests := []struct {
		name     string
		resp     Response
		expected string
	}{
		{
			name:     "string result with metadata",
			resp:     Success("helloWorld", &Metadata{InputType: "string", OutputType: "string"}),
			expected: `{"success":true,"result":"helloWorld","metadata":{"inputType":"string","outputType":"string"}}`,
		},
		{
			name:     "false result is kept",
			resp:     Success(false, nil),
			expected: `{"success":true,"result":false}`,
		},
		{
			name:     "zero result is kept",
			resp:     Success(0, nil),
			expected: `{"success":true,"result":0}`,
		},
		{
			name:     "empty string result is kept",
			resp:     Success("", nil),
			expected: `{"success":true,"result":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestResponse_MarshalFailure(t *testing.T) {
	data, err := json.Marshal(Failure("Min value cannot be greater than max value", ErrCodeInvalidRange))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Min value cannot be greater than max value","errorCode":"INVALID_RANGE"}`, string(data))

	data, err = json.Marshal(Failure("CSV parsing errors: x", ErrCodeParse, []string{"x"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"CSV parsing errors: x","errorCode":"PARSE_ERROR","details":["x"]}`, string(data))
}

func TestResponse_Unmarshal(t *testing.T) {
	var r Response
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"result":50,"metadata":{"inputType":"number"}}`), &r))
	assert.True(t, r.Success)
	assert.Equal(t, float64(50), r.Result)
	require.NotNil(t, r.Metadata)
	assert.Equal(t, "number", r.Metadata.InputType)

	require.NoError(t, json.Unmarshal([]byte(`{"success":false,"error":"x","errorCode":"TOOL_EXECUTION_ERROR"}`), &r))
	assert.False(t, r.Success)
	assert.Equal(t, ErrCodeToolExecution, r.ErrorCode)
}

func TestExecutionFailure(t *testing.T) {
	r := ExecutionFailure("Unknown tool: nonexistent/op")
	assert.False(t, r.Success)
	assert.Equal(t, "TOOL_EXECUTION_ERROR", r.ErrorCode)
	assert.Equal(t, "Unknown tool: nonexistent/op", r.Error)
}

func TestIsNotFound(t *testing.T) {
	err := NewNotFoundError("function", "strings/nope")
	assert.Equal(t, `function "strings/nope" not found`, err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsNotFound(fmt.Errorf("other")))

	var target *NotFoundError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &target)
	assert.Equal(t, "function", target.Kind)
	assert.Equal(t, "strings/nope", target.Name)
}
