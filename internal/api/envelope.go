package api

import (
	"encoding/json"
)

// Error codes carried in failure envelopes. Functional operations pick their
// own code; the dispatch pipeline only ever emits ErrCodeToolExecution.
const (
	ErrCodeToolExecution    = "TOOL_EXECUTION_ERROR"
	ErrCodeFunctionNotFound = "FUNCTION_NOT_FOUND"

	ErrCodeConversion   = "CONVERSION_ERROR"
	ErrCodeParse        = "PARSE_ERROR"
	ErrCodeTruncation   = "TRUNCATION_ERROR"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInvalidDate  = "INVALID_DATE"
	ErrCodeFormat       = "FORMAT_ERROR"
	ErrCodeCalculation  = "CALCULATION_ERROR"
	ErrCodeMath         = "MATH_ERROR"
	ErrCodeInvalidRange = "INVALID_RANGE"
	ErrCodeArray        = "ARRAY_ERROR"
	ErrCodeSort         = "SORT_ERROR"
	ErrCodeEncoding     = "ENCODING_ERROR"
	ErrCodeDecoding     = "DECODING_ERROR"
)

// Metadata is optional, informational data attached to a successful Response.
type Metadata struct {
	InputType     string   `json:"inputType,omitempty"`
	OutputType    string   `json:"outputType,omitempty"`
	ExecutionTime *float64 `json:"executionTime,omitempty"`
}

// Response is the envelope returned by every functional operation.
// Exactly one of the two shapes is populated:
//
//	{"success": true,  "result": ..., "metadata": {...}}
//	{"success": false, "error": "...", "errorCode": "...", "details": ...}
type Response struct {
	Success   bool
	Result    interface{}
	Metadata  *Metadata
	Error     string
	ErrorCode string
	Details   interface{}
}

// Success builds a success envelope. meta may be nil.
func Success(result interface{}, meta *Metadata) Response {
	return Response{Success: true, Result: result, Metadata: meta}
}

// Failure builds a failure envelope. details is optional; only the first
// value is used.
func Failure(message, code string, details ...interface{}) Response {
	r := Response{Error: message, ErrorCode: code}
	if len(details) > 0 {
		r.Details = details[0]
	}
	return r
}

type successJSON struct {
	Success  bool        `json:"success"`
	Result   interface{} `json:"result"`
	Metadata *Metadata   `json:"metadata,omitempty"`
}

type failureJSON struct {
	Success   bool        `json:"success"`
	Error     string      `json:"error"`
	ErrorCode string      `json:"errorCode"`
	Details   interface{} `json:"details,omitempty"`
}

// MarshalJSON emits only the fields of the active shape. A success always
// carries "result", even when it is a zero value such as false.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(successJSON{Success: true, Result: r.Result, Metadata: r.Metadata})
	}
	return json.Marshal(failureJSON{Error: r.Error, ErrorCode: r.ErrorCode, Details: r.Details})
}

// UnmarshalJSON accepts either envelope shape.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw struct {
		Success   bool        `json:"success"`
		Result    interface{} `json:"result"`
		Metadata  *Metadata   `json:"metadata"`
		Error     string      `json:"error"`
		ErrorCode string      `json:"errorCode"`
		Details   interface{} `json:"details"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Response(raw)
	return nil
}

// ExecutionFailure is the payload produced when the dispatch pipeline itself
// fails (unknown tool, invalid arguments, internal fault).
func ExecutionFailure(message string) Response {
	return Failure(message, ErrCodeToolExecution)
}
