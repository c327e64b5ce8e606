package schema

import (
	"fmt"
	"strings"
)

// ValidationError describes one argument that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every argument problem found in one call.
type ValidationErrors []ValidationError

// Error joins all messages, e.g.
// "invalid arguments: input: is required; length: must be greater than 0".
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "invalid arguments"
	}
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return "invalid arguments: " + strings.Join(parts, "; ")
}

// Add appends a validation error for field
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors in the collection
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}
