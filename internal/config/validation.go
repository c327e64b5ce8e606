package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/romellogoodman/monolith/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// Validate checks every field and returns all problems at once as
// ValidationErrors, or nil.
func (c Config) Validate() error {
	var errs ValidationErrors

	if err := ValidateOneOf("server.transport", c.Server.Transport, Transports); err != nil {
		errs = append(errs, err.(ValidationError))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs.Add("server.port", "must be between 0 and 65535", c.Server.Port)
	}
	if !strings.HasPrefix(c.Server.MetricsPath, "/") {
		errs.Add("server.metricsPath", "must start with '/'", c.Server.MetricsPath)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs.Add("logging.level", err.Error(), c.Logging.Level)
	}
	if err := ValidateOneOf("logging.format", c.Logging.Format, LogFormats); err != nil {
		errs = append(errs, err.(ValidationError))
	}

	if _, err := c.Functions.Location(); err != nil {
		errs.Add("functions.timezone", err.Error(), c.Functions.Timezone)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Location loads the configured time zone. An empty value means UTC.
func (f FunctionsConfig) Location() (*time.Location, error) {
	if f.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q", f.Timezone)
	}
	return loc, nil
}
