package config

import (
	"fmt"
	"path/filepath"
)

// ConfigurationError reports a configuration file that could not be read or
// decoded.
type ConfigurationError struct {
	FilePath  string `json:"filePath"`
	FileName  string `json:"fileName"`
	ErrorType string `json:"errorType"` // io, format or parse
	Message   string `json:"message"`
}

// Error implements the error interface
func (ce ConfigurationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ce.ErrorType, ce.FileName, ce.Message)
}

// NewConfigurationError creates a configuration error for filePath.
func NewConfigurationError(filePath, errorType, message string) ConfigurationError {
	return ConfigurationError{
		FilePath:  filePath,
		FileName:  filepath.Base(filePath),
		ErrorType: errorType,
		Message:   message,
	}
}
