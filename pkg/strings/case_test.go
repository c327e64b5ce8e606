package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello-world", "helloWorld"},
		{"Hello World", "helloWorld"},
		{"hello_big_world", "helloBigWorld"},
		{"--leading", "leading"},
		{"HELLO WORLD", "helloWorld"},
		{"version 2 release", "version2Release"},
		{"already", "already"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCamelCase(tt.input))
		})
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"helloWorld", "hello-world"},
		{"Hello World", "hello-world"},
		{"snake_case_value", "snake-case-value"},
		{"with  many   spaces", "with-many-spaces"},
		{"strip!@#chars", "stripchars"},
		{"aBcD", "a-bc-d"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToKebabCase(tt.input))
		})
	}
}
