package strings

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	camelBoundary = regexp.MustCompile(`[^a-zA-Z0-9]+(.)`)
	kebabHump     = regexp.MustCompile(`([a-z])([A-Z])`)
	kebabSpacing  = regexp.MustCompile(`[\s_]+`)
	kebabInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
)

// ToCamelCase lower-cases s, drops every run of non-alphanumeric characters
// and upper-cases the character that follows each run. A leading upper-case
// letter is lowered.
//
//	ToCamelCase("hello-world") // "helloWorld"
//	ToCamelCase("Hello World") // "helloWorld"
func ToCamelCase(s string) string {
	out := camelBoundary.ReplaceAllStringFunc(strings.ToLower(s), func(m string) string {
		r, _ := utf8.DecodeLastRuneInString(m)
		return string(unicode.ToUpper(r))
	})

	r, size := utf8.DecodeRuneInString(out)
	if r >= 'A' && r <= 'Z' {
		return string(unicode.ToLower(r)) + out[size:]
	}
	return out
}

// ToKebabCase splits lower-to-upper humps with a hyphen, turns whitespace
// and underscores into hyphens, lower-cases the result and removes anything
// that is not [a-z0-9-].
//
//	ToKebabCase("helloWorld")  // "hello-world"
//	ToKebabCase("Hello World") // "hello-world"
func ToKebabCase(s string) string {
	out := kebabHump.ReplaceAllString(s, "${1}-${2}")
	out = kebabSpacing.ReplaceAllString(out, "-")
	out = strings.ToLower(out)
	return kebabInvalid.ReplaceAllString(out, "")
}
