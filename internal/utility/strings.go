package utility

import (
	"github.com/romellogoodman/monolith/internal/api"
	pkgstrings "github.com/romellogoodman/monolith/pkg/strings"
)

// ToCamelCase converts input to camelCase.
func ToCamelCase(input string) api.Response {
	return api.Success(pkgstrings.ToCamelCase(input), meta(typeString, typeString))
}

// ToKebabCase converts input to kebab-case.
func ToKebabCase(input string) api.Response {
	return api.Success(pkgstrings.ToKebabCase(input), meta(typeString, typeString))
}

// Truncate shortens input to length runes, ending with suffix when cut.
func Truncate(input string, length int, suffix string) api.Response {
	if length <= 0 {
		return api.Failure("Length must be a positive integer", api.ErrCodeTruncation)
	}
	return api.Success(pkgstrings.Truncate(input, length, suffix), meta(typeString, typeString))
}
