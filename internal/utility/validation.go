package utility

import (
	"net"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/romellogoodman/monolith/internal/api"
)

var validate = validator.New()

var urlSchemes = map[string]bool{"http": true, "https": true, "ftp": true}

// IsEmail reports whether input is a syntactically valid email address.
func IsEmail(input string) api.Response {
	return api.Success(validate.Var(input, "required,email") == nil, meta(typeString, typeBoolean))
}

// IsURL reports whether input is an http, https or ftp URL. The scheme may
// be omitted ("example.com"), but the host must be an IP address or a domain
// with a top-level domain.
func IsURL(input string) api.Response {
	return api.Success(isURL(input), meta(typeString, typeBoolean))
}

func isURL(input string) bool {
	if input == "" || strings.IndexFunc(input, unicode.IsSpace) >= 0 {
		return false
	}

	candidate := input
	if !strings.Contains(input, "://") {
		candidate = "http://" + input
	}
	if validate.Var(candidate, "url") != nil {
		return false
	}

	u, err := url.Parse(candidate)
	if err != nil || !urlSchemes[strings.ToLower(u.Scheme)] {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	return validate.Var(host, "fqdn") == nil
}

// IsUUID reports whether input is a UUID in the canonical hyphenated form.
func IsUUID(input string) api.Response {
	valid := false
	if len(input) == 36 {
		_, err := uuid.Parse(input)
		valid = err == nil
	}
	return api.Success(valid, meta(typeString, typeBoolean))
}
