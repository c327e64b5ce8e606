package utility

import (
	"encoding/base64"
	"strings"
	"unicode"

	"github.com/romellogoodman/monolith/internal/api"
)

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// Base64Encode encodes the UTF-8 bytes of input with the standard alphabet.
func Base64Encode(input string) api.Response {
	return api.Success(base64.StdEncoding.EncodeToString([]byte(input)), meta(typeString, typeString))
}

// Base64Decode decodes standard or URL-safe base64, padded or not, ignoring
// whitespace. Byte sequences that are not valid UTF-8 are replaced with
// U+FFFD.
func Base64Decode(input string) api.Response {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)

	for _, enc := range base64Encodings {
		if b, err := enc.DecodeString(cleaned); err == nil {
			return api.Success(strings.ToValidUTF8(string(b), "\uFFFD"), meta(typeString, typeString))
		}
	}
	return api.Failure("Invalid base64 input", api.ErrCodeDecoding)
}
