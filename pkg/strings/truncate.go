package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is the default maximum length for descriptions in formatted output.
const DefaultDescriptionMaxLen = 60

// DefaultSuffix is appended by Truncate when the caller does not pick one.
const DefaultSuffix = "..."

// MinTruncateLen is the minimum maxLen value for TruncateDescription.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// Truncate shortens s to at most length runes. When s is longer, the result
// ends with suffix and the total length is exactly length. If length is
// shorter than the suffix itself, the suffix is cut to length.
//
// Args:
//   - s: The string to truncate
//   - length: Maximum length of the result in runes (including suffix)
//   - suffix: Marker appended when truncation happens
//
// Returns:
//   - The original string when it already fits, otherwise the shortened string
func Truncate(s string, length int, suffix string) string {
	if length < 0 {
		length = 0
	}

	runes := []rune(s)
	if len(runes) <= length {
		return s
	}

	suffixRunes := []rune(suffix)
	if len(suffixRunes) >= length {
		return string(suffixRunes[:length])
	}
	return string(runes[:length-len(suffixRunes)]) + suffix
}

// TruncateDescription collapses all whitespace in s to single spaces and
// truncates the result to maxLen runes with a "..." suffix, so descriptions
// render on a single table row.
//
// If maxLen is less than MinTruncateLen (4), it is clamped to MinTruncateLen.
func TruncateDescription(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}
	return Truncate(strings.Join(strings.Fields(s), " "), maxLen, DefaultSuffix)
}
