package utility

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date patterns use Unicode-style tokens (as popularized by date-fns):
//
//	yyyy 2025   yy 25      y 2025
//	MMMM December  MMM Dec  MM 12  M 12
//	dd 09   d 9
//	EEEE Thursday  EEE/EE/E Thu
//	HH 07   H 7    hh 07   h 7    a AM
//	mm 05   m 5    ss 03   s 3    SSS 042
//	XXX Z or +02:00   xxx +00:00
//
// Text between single quotes is literal and '' is a literal quote. Any
// other latin letter is rejected.
type patternToken struct {
	field   string // repeated letter run, e.g. "yyyy"; empty for literals
	literal string
}

// goLayouts maps pattern tokens onto reference-time layout elements for
// parsing.
var goLayouts = map[string]string{
	"yyyy": "2006", "y": "2006", "yy": "06",
	"MMMM": "January", "MMM": "Jan", "MM": "01", "M": "1",
	"dd": "02", "d": "2",
	"EEEE": "Monday", "EEE": "Mon", "EE": "Mon", "E": "Mon",
	"HH": "15", "H": "15", "hh": "03", "h": "3",
	"mm": "04", "m": "4", "ss": "05", "s": "5",
	"a":   "PM",
	"XXX": "Z07:00", "xxx": "-07:00",
}

func tokenizePattern(pattern string) ([]patternToken, error) {
	var tokens []patternToken
	runes := []rune(pattern)

	appendLiteral := func(s string) {
		if n := len(tokens); n > 0 && tokens[n-1].field == "" {
			tokens[n-1].literal += s
			return
		}
		tokens = append(tokens, patternToken{literal: s})
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				appendLiteral("'")
				i += 2
				continue
			}
			j := i + 1
			var sb strings.Builder
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						sb.WriteRune('\'')
						j += 2
						continue
					}
					break
				}
				sb.WriteRune(runes[j])
				j++
			}
			appendLiteral(sb.String())
			i = j + 1

		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			field := string(runes[i:j])
			if _, ok := goLayouts[field]; !ok && field != "SSS" {
				return nil, fmt.Errorf("format string contains an unsupported token `%s`", field)
			}
			tokens = append(tokens, patternToken{field: field})
			i = j

		default:
			appendLiteral(string(r))
			i++
		}
	}
	return tokens, nil
}

// formatPattern renders t according to pattern.
func formatPattern(t time.Time, pattern string) (string, error) {
	tokens, err := tokenizePattern(pattern)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, tok := range tokens {
		if tok.field == "" {
			sb.WriteString(tok.literal)
			continue
		}
		sb.WriteString(renderField(t, tok.field))
	}
	return sb.String(), nil
}

func renderField(t time.Time, field string) string {
	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}

	switch field {
	case "yyyy":
		return fmt.Sprintf("%04d", t.Year())
	case "y":
		return strconv.Itoa(t.Year())
	case "yy":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "dd":
		return fmt.Sprintf("%02d", t.Day())
	case "d":
		return strconv.Itoa(t.Day())
	case "EEEE":
		return t.Weekday().String()
	case "EEE", "EE", "E":
		return t.Weekday().String()[:3]
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12)
	case "h":
		return strconv.Itoa(hour12)
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "a":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "XXX":
		return t.Format("Z07:00")
	case "xxx":
		return t.Format("-07:00")
	}
	return field
}

// layoutForPattern translates pattern into a layout for time.Parse.
// Fractional seconds are only supported directly after a literal '.'.
func layoutForPattern(pattern string) (string, error) {
	tokens, err := tokenizePattern(pattern)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, tok := range tokens {
		if tok.field == "" {
			sb.WriteString(tok.literal)
			continue
		}
		if tok.field == "SSS" {
			if !strings.HasSuffix(sb.String(), ".") {
				return "", fmt.Errorf("token `SSS` must follow a literal '.' when parsing")
			}
			sb.WriteString("000")
			continue
		}
		sb.WriteString(goLayouts[tok.field])
	}
	return sb.String(), nil
}
