package utility

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/romellogoodman/monolith/internal/api"
)

// ISOLayout is the output layout of every date function: UTC with
// millisecond precision, e.g. "2025-12-11T00:00:00.000Z".
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// isoInputLayouts are tried in order by parseISO. Layouts without an offset
// are interpreted in the caller's location.
var isoInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func toISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

func parseISO(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range isoInputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDate parses input and returns it as an ISO 8601 UTC string. With an
// empty format the input's layout is detected automatically; otherwise
// format is a token pattern (see datefmt.go). Inputs without an explicit
// offset are interpreted in loc.
func ParseDate(input, format string, loc *time.Location) api.Response {
	if loc == nil {
		loc = time.UTC
	}

	var (
		t   time.Time
		err error
	)
	if format != "" {
		layout, lerr := layoutForPattern(format)
		if lerr != nil {
			return api.Failure(lerr.Error(), api.ErrCodeFormat)
		}
		t, err = time.ParseInLocation(layout, input, loc)
	} else {
		t, err = dateparse.ParseIn(input, loc)
	}
	if err != nil {
		return api.Failure("Invalid date string", api.ErrCodeInvalidDate)
	}

	return api.Success(toISO(t), meta(typeString, typeString))
}

// FormatDate renders an ISO date with a token pattern in loc.
func FormatDate(isoDate, format string, loc *time.Location) api.Response {
	if loc == nil {
		loc = time.UTC
	}

	t, ok := parseISO(isoDate, loc)
	if !ok {
		return api.Failure("Invalid ISO date string", api.ErrCodeInvalidDate)
	}

	out, err := formatPattern(t.In(loc), format)
	if err != nil {
		return api.Failure(err.Error(), api.ErrCodeFormat)
	}
	return api.Success(out, meta(typeString, typeString))
}

// AddDays moves an ISO date by whole calendar days in loc. Negative days
// subtract.
func AddDays(isoDate string, days int, loc *time.Location) api.Response {
	if loc == nil {
		loc = time.UTC
	}

	t, ok := parseISO(isoDate, loc)
	if !ok {
		return api.Failure("Invalid ISO date string", api.ErrCodeInvalidDate)
	}

	moved := t.In(loc).AddDate(0, 0, days)
	if moved.Year() > 9999 || moved.Year() < 0 {
		return api.Failure("Resulting date is out of range", api.ErrCodeCalculation)
	}
	return api.Success(toISO(moved), meta(typeString, typeString))
}
