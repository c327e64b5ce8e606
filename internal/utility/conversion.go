package utility

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/romellogoodman/monolith/internal/api"
)

// CSVRowError describes one malformed CSV row.
type CSVRowError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Row     int    `json:"row"`
}

// JSONToCSV renders rows as CSV with a header line. columns selects and
// orders the header; when empty, the sorted union of all row keys is used.
// Lines are separated by "\n" and the output has no trailing newline.
func JSONToCSV(rows []map[string]interface{}, columns []string) api.Response {
	if len(rows) == 0 {
		return api.Success("", meta(typeArray, typeString))
	}

	header := columns
	if len(header) == 0 {
		header = collectKeys(rows)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return api.Failure(err.Error(), api.ErrCodeConversion)
	}

	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			cell, err := csvCell(row[col])
			if err != nil {
				return api.Failure(fmt.Sprintf("column %q: %v", col, err), api.ErrCodeConversion)
			}
			record[i] = cell
		}
		if err := w.Write(record); err != nil {
			return api.Failure(err.Error(), api.ErrCodeConversion)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return api.Failure(err.Error(), api.ErrCodeConversion)
	}

	return api.Success(strings.TrimSuffix(buf.String(), "\n"), meta(typeArray, typeString))
}

func collectKeys(rows []map[string]interface{}) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func csvCell(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CSVToJSON parses CSV with a header row into an array of objects whose
// values are all strings. Empty lines are skipped. Rows with a field count
// different from the header are reported as a PARSE_ERROR whose details
// list every offending row.
func CSVToJSON(input string) api.Response {
	r := csv.NewReader(strings.NewReader(input))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return api.Success([]interface{}{}, meta(typeString, typeArray))
	}
	if err != nil {
		return csvParseFailure([]CSVRowError{csvSyntaxError(err, 0)})
	}

	rows := []interface{}{}
	var rowErrs []CSVRowError
	for index := 0; ; index++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, csvSyntaxError(err, index))
			break
		}

		switch {
		case len(record) < len(header):
			rowErrs = append(rowErrs, CSVRowError{
				Type:    "FieldMismatch",
				Code:    "TooFewFields",
				Message: fmt.Sprintf("Too few fields: expected %d fields but parsed %d", len(header), len(record)),
				Row:     index,
			})
		case len(record) > len(header):
			rowErrs = append(rowErrs, CSVRowError{
				Type:    "FieldMismatch",
				Code:    "TooManyFields",
				Message: fmt.Sprintf("Too many fields: expected %d fields but parsed %d", len(header), len(record)),
				Row:     index,
			})
		}

		obj := make(map[string]interface{}, len(header))
		for i, col := range header {
			if i < len(record) {
				obj[col] = record[i]
			}
		}
		rows = append(rows, obj)
	}

	if len(rowErrs) > 0 {
		return csvParseFailure(rowErrs)
	}
	return api.Success(rows, meta(typeString, typeArray))
}

func csvSyntaxError(err error, row int) CSVRowError {
	var perr *csv.ParseError
	msg := err.Error()
	if errors.As(err, &perr) {
		msg = perr.Err.Error()
	}
	return CSVRowError{Type: "Quotes", Code: "InvalidQuotes", Message: msg, Row: row}
}

func csvParseFailure(rowErrs []CSVRowError) api.Response {
	msgs := make([]string, len(rowErrs))
	for i, e := range rowErrs {
		msgs[i] = e.Message
	}
	return api.Failure("CSV parsing errors: "+strings.Join(msgs, ", "), api.ErrCodeParse, rowErrs)
}
