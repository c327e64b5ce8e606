package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romellogoodman/monolith/internal/api"
)

func TestJSONToCSV(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "Alice", "age": 30.0},
		{"name": "Bob", "age": 25.0},
	}

	t.Run("explicit columns", func(t *testing.T) {
		got := requireSuccess(t, JSONToCSV(rows, []string{"name", "age"}))
		assert.Equal(t, "name,age\nAlice,30\nBob,25", got)
	})

	t.Run("sorted union of keys", func(t *testing.T) {
		got := requireSuccess(t, JSONToCSV(rows, nil))
		assert.Equal(t, "age,name\n30,Alice\n25,Bob", got)
	})

	t.Run("missing and special values", func(t *testing.T) {
		in := []map[string]interface{}{
			{"a": "x,y", "b": true},
			{"a": map[string]interface{}{"k": 1.0}, "c": nil},
		}
		got := requireSuccess(t, JSONToCSV(in, nil))
		assert.Equal(t, "a,b,c\n\"x,y\",true,\n\"{\"\"k\"\":1}\",,", got)
	})

	t.Run("fractions keep precision", func(t *testing.T) {
		got := requireSuccess(t, JSONToCSV([]map[string]interface{}{{"v": 0.1}}, nil))
		assert.Equal(t, "v\n0.1", got)
	})

	t.Run("empty input", func(t *testing.T) {
		r := JSONToCSV(nil, nil)
		assert.Equal(t, "", requireSuccess(t, r))
		assert.Equal(t, "array", r.Metadata.InputType)
		assert.Equal(t, "string", r.Metadata.OutputType)
	})
}

func TestCSVToJSON(t *testing.T) {
	t.Run("header row becomes keys", func(t *testing.T) {
		got := requireSuccess(t, CSVToJSON("name,age\nAlice,30\nBob,25"))
		assert.Equal(t, []interface{}{
			map[string]interface{}{"name": "Alice", "age": "30"},
			map[string]interface{}{"name": "Bob", "age": "25"},
		}, got)
	})

	t.Run("quoted fields and blank lines", func(t *testing.T) {
		got := requireSuccess(t, CSVToJSON("a,b\n\n\"x,1\",\"line\nbreak\"\n"))
		assert.Equal(t, []interface{}{
			map[string]interface{}{"a": "x,1", "b": "line\nbreak"},
		}, got)
	})

	t.Run("header only", func(t *testing.T) {
		assert.Equal(t, []interface{}{}, requireSuccess(t, CSVToJSON("a,b")))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, []interface{}{}, requireSuccess(t, CSVToJSON("")))
	})

	t.Run("field count mismatch", func(t *testing.T) {
		r := CSVToJSON("a,b\n1\n1,2\n1,2,3")
		requireFailure(t, r, api.ErrCodeParse)
		assert.Equal(t,
			"CSV parsing errors: Too few fields: expected 2 fields but parsed 1, Too many fields: expected 2 fields but parsed 3",
			r.Error)

		details, ok := r.Details.([]CSVRowError)
		require.True(t, ok)
		require.Len(t, details, 2)
		assert.Equal(t, CSVRowError{
			Type:    "FieldMismatch",
			Code:    "TooFewFields",
			Message: "Too few fields: expected 2 fields but parsed 1",
			Row:     0,
		}, details[0])
		assert.Equal(t, "TooManyFields", details[1].Code)
		assert.Equal(t, 2, details[1].Row)
	})

	t.Run("broken quotes", func(t *testing.T) {
		r := CSVToJSON("a,b\n\"unterminated,1")
		requireFailure(t, r, api.ErrCodeParse)
		details := r.Details.([]CSVRowError)
		require.Len(t, details, 1)
		assert.Equal(t, "InvalidQuotes", details[0].Code)
	})
}
