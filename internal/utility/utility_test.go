package utility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romellogoodman/monolith/internal/api"
)

func requireSuccess(t *testing.T, r api.Response) interface{} {
	t.Helper()
	require.True(t, r.Success, "expected success, got %s (%s)", r.Error, r.ErrorCode)
	return r.Result
}

func requireFailure(t *testing.T, r api.Response, code string) {
	t.Helper()
	require.False(t, r.Success, "expected failure, got result %v", r.Result)
	assert.Equal(t, code, r.ErrorCode)
	assert.NotEmpty(t, r.Error)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "helloWorld", requireSuccess(t, ToCamelCase("hello-world")))
	assert.Equal(t, "hello-world", requireSuccess(t, ToKebabCase("helloWorld")))
	assert.Equal(t, "Hello...", requireSuccess(t, Truncate("Hello World", 8, "...")))
	assert.Equal(t, "Hi", requireSuccess(t, Truncate("Hi", 10, "...")))

	r := ToCamelCase("x")
	require.NotNil(t, r.Metadata)
	assert.Equal(t, "string", r.Metadata.InputType)
	assert.Equal(t, "string", r.Metadata.OutputType)

	requireFailure(t, Truncate("Hello", 0, "..."), api.ErrCodeTruncation)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) api.Response
		in   string
		want bool
	}{
		{"email valid", IsEmail, "user@example.com", true},
		{"email invalid", IsEmail, "not-an-email", false},
		{"email empty", IsEmail, "", false},
		{"url with scheme", IsURL, "https://example.com", true},
		{"url with path and query", IsURL, "http://example.com/a/b?c=d", true},
		{"url without scheme", IsURL, "example.com", true},
		{"url ip host", IsURL, "http://127.0.0.1:8080", true},
		{"url ftp", IsURL, "ftp://files.example.org", true},
		{"url with spaces", IsURL, "not a url", false},
		{"url without tld", IsURL, "http://localhost", false},
		{"url unsupported scheme", IsURL, "gopher://example.com", false},
		{"url userinfo without scheme", IsURL, "mailto:user@example.com", true},
		{"url empty", IsURL, "", false},
		{"uuid valid", IsUUID, "550e8400-e29b-41d4-a716-446655440000", true},
		{"uuid upper case", IsUUID, "550E8400-E29B-41D4-A716-446655440000", true},
		{"uuid invalid", IsUUID, "not-a-uuid", false},
		{"uuid braces rejected", IsUUID, "{550e8400-e29b-41d4-a716-446655440000}", false},
		{"uuid urn rejected", IsUUID, "urn:uuid:550e8400-e29b-41d4-a716-446655440000", false},
		{"uuid compact rejected", IsUUID, "550e8400e29b41d4a716446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.fn(tt.in)
			assert.Equal(t, tt.want, requireSuccess(t, r))
			assert.Equal(t, "boolean", r.Metadata.OutputType)
		})
	}
}

func TestMath(t *testing.T) {
	assert.Equal(t, 3.14, requireSuccess(t, Round(3.14159, 2)))
	assert.Equal(t, 4.0, requireSuccess(t, Round(3.7, 0)))
	assert.Equal(t, -3.0, requireSuccess(t, Round(-2.5, 0)))
	assert.Equal(t, 0.13, requireSuccess(t, Round(0.125, 2)))

	zero := requireSuccess(t, Round(-0.001, 2)).(float64)
	assert.Equal(t, 0.0, zero)
	assert.False(t, math.Signbit(zero), "rounding to zero drops the sign")
	requireFailure(t, Round(1, -1), api.ErrCodeMath)
	requireFailure(t, Round(math.Inf(1), 2), api.ErrCodeMath)

	assert.Equal(t, 50.0, requireSuccess(t, Clamp(100, 0, 50)))
	assert.Equal(t, 0.0, requireSuccess(t, Clamp(-10, 0, 100)))
	assert.Equal(t, 7.0, requireSuccess(t, Clamp(7, 7, 7)))

	r := Clamp(1, 10, 5)
	requireFailure(t, r, api.ErrCodeInvalidRange)
	assert.Equal(t, "Min value cannot be greater than max value", r.Error)
}

func TestUnique(t *testing.T) {
	in := []interface{}{1.0, 2.0, 2.0, 3.0, 3.0, 3.0}
	assert.Equal(t, []interface{}{1.0, 2.0, 3.0}, requireSuccess(t, Unique(in)))

	mixed := []interface{}{1.0, "1", true, nil, "1", nil, true}
	assert.Equal(t, []interface{}{1.0, "1", true, nil}, requireSuccess(t, Unique(mixed)))

	obj := map[string]interface{}{"a": 1.0}
	objs := []interface{}{obj, map[string]interface{}{"a": 1.0}}
	assert.Len(t, requireSuccess(t, Unique(objs)), 2)

	assert.Equal(t, []interface{}{}, requireSuccess(t, Unique(nil)))

	zeros := []interface{}{0.0, math.Copysign(0, -1), 2, 2.0, math.NaN(), math.NaN(), "0"}
	got := requireSuccess(t, Unique(zeros)).([]interface{})
	require.Len(t, got, 4)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 2, got[1])
	assert.True(t, math.IsNaN(got[2].(float64)))
	assert.Equal(t, "0", got[3])
}

func TestSortBy(t *testing.T) {
	bob := map[string]interface{}{"name": "Bob", "age": 25.0}
	alice := map[string]interface{}{"name": "Alice", "age": 30.0}
	carol := map[string]interface{}{"name": "Carol"}

	got := requireSuccess(t, SortBy([]map[string]interface{}{alice, bob}, "age", SortAscending))
	assert.Equal(t, []interface{}{bob, alice}, got)

	got = requireSuccess(t, SortBy([]map[string]interface{}{bob, alice}, "age", SortDescending))
	assert.Equal(t, []interface{}{alice, bob}, got)

	got = requireSuccess(t, SortBy([]map[string]interface{}{bob, alice}, "name", ""))
	assert.Equal(t, []interface{}{alice, bob}, got)

	// Missing values compare equal and keep their relative order.
	got = requireSuccess(t, SortBy([]map[string]interface{}{carol, bob}, "age", SortAscending))
	assert.Equal(t, []interface{}{carol, bob}, got)

	flags := []map[string]interface{}{{"on": true}, {"on": false}}
	got = requireSuccess(t, SortBy(flags, "on", SortAscending))
	assert.Equal(t, false, got.([]interface{})[0].(map[string]interface{})["on"])

	requireFailure(t, SortBy(nil, "age", "sideways"), api.ErrCodeSort)
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	in := []map[string]interface{}{{"v": 2.0}, {"v": 1.0}}
	requireSuccess(t, SortBy(in, "v", SortAscending))
	assert.Equal(t, 2.0, in[0]["v"])
}

func TestBase64(t *testing.T) {
	assert.Equal(t, "SGVsbG8gV29ybGQ=", requireSuccess(t, Base64Encode("Hello World")))
	assert.Equal(t, "", requireSuccess(t, Base64Encode("")))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"padded", "SGVsbG8gV29ybGQ=", "Hello World"},
		{"unpadded", "SGVsbG8gV29ybGQ", "Hello World"},
		{"with whitespace", "SGVs bG8g\nV29y bGQ=", "Hello World"},
		{"url alphabet", "Pz8-", "??>"},
		{"invalid utf8 replaced", "/w==", "\uFFFD"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requireSuccess(t, Base64Decode(tt.in)))
		})
	}

	requireFailure(t, Base64Decode("!!!not base64!!!"), api.ErrCodeDecoding)
}
