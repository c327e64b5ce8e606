package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romellogoodman/monolith/internal/api"
)

var truncateArgs = []api.ArgMetadata{
	{Name: "input", Type: TypeString, Required: true},
	{Name: "length", Type: TypeInteger, Required: true, Rules: "gt=0"},
	{Name: "suffix", Type: TypeString, Default: "..."},
}

func TestValidate_AppliesDefaults(t *testing.T) {
	args, err := Validate(truncateArgs, map[string]interface{}{
		"input":  "Hello World",
		"length": float64(8),
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello World", args.String("input"))
	assert.Equal(t, 8, args.Int("length"))
	assert.Equal(t, "...", args.String("suffix"))
}

func TestValidate_MissingRequired(t *testing.T) {
	_, err := Validate(truncateArgs, map[string]interface{}{"length": 3})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "input", verrs[0].Field)
	assert.Equal(t, "invalid arguments: input: is required", err.Error())
}

func TestValidate_NullTreatedAsAbsent(t *testing.T) {
	args, err := Validate(truncateArgs, map[string]interface{}{
		"input":  "x",
		"length": 1,
		"suffix": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "...", args.String("suffix"))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	_, err := Validate(truncateArgs, map[string]interface{}{
		"input":  42,
		"length": -1,
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "expected string, received number", verrs[0].Message)
	assert.Equal(t, "must be greater than 0", verrs[1].Message)
}

func TestValidate_Coercion(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		in      interface{}
		want    interface{}
		wantErr string
	}{
		{"number from float", TypeNumber, 3.5, 3.5, ""},
		{"number from int", TypeNumber, 7, float64(7), ""},
		{"number from json.Number", TypeNumber, json.Number("2.25"), 2.25, ""},
		{"number from numeric string", TypeNumber, " 10 ", float64(10), ""},
		{"number rejects word", TypeNumber, "ten", nil, "expected number, received string"},
		{"number rejects bool", TypeNumber, true, nil, "expected number, received boolean"},
		{"integer from whole float", TypeInteger, float64(4), 4, ""},
		{"integer rejects fraction", TypeInteger, 4.5, nil, "expected integer, received float"},
		{"boolean native", TypeBoolean, false, false, ""},
		{"boolean from string", TypeBoolean, "true", true, ""},
		{"boolean rejects number", TypeBoolean, 1, nil, "expected boolean, received number"},
		{"string rejects number", TypeString, 1.0, nil, "expected string, received number"},
		{"array native", TypeArray, []interface{}{1.0, "a"}, []interface{}{1.0, "a"}, ""},
		{"array from json string", TypeArray, `[1,2]`, []interface{}{float64(1), float64(2)}, ""},
		{"array from typed slice", TypeArray, []string{"a"}, []interface{}{"a"}, ""},
		{"array rejects object", TypeArray, map[string]interface{}{}, nil, "expected array, received object"},
		{"object native", TypeObject, map[string]interface{}{"a": 1.0}, map[string]interface{}{"a": 1.0}, ""},
		{"object from json string", TypeObject, `{"a":1}`, map[string]interface{}{"a": float64(1)}, ""},
		{"object rejects array", TypeObject, []interface{}{}, nil, "expected object, received array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := []api.ArgMetadata{{Name: "v", Type: tt.typ, Required: true}}
			args, err := Validate(params, map[string]interface{}{"v": tt.in})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, args["v"])
		})
	}
}

func TestValidate_Enum(t *testing.T) {
	params := []api.ArgMetadata{{Name: "direction", Type: TypeString, Default: "asc", Enum: []string{"asc", "desc"}}}

	args, err := Validate(params, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "asc", args.String("direction"))

	args, err = Validate(params, map[string]interface{}{"direction": "desc"})
	require.NoError(t, err)
	assert.Equal(t, "desc", args.String("direction"))

	_, err = Validate(params, map[string]interface{}{"direction": "up"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of asc, desc")
}

func TestValidate_ArrayItems(t *testing.T) {
	params := []api.ArgMetadata{{Name: "rows", Type: TypeArray, Items: TypeObject, Required: true}}

	args, err := Validate(params, map[string]interface{}{
		"rows": []interface{}{map[string]interface{}{"a": 1.0}},
	})
	require.NoError(t, err)
	assert.Len(t, args.Objects("rows"), 1)

	_, err = Validate(params, map[string]interface{}{
		"rows": []interface{}{map[string]interface{}{}, "nope"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows[1]: expected object, received string")
}

func TestValidate_GteRule(t *testing.T) {
	params := []api.ArgMetadata{{Name: "decimals", Type: TypeInteger, Required: true, Rules: "gte=0"}}

	_, err := Validate(params, map[string]interface{}{"decimals": 0})
	assert.NoError(t, err)

	_, err = Validate(params, map[string]interface{}{"decimals": -2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decimals: must be greater than or equal to 0")
}

func TestValidate_DropsUnknownKeys(t *testing.T) {
	args, err := Validate(truncateArgs, map[string]interface{}{
		"input":  "x",
		"length": 2,
		"extra":  true,
	})
	require.NoError(t, err)
	assert.False(t, args.Has("extra"))
}

func TestValidate_DefaultIsCopied(t *testing.T) {
	params := []api.ArgMetadata{{Name: "cols", Type: TypeArray, Default: []interface{}{"a"}}}

	args, err := Validate(params, nil)
	require.NoError(t, err)
	args.Slice("cols")[0] = "mutated"

	assert.Equal(t, []interface{}{"a"}, params[0].Default)
}

func TestValidate_InputArrayNotAliased(t *testing.T) {
	params := []api.ArgMetadata{{Name: "array", Type: TypeArray, Required: true}}
	in := []interface{}{3.0, 1.0}

	args, err := Validate(params, map[string]interface{}{"array": in})
	require.NoError(t, err)
	args.Slice("array")[0] = 9.0

	assert.Equal(t, 3.0, in[0])
}
