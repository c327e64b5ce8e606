package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/romellogoodman/monolith/internal/api"
)

// Semantic argument types understood by Validate.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a raw argument bag against the declared arguments and
// returns a normalized bag:
//   - declared defaults are applied to absent optional arguments
//   - values are coerced to their declared type (numbers become float64,
//     integers become int, JSON strings are decoded for arrays and objects)
//   - enum membership and validator rules are checked after coercion
//   - undeclared keys are dropped
//
// All problems are collected; the returned error is a ValidationErrors.
func Validate(params []api.ArgMetadata, raw map[string]interface{}) (Args, error) {
	out := make(Args, len(params))
	var errs ValidationErrors

	for _, p := range params {
		value, present := raw[p.Name]
		if !present || value == nil {
			if p.Default != nil {
				out[p.Name] = copyValue(p.Default)
				continue
			}
			if p.Required {
				errs.Add(p.Name, "is required")
			}
			continue
		}

		coerced, err := coerce(p.Type, value)
		if err != nil {
			errs.Add(p.Name, err.Error())
			continue
		}

		if p.Type == TypeArray && p.Items != "" {
			items := coerced.([]interface{})
			for i, item := range items {
				c, err := coerce(p.Items, item)
				if err != nil {
					errs.Add(fmt.Sprintf("%s[%d]", p.Name, i), err.Error())
					continue
				}
				items[i] = c
			}
		}

		if len(p.Enum) > 0 {
			if err := validate.Var(coerced, "oneof="+strings.Join(p.Enum, " ")); err != nil {
				errs.Add(p.Name, fmt.Sprintf("must be one of %s", strings.Join(p.Enum, ", ")))
				continue
			}
		}

		if p.Rules != "" {
			if err := validate.Var(coerced, p.Rules); err != nil {
				errs.Add(p.Name, describeRuleError(err))
				continue
			}
		}

		out[p.Name] = coerced
	}

	if errs.HasErrors() {
		return nil, errs
	}
	return out, nil
}

func coerce(typ string, value interface{}) (interface{}, error) {
	switch typ {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, received %s", typeName(value))
		}
		return s, nil

	case TypeNumber:
		f, ok := toFloat(value)
		if !ok {
			return nil, fmt.Errorf("expected number, received %s", typeName(value))
		}
		return f, nil

	case TypeInteger:
		f, ok := toFloat(value)
		if !ok {
			return nil, fmt.Errorf("expected integer, received %s", typeName(value))
		}
		if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
			return nil, errors.New("expected integer, received float")
		}
		if f > math.MaxInt32 || f < math.MinInt32 {
			return nil, errors.New("integer out of range")
		}
		return int(f), nil

	case TypeBoolean:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err == nil {
				return b, nil
			}
		}
		return nil, fmt.Errorf("expected boolean, received %s", typeName(value))

	case TypeArray:
		switch v := value.(type) {
		case []interface{}:
			return cloneSlice(v), nil
		case string:
			var arr []interface{}
			if err := json.Unmarshal([]byte(v), &arr); err == nil && arr != nil {
				return arr, nil
			}
		default:
			rv := reflect.ValueOf(value)
			if rv.Kind() == reflect.Slice {
				arr := make([]interface{}, rv.Len())
				for i := range arr {
					arr[i] = rv.Index(i).Interface()
				}
				return arr, nil
			}
		}
		return nil, fmt.Errorf("expected array, received %s", typeName(value))

	case TypeObject:
		switch v := value.(type) {
		case map[string]interface{}:
			return v, nil
		case string:
			var obj map[string]interface{}
			if err := json.Unmarshal([]byte(v), &obj); err == nil && obj != nil {
				return obj, nil
			}
		}
		return nil, fmt.Errorf("expected object, received %s", typeName(value))

	case "":
		return value, nil
	}

	return nil, fmt.Errorf("unsupported argument type %q", typ)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}

// typeName reports the JSON type of a decoded value, for error messages.
func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	}
	return fmt.Sprintf("%T", value)
}

func describeRuleError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " items"
	case "max":
		return "must have at most " + fe.Param() + " items"
	case "required":
		return "must not be empty"
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}

// copyValue returns a copy of v that shares no maps or slices with it, so a
// caller mutating a normalized argument can never alter a declared default.
func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case []interface{}:
		return cloneSlice(t)
	case []string:
		return append([]string(nil), t...)
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = copyValue(val)
		}
		return m
	}
	return v
}

func cloneSlice(in []interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = copyValue(v)
	}
	return out
}
