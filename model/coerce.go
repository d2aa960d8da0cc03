package model

import (
	"encoding/json"
	"math"

	"github.com/go-zoox/core-utils/cast"
)

// Target identifies the field a value is coerced for, for error reporting.
type Target struct {
	Model string
	Field string
}

// AsString accepts a string.
func AsString(t Target, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", mismatch(t.Model, t.Field, "string", v)
	}

	return s, nil
}

// AsBool accepts a bool.
func AsBool(t Target, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(t.Model, t.Field, "bool", v)
	}

	return b, nil
}

// AsNumber accepts any finite Go numeric value or a json.Number. NaN and the
// infinities have no JSON form and are rejected.
func AsNumber(t Target, v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		f = cast.ToFloat64(x)
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, mismatch(t.Model, t.Field, "number", v)
		}
		f = n
	default:
		return 0, mismatch(t.Model, t.Field, "number", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, mismatch(t.Model, t.Field, "number", v)
	}

	return f, nil
}

// AsInteger accepts Go integers, integral floats and integral json.Numbers.
func AsInteger(t Target, v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int, int8, int16, int32, uint, uint8, uint16, uint32:
		return cast.ToInt64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, mismatch(t.Model, t.Field, "integer", v)
		}
		return int64(x), nil
	case float32, float64:
		f := cast.ToFloat64(x)
		// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
		if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, mismatch(t.Model, t.Field, "integer", v)
		}
		return int64(f), nil
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, mismatch(t.Model, t.Field, "integer", v)
		}
		return i, nil
	}

	return 0, mismatch(t.Model, t.Field, "integer", v)
}

// AsList accepts a []T as is, or a []any whose elements are each accepted by
// elem.
func AsList[T any](t Target, v any, elem func(Target, any) (T, error)) ([]T, error) {
	switch x := v.(type) {
	case []T:
		return x, nil
	case []any:
		out := make([]T, len(x))
		for i, e := range x {
			item, err := elem(t, e)
			if err != nil {
				return nil, err
			}
			out[i] = item
		}
		return out, nil
	}

	var zero T
	return nil, mismatch(t.Model, t.Field, "[]"+typeName(zero), v)
}

// AsMap accepts a map[string]T as is, or a map[string]any (or Dict) whose
// values are each accepted by elem.
func AsMap[T any](t Target, v any, elem func(Target, any) (T, error)) (map[string]T, error) {
	switch x := v.(type) {
	case map[string]T:
		return x, nil
	case Dict:
		return AsMap(t, x.Map(), elem)
	case map[string]any:
		out := make(map[string]T, len(x))
		for k, e := range x {
			item, err := elem(t, e)
			if err != nil {
				return nil, err
			}
			out[k] = item
		}
		return out, nil
	}

	var zero T
	return nil, mismatch(t.Model, t.Field, "map[string]"+typeName(zero), v)
}

// AsModel accepts a *M as is, or decodes a map[string]any (or Dict) into a
// new model created by build.
func AsModel[M Model](t Target, v any, build func() M) (M, error) {
	var zero M
	switch x := v.(type) {
	case M:
		return x, nil
	case map[string]any, Dict:
		m := build()
		if err := Decode(m, x); err != nil {
			return zero, err
		}
		return m, nil
	}

	return zero, mismatch(t.Model, t.Field, build().ModelName(), v)
}

func typeName(v any) string {
	switch x := v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		return "number"
	case int64:
		return "integer"
	case Model:
		return x.ModelName()
	}

	return "any"
}

// Store coerces value, validates it against cfg and stores it in o. A nil
// value, or a nil model pointer, stores an explicit null. On error o is left
// untouched.
func Store[T any](cfg *Configuration, t Target, o *Optional[T], value any, coerce func(Target, any) (T, error)) error {
	if value == nil || isNil(value) {
		o.SetNull()
		return nil
	}

	v, err := coerce(t, value)
	if err != nil {
		return err
	}

	if err := cfg.Validate(t.Model, t.Field, v); err != nil {
		return err
	}

	o.Set(v)
	return nil
}
