package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/go-zoox/logger"
	"github.com/tidwall/pretty"
)

// Serializable is implemented by every value that converts itself into its
// JSON-compatible form.
type Serializable interface {
	ToDict() Dict
}

// Model is a typed resource of the API.
type Model interface {
	Serializable

	// ModelName is the resource name, e.g. ContainerExecutionSpec.
	ModelName() string
	// Fields is the static field table of the resource.
	Fields() Fields
	// Value returns the current value of a field and whether it is present.
	// An explicitly nulled field returns (nil, true).
	Value(name string) (any, bool)
	// Assign sets a field from a dynamic value. nil sets an explicit null.
	Assign(name string, value any) error
}

// Assignment is a (field name, value) pair used to construct a model.
type Assignment struct {
	Name  string
	Value any
}

// With returns an Assignment of value to the field name.
func With(name string, value any) Assignment {
	return Assignment{Name: name, Value: value}
}

// Build applies the assignments to m in order. Fields not assigned stay unset.
func Build(m Model, assignments ...Assignment) error {
	for _, a := range assignments {
		if err := m.Assign(a.Name, a.Value); err != nil {
			return err
		}
	}

	return nil
}

// ToDict converts m into a Dict holding the present fields, keyed by wire
// name, in declaration order.
func ToDict(m Model) Dict {
	d := NewDict()
	for _, f := range m.Fields() {
		v, ok := m.Value(f.Name)
		if !ok {
			continue
		}

		d.Set(f.Wire, convert(v))
	}

	return d
}

// convert applies the serialization recursion to a single value.
func convert(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Serializable:
		if isNil(x) {
			return nil
		}
		return x.ToDict()
	case Dict:
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = convert(e)
		}
		return out
	case []string:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = convert(e)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = e
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = convert(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = convert(iter.Value().Interface())
		}
		return out
	}

	return v
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Format renders m as indented JSON. Meant for diagnostics.
func Format(m Model) string {
	raw, err := ToDict(m).MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%s(<%s>)", m.ModelName(), err)
	}

	return string(bytes.TrimSpace(pretty.Pretty(raw)))
}

// Equal reports whether a and b are of the same type and serialize to equal
// content. It never panics on mismatched types.
func Equal(a, b Model) bool {
	aNil, bNil := a == nil || isNil(a), b == nil || isNil(b)
	if aNil || bNil {
		return aNil && bNil && reflect.TypeOf(a) == reflect.TypeOf(b)
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	return ToDict(a).Equal(ToDict(b))
}

// Decode assigns every declared field whose wire key is present in data.
// data is a map[string]any, as produced by encoding/json, or a Dict.
// Either every present field is assigned or, on error, m is left untouched.
func Decode(m Model, data any) error {
	var values map[string]any
	switch x := data.(type) {
	case map[string]any:
		values = x
	case Dict:
		values = x.Map()
	case nil:
		return nil
	default:
		return mismatch(m.ModelName(), "", "object", data)
	}

	scratch, commit := stage(m)

	fields := m.Fields()
	for _, f := range fields {
		v, ok := values[f.Wire]
		if !ok {
			continue
		}

		if err := scratch.Assign(f.Name, v); err != nil {
			return err
		}
	}

	commit()

	for _, key := range unknownKeys(fields, values) {
		logger.Debugf("[model][%s] ignore unknown key: %s", m.ModelName(), key)
	}

	return nil
}

// unknownKeys returns the keys of values that no field declares, sorted.
func unknownKeys(fields Fields, values map[string]any) []string {
	var keys []string
	for key := range values {
		if !hasWire(fields, key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return keys
}

// stage returns a shallow copy of m to assign into and a commit func that
// writes the copy back. Models that are not struct pointers are assigned in
// place.
func stage(m Model) (Model, func()) {
	v := reflect.ValueOf(m)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return m, func() {}
	}

	c := reflect.New(v.Elem().Type())
	c.Elem().Set(v.Elem())

	scratch, ok := c.Interface().(Model)
	if !ok {
		return m, func() {}
	}

	return scratch, func() { v.Elem().Set(c.Elem()) }
}

func hasWire(fields Fields, key string) bool {
	for _, f := range fields {
		if f.Wire == key {
			return true
		}
	}

	return false
}

// Marshal encodes m as compact JSON in declaration order.
func Marshal(m Model) ([]byte, error) {
	return ToDict(m).MarshalJSON()
}

// Unmarshal decodes a JSON object into m. Numbers are kept as json.Number so
// integer fields do not lose precision.
func Unmarshal(m Model, b []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()

	var data any
	if err := decoder.Decode(&data); err != nil {
		return err
	}

	return Decode(m, data)
}
