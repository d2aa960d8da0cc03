package model

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Dict is the JSON-compatible form of a model: a mapping from wire key to
// value which remembers insertion order.
//
// Values are primitives, []any, map[string]any or nested Dicts.
type Dict struct {
	keys   []string
	values map[string]any
}

// NewDict returns an empty Dict.
func NewDict() Dict {
	return Dict{values: map[string]any{}}
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (d *Dict) Set(key string, value any) {
	if d.values == nil {
		d.values = map[string]any{}
	}

	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key.
func (d Dict) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d Dict) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (d Dict) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of keys.
func (d Dict) Len() int { return len(d.keys) }

// Map converts the Dict into plain maps and slices, recursively.
func (d Dict) Map() map[string]any {
	out := make(map[string]any, len(d.keys))
	for _, k := range d.keys {
		out[k] = plain(d.values[k])
	}

	return out
}

// Equal reports whether d and o hold deeply equal content. Key order is not
// significant.
func (d Dict) Equal(o Dict) bool {
	return reflect.DeepEqual(d.Map(), o.Map())
}

// MarshalJSON writes the keys in insertion order.
func (d Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func plain(v any) any {
	switch x := v.(type) {
	case Dict:
		return x.Map()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = plain(e)
		}
		return out
	}

	return v
}
