package model

// Field declares one attribute of a model.
//
// Name is the attribute name used by Assign and Value, Wire is the JSON key
// the attribute is serialized under and Type describes the declared type
// (used in error messages and documentation only).
type Field struct {
	Name string
	Wire string
	Type string
}

// Fields is the ordered field table of a model type.
type Fields []Field

// Lookup returns the field declared under name.
func (fs Fields) Lookup(name string) (Field, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// WireName returns the wire key of the field declared under name.
func (fs Fields) WireName(name string) (string, bool) {
	f, ok := fs.Lookup(name)
	return f.Wire, ok
}

// Optional holds the value of one model field. The zero value is unset.
type Optional[T any] struct {
	value T
	state presence
}

type presence uint8

const (
	unset presence = iota
	null
	set
)

// Get returns the value and whether it was set. An explicit null reports
// false, like unset.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == set
}

// Set stores v.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.state = set
}

// SetNull marks the field as explicitly null.
func (o *Optional[T]) SetNull() {
	var zero T
	o.value = zero
	o.state = null
}

// IsSet reports whether the field holds a value.
func (o Optional[T]) IsSet() bool { return o.state == set }

// IsNull reports whether the field was explicitly set to null.
func (o Optional[T]) IsNull() bool { return o.state == null }

// Present reports whether the field is emitted on serialization, that is
// whether it was either set or explicitly nulled.
func (o Optional[T]) Present() bool { return o.state != unset }

// Raw returns the stored value as an any for Model.Value. Explicit null is
// returned as nil.
func (o Optional[T]) Raw() (any, bool) {
	switch o.state {
	case set:
		return o.value, true
	case null:
		return nil, true
	}

	return nil, false
}
