package model

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is the kind of every TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrValidation is the kind of every ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrUnknownField is returned when assigning a field the model does not declare.
	ErrUnknownField = errors.New("unknown field")
)

// TypeMismatchError is returned when a value's shape does not match the
// declared type of the field it is assigned to.
type TypeMismatchError struct {
	Model    string
	Field    string
	Expected string
	Got      any
}

func (e *TypeMismatchError) Error() string {
	if e == nil {
		return ""
	}

	if e.Field == "" {
		return fmt.Sprintf("%s: %s expects %s, got %T", ErrTypeMismatch, e.Model, e.Expected, e.Got)
	}

	return fmt.Sprintf("%s: %s.%s expects %s, got %T", ErrTypeMismatch, e.Model, e.Field, e.Expected, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ValidationError is returned when a validator registered in the
// Configuration rejects a value.
type ValidationError struct {
	Model string
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("%s: %s.%s: %s", ErrValidation, e.Model, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() []error { return []error{ErrValidation, e.Err} }

func mismatch(m, field, expected string, got any) error {
	return &TypeMismatchError{Model: m, Field: field, Expected: expected, Got: got}
}

// UnknownField returns an error wrapping ErrUnknownField.
func UnknownField(m, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownField, m, field)
}
