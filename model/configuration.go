package model

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Validator checks a coerced field value before it is stored.
type Validator func(value any) error

// Configuration is the validation context shared by the models of one client
// session. Register validators before handing it to models; it must not be
// mutated afterwards.
type Configuration struct {
	// ClientSideValidation enables the registered validators.
	ClientSideValidation bool

	validators map[string]map[string][]Validator
}

// NewConfiguration returns a Configuration with client side validation
// enabled and no validators, so assignments are only type checked.
func NewConfiguration() *Configuration {
	return &Configuration{
		ClientSideValidation: true,
		validators:           map[string]map[string][]Validator{},
	}
}

// OrDefault returns cfg, or a new default Configuration when cfg is nil.
func OrDefault(cfg *Configuration) *Configuration {
	if cfg == nil {
		return NewConfiguration()
	}

	return cfg
}

// Register adds validators for a field of a model.
func (c *Configuration) Register(model, field string, validators ...Validator) *Configuration {
	if c.validators == nil {
		c.validators = map[string]map[string][]Validator{}
	}

	if c.validators[model] == nil {
		c.validators[model] = map[string][]Validator{}
	}
	c.validators[model][field] = append(c.validators[model][field], validators...)

	return c
}

// Validate runs the validators registered for the field.
func (c *Configuration) Validate(model, field string, value any) error {
	if c == nil || !c.ClientSideValidation {
		return nil
	}

	for _, validate := range c.validators[model][field] {
		if err := validate(value); err != nil {
			return &ValidationError{Model: model, Field: field, Err: err}
		}
	}

	return nil
}

// NotEmpty rejects empty strings, sequences and mappings.
func NotEmpty() Validator {
	return func(value any) error {
		if s, ok := value.(string); ok {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("must not be empty")
			}
			return nil
		}

		if n, ok := length(value); ok && n == 0 {
			return fmt.Errorf("must not be empty")
		}

		return nil
	}
}

// OneOf requires a string to be one of the allowed values.
func OneOf(allowed ...string) Validator {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}

		for _, a := range allowed {
			if s == a {
				return nil
			}
		}

		return fmt.Errorf("%q should be one of %s", s, strings.Join(allowed, ", "))
	}
}

// Matches requires a string, or every string of a sequence, to match pattern.
func Matches(pattern string) (Validator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %s", pattern, err)
	}

	return func(value any) error {
		switch x := value.(type) {
		case string:
			if !re.MatchString(x) {
				return fmt.Errorf("%q does not match %s", x, pattern)
			}
		case []string:
			for _, s := range x {
				if !re.MatchString(s) {
					return fmt.Errorf("%q does not match %s", s, pattern)
				}
			}
		}

		return nil
	}, nil
}

// MinItems requires a sequence or mapping to hold at least n entries.
func MinItems(n int) Validator {
	return func(value any) error {
		if l, ok := length(value); ok && l < n {
			return fmt.Errorf("must have at least %d items, got %d", n, l)
		}

		return nil
	}
}

func length(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	}

	return 0, false
}
