package settings

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Setting is a single named, typed configuration value with a default.
// The value always satisfies the setting's Kind and any declared bounds or choices.
type Setting struct {
	name        string
	kind        Kind
	value       interface{}
	def         interface{}
	description string
	choices     []string

	min    float64
	max    float64
	hasMin bool
	hasMax bool
}

// Option configures optional constraints of a numeric setting
type Option func(*Setting)

// WithMin declares an inclusive lower bound
func WithMin(v float64) Option {
	return func(s *Setting) {
		s.min = v
		s.hasMin = true
	}
}

// WithMax declares an inclusive upper bound
func WithMax(v float64) Option {
	return func(s *Setting) {
		s.max = v
		s.hasMax = true
	}
}

// NewInteger creates an integer setting
func NewInteger(name string, def int, description string, opts ...Option) (*Setting, error) {
	return newSetting(name, KindInteger, def, description, nil, opts)
}

// NewFloat creates a float setting
func NewFloat(name string, def float64, description string, opts ...Option) (*Setting, error) {
	return newSetting(name, KindFloat, def, description, nil, opts)
}

// NewBoolean creates a boolean setting
func NewBoolean(name string, def bool, description string) (*Setting, error) {
	return newSetting(name, KindBoolean, def, description, nil, nil)
}

// NewString creates a free text setting
func NewString(name string, def string, description string) (*Setting, error) {
	return newSetting(name, KindString, def, description, nil, nil)
}

// NewSelection creates a setting whose value must be one of choices
func NewSelection(name string, def string, choices []string, description string) (*Setting, error) {
	return newSetting(name, KindSelection, def, description, slices.Clone(choices), nil)
}

func newSetting(name string, kind Kind, def interface{}, description string, choices []string, opts []Option) (*Setting, error) {
	if name == "" {
		return nil, fmt.Errorf("setting name must not be empty")
	}

	s := &Setting{
		name:        name,
		kind:        kind,
		description: description,
		choices:     choices,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Validate(def); err != nil {
		return nil, fmt.Errorf("default for %q: %w", name, err)
	}

	s.def = def
	s.value = def
	return s, nil
}

// Name returns the unique setting name
func (s *Setting) Name() string { return s.name }

// Kind returns the value domain tag
func (s *Setting) Kind() Kind { return s.kind }

// Value returns the current value
func (s *Setting) Value() interface{} { return s.value }

// Default returns the value the setting was created with
func (s *Setting) Default() interface{} { return s.def }

// Description returns the human-readable description
func (s *Setting) Description() string { return s.description }

// Choices returns the allowed values of a selection setting
func (s *Setting) Choices() []string { return slices.Clone(s.choices) }

// Bounds returns the declared numeric bounds, if any
func (s *Setting) Bounds() (lo float64, hasLo bool, hi float64, hasHi bool) {
	return s.min, s.hasMin, s.max, s.hasMax
}

// Validate checks candidate against the setting's kind and constraints without modifying it
func (s *Setting) Validate(candidate interface{}) error {
	switch s.kind {
	case KindInteger:
		v, ok := candidate.(int)
		if !ok {
			return s.invalid(candidate, "must be an integer")
		}
		return s.checkBounds(candidate, float64(v))

	case KindFloat:
		v, ok := candidate.(float64)
		if !ok {
			return s.invalid(candidate, "must be a float")
		}
		if math.IsNaN(v) {
			return s.invalid(candidate, "must be a number")
		}
		return s.checkBounds(candidate, v)

	case KindBoolean:
		if _, ok := candidate.(bool); !ok {
			return s.invalid(candidate, "must be a boolean")
		}
		return nil

	case KindString:
		if _, ok := candidate.(string); !ok {
			return s.invalid(candidate, "must be a string")
		}
		return nil

	case KindSelection:
		v, ok := candidate.(string)
		if !ok {
			return s.invalid(candidate, "must be a string")
		}
		if !slices.Contains(s.choices, v) {
			return s.invalid(candidate, fmt.Sprintf("must be one of %v", s.choices))
		}
		return nil

	default:
		return s.invalid(candidate, "unsupported kind "+s.kind.String())
	}
}

func (s *Setting) checkBounds(candidate interface{}, v float64) error {
	if s.hasMin && v < s.min {
		return s.invalid(candidate, "must be at least "+strconv.FormatFloat(s.min, 'g', -1, 64))
	}
	if s.hasMax && v > s.max {
		return s.invalid(candidate, "must be at most "+strconv.FormatFloat(s.max, 'g', -1, 64))
	}
	return nil
}

func (s *Setting) invalid(candidate interface{}, reason string) error {
	return fmt.Errorf("%w: %s = %v (%T) %s", ErrInvalidValue, s.name, candidate, candidate, reason)
}

// set replaces the value after validation; the stored value is untouched on failure
func (s *Setting) set(v interface{}) error {
	if err := s.Validate(v); err != nil {
		return err
	}
	s.value = v
	return nil
}

// FormatValue renders the current value for display
func (s *Setting) FormatValue() string {
	return Format(s.value)
}

// Format renders a setting value the way ParseValue reads it back
func Format(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
