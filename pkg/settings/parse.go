package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts raw text into a candidate value of the setting's kind.
// The result still has to pass Validate; bounds and choices are not checked here.
func ParseValue(setting *Setting, raw string) (interface{}, error) {
	switch setting.kind {
	case KindInteger:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %s = %q is not an integer", ErrInvalidValue, setting.name, raw)
		}
		return v, nil
	case KindFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s = %q is not a number", ErrInvalidValue, setting.name, raw)
		}
		return v, nil
	case KindBoolean:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %s = %q is not a boolean", ErrInvalidValue, setting.name, raw)
		}
		return v, nil
	case KindString, KindSelection:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %s has unsupported kind %s", ErrInvalidValue, setting.name, setting.kind)
	}
}

// SetString parses raw for the named setting and stores it
func (r *Registry) SetString(name, raw string) error {
	setting, err := r.Get(name)
	if err != nil {
		return err
	}
	value, err := ParseValue(setting, raw)
	if err != nil {
		return err
	}
	return setting.set(value)
}
