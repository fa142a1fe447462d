package settings

import "errors"

var (
	// ErrDuplicateSetting is returned when a setting name is registered twice
	ErrDuplicateSetting = errors.New("duplicate setting")

	// ErrUnknownSetting is returned when a name has no registered setting
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidValue is returned when a value fails its setting's kind, range or choice check
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrInvalidCategory is returned for a category outside the closed set
	ErrInvalidCategory = errors.New("invalid category")
)
