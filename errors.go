package camrig

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("camrig: configuration error")
	// ErrRange matches every *RangeError.
	ErrRange = errors.New("camrig: index out of range")
)

// ConfigurationError is returned when a rig or scheme description is missing or invalid.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "camrig: configuration error: " + e.Reason
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// RangeError is returned when an explicit rig or scheme index is outside [0, Len).
type RangeError struct {
	Target string // "rig" or "scheme"
	Index  int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("camrig: %s index %d out of range [0, %d)", e.Target, e.Index, e.Len)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}
