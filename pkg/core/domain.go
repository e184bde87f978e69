// Package core holds the greeting and arithmetic components.
//
// Both components are stateless: every method is a pure function of its
// arguments, so a single instance (or the zero value) can be shared freely.
package core

import "strings"

// TimeOfDay qualifies a greeting.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimesOfDay returns the accepted values in canonical order.
func TimesOfDay() []TimeOfDay {
	return []TimeOfDay{Morning, Afternoon, Evening}
}

// ParseTimeOfDay matches s case-insensitively against the accepted values.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t := TimeOfDay(strings.ToLower(s))
	switch t {
	case Morning, Afternoon, Evening:
		return t, nil
	}
	return "", ErrInvalidTimeOfDay
}

// ValidateName rejects empty names.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	return nil
}

// NameFromValue converts a decoded value into a name.
// Absent (nil), non-string and empty values are rejected.
func NameFromValue(v any) (string, error) {
	name, ok := v.(string)
	if !ok {
		return "", ErrInvalidName
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}
