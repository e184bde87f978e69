package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a caller-supplied value fails validation.
var ErrInvalidArgument = errors.New("invalid argument")

// Validation errors. All of them satisfy errors.Is(err, ErrInvalidArgument).
var (
	ErrInvalidName      = fmt.Errorf("%w: Name must be a non-empty string", ErrInvalidArgument)
	ErrInvalidTimeOfDay = fmt.Errorf("%w: Time of day must be one of: morning, afternoon, evening", ErrInvalidArgument)
	ErrInvalidAddend    = fmt.Errorf("%w: Addends must be integers", ErrInvalidArgument)
)
