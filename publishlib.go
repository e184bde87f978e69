package publishlib

import (
	"log/slog"

	"github.com/aretw0/publishlib/internal/platform"
	"github.com/aretw0/publishlib/pkg/batch"
	"github.com/aretw0/publishlib/pkg/core"
)

// --- Types ---

// Greeting is a public alias for the greeting component.
type Greeting = core.Greeting

// Operations is a public alias for the arithmetic component.
type Operations = core.Operations

// TimeOfDay is a public alias for the greeting qualifier.
type TimeOfDay = core.TimeOfDay

// Call is a public alias for a batch call.
type Call = batch.Call

// Result is a public alias for a batch result.
type Result = batch.Result

// Runner is a public alias for the batch runner.
type Runner = batch.Runner

// --- Errors ---

// ErrInvalidArgument is returned when a caller-supplied value fails validation.
var ErrInvalidArgument = core.ErrInvalidArgument

// --- Configuration ---

// Option defines a functional option for configuring the runner.
type Option = platform.Option

// WithLogger sets the logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFailFast stops a batch at the first failing call.
func WithFailFast(enabled bool) Option {
	return platform.WithFailFast(enabled)
}

// --- Factory ---

// NewGreeting creates a new Greeting.
func NewGreeting() *Greeting {
	return core.NewGreeting()
}

// NewOperations creates a new Operations.
func NewOperations() *Operations {
	return core.NewOperations()
}

// NewRunner creates a batch runner.
func NewRunner(opts ...Option) *Runner {
	return platform.NewRunner(opts...)
}
