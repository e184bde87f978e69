package platform

import (
	"log/slog"

	"github.com/aretw0/publishlib/pkg/core"
)

// options holds the internal configuration for the publishlib runner.
type options struct {
	greeting   *core.Greeting
	operations *core.Operations
	logger     *slog.Logger
	config     map[string]interface{}
}

// Option defines a functional option for configuring publishlib.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		config: make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFailFast stops a batch at the first failing call.
func WithFailFast(enabled bool) Option {
	return func(o *options) {
		o.config["fail_fast"] = enabled
	}
}

// WithGreeting injects the greeting component.
// If not set, a new core.Greeting is used.
func WithGreeting(g *core.Greeting) Option {
	return func(o *options) {
		o.greeting = g
	}
}

// WithOperations injects the arithmetic component.
// If not set, a new core.Operations is used.
func WithOperations(ops *core.Operations) Option {
	return func(o *options) {
		o.operations = ops
	}
}
