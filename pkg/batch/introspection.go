package batch

import (
	"github.com/aretw0/introspection"
)

// RunnerState exposes runner counters for observability.
type RunnerState struct {
	CallsExecuted int  `json:"calls_executed"`
	Failures      int  `json:"failures"`
	FailFast      bool `json:"fail_fast"`
}

// State implements introspection.Introspectable.
func (r *Runner) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RunnerState{
		CallsExecuted: r.executed,
		Failures:      r.failures,
		FailFast:      r.failFast,
	}
}

// ComponentType implements introspection.Component.
func (r *Runner) ComponentType() string {
	return "runner"
}

var _ introspection.Introspectable = (*Runner)(nil)
var _ introspection.Component = (*Runner)(nil)
