package core

import (
	"github.com/aretw0/introspection"
)

// GreetingState exposes the greeting configuration for observability.
type GreetingState struct {
	TimesOfDay []string `json:"times_of_day"`
}

// OperationsState exposes the supported arithmetic for observability.
type OperationsState struct {
	Operations []string `json:"operations"`
}

// State implements introspection.Introspectable.
func (g *Greeting) State() any {
	times := TimesOfDay()
	names := make([]string, 0, len(times))
	for _, t := range times {
		names = append(names, string(t))
	}
	return GreetingState{TimesOfDay: names}
}

// ComponentType implements introspection.Component.
func (g *Greeting) ComponentType() string {
	return "greeting"
}

// State implements introspection.Introspectable.
func (o *Operations) State() any {
	return OperationsState{Operations: []string{"add"}}
}

// ComponentType implements introspection.Component.
func (o *Operations) ComponentType() string {
	return "operations"
}

var _ introspection.Introspectable = (*Greeting)(nil)
var _ introspection.Component = (*Greeting)(nil)
var _ introspection.Introspectable = (*Operations)(nil)
var _ introspection.Component = (*Operations)(nil)
