package platform

import (
	"github.com/aretw0/publishlib/pkg/batch"
)

// NewRunner wires a batch runner from functional options.
//
//	r := publishlib.NewRunner(publishlib.WithFailFast(true))
func NewRunner(opts ...Option) *batch.Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	failFast, _ := o.config["fail_fast"].(bool)

	return batch.NewRunner(batch.Config{
		Greeting:   o.greeting,
		Operations: o.operations,
		Logger:     o.logger,
		FailFast:   failFast,
	})
}
