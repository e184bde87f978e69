// Package publishlib is the composition root for the publishlib library.
//
// It exposes two stateless components and a batch runner that drives them:
//
//   - **Greeting**: formats "Hello", "Goodbye" and time-of-day salutations.
//   - **Operations**: integer addition.
//   - **Runner**: executes calls described in YAML or JSON files.
//
// Every validation failure satisfies errors.Is(err, publishlib.ErrInvalidArgument).
//
// Usage:
//
//	g := publishlib.NewGreeting()
//	msg, err := g.GreetingWithTime("Alice", "MORNING") // "Good morning, Alice!"
//
//	ops := publishlib.NewOperations()
//	sum := ops.Add(5, 3) // 8
//
//	runner := publishlib.NewRunner(publishlib.WithLogger(logger))
//	files, err := runner.RunGlob(ctx, "calls/**/*.yaml")
package publishlib
