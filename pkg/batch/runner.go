package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/publishlib/pkg/core"
)

// Config holds the runner dependencies.
type Config struct {
	Greeting   *core.Greeting
	Operations *core.Operations
	Logger     *slog.Logger
	// FailFast stops a run at the first failing call.
	FailFast bool
}

// Runner executes calls in order against the configured components.
type Runner struct {
	greeting   *core.Greeting
	operations *core.Operations
	logger     *slog.Logger
	failFast   bool

	mu       sync.RWMutex
	executed int
	failures int
}

// FileResult groups the results of one matched file.
type FileResult struct {
	Path    string   `json:"path"`
	Results []Result `json:"results"`
}

// NewRunner creates a Runner. Nil dependencies fall back to defaults.
func NewRunner(cfg Config) *Runner {
	r := &Runner{
		greeting:   cfg.Greeting,
		operations: cfg.Operations,
		logger:     cfg.Logger,
		failFast:   cfg.FailFast,
	}
	if r.greeting == nil {
		r.greeting = core.NewGreeting()
	}
	if r.operations == nil {
		r.operations = core.NewOperations()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run executes calls in order. Per-call failures are recorded in the results;
// with FailFast the first failure is also returned as a *CallError.
func (r *Runner) Run(ctx context.Context, calls []Call) ([]Result, error) {
	results := make([]Result, 0, len(calls))
	for i, c := range calls {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := Result{Index: i, Op: c.Op}
		res.Output, res.Err = r.execute(c)
		results = append(results, res)
		r.record(res)

		if res.Err != nil {
			r.logger.Warn("call failed", "index", i, "op", c.Op, "error", res.Err)
			if r.failFast {
				return results, &CallError{Index: i, Op: c.Op, Err: res.Err}
			}
			continue
		}
		r.logger.Debug("call executed", "index", i, "op", c.Op, "output", res.Output)
	}
	return results, nil
}

// RunFile decodes and runs the calls in path.
func (r *Runner) RunFile(ctx context.Context, path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	calls, err := DecoderFor(path)(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.logger.Debug("running file", "path", path, "calls", len(calls))
	return r.Run(ctx, calls)
}

// RunGlob runs every file matching pattern in lexical order.
// Patterns support "**" for recursive matching.
func (r *Runner) RunGlob(ctx context.Context, pattern string) ([]FileResult, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	sort.Strings(matches)

	out := make([]FileResult, 0, len(matches))
	for _, path := range matches {
		results, err := r.RunFile(ctx, path)
		out = append(out, FileResult{Path: path, Results: results})
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func (r *Runner) execute(c Call) (string, error) {
	switch c.Op {
	case OpSayHello:
		name, err := core.NameFromValue(c.Name)
		if err != nil {
			return "", err
		}
		return r.greeting.SayHello(name)
	case OpSayGoodbye:
		name, err := core.NameFromValue(c.Name)
		if err != nil {
			return "", err
		}
		return r.greeting.SayGoodbye(name)
	case OpGreetingWithTime:
		name, err := core.NameFromValue(c.Name)
		if err != nil {
			return "", err
		}
		// Non-string values fall through to the time-of-day validation.
		tod, _ := c.Time.(string)
		return r.greeting.GreetingWithTime(name, tod)
	case OpAdd:
		a, err := core.AddendFromValue(c.A)
		if err != nil {
			return "", err
		}
		b, err := core.AddendFromValue(c.B)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(r.operations.Add(a, b)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, c.Op)
}

func (r *Runner) record(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executed++
	if res.Err != nil {
		r.failures++
	}
}
