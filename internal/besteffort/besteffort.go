// Package besteffort runs side-channel bookkeeping (analytics writes, cache
// writes, counters) whose failure must never fail the calling operation.
package besteffort

import (
	"context"
	"time"

	"github.com/gearted/gearted-backend/internal/logger"
)

// Result is the outcome of a best-effort task. Callers may inspect it but
// must not turn Err into a failure of the surrounding request.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// OK reports whether the task succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Do runs fn synchronously, logs a failure and returns the Result.
// A panic inside fn is converted into a failed Result.
func Do(ctx context.Context, name string, fn func(ctx context.Context) error) (res Result) {
	res.Name = name
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			res.Err = &PanicError{Value: rec}
		}
		res.Duration = time.Since(start)
		if res.Err != nil {
			logger.Log.Warnw("best-effort task failed", "task", name, "error", res.Err, "duration", res.Duration)
		}
	}()

	res.Err = fn(ctx)
	return res
}

// Go runs fn on its own goroutine with a context detached from the caller's
// cancellation and bounded by timeout. The Result is delivered on the
// returned channel, which is closed afterwards.
func Go(ctx context.Context, name string, timeout time.Duration, fn func(ctx context.Context) error) <-chan Result {
	out := make(chan Result, 1)
	detached := context.WithoutCancel(ctx)

	go func() {
		defer close(out)
		taskCtx, cancel := context.WithTimeout(detached, timeout)
		defer cancel()
		out <- Do(taskCtx, name, fn)
	}()

	return out
}

// PanicError wraps a value recovered from a panicking task.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return "task panicked"
}
