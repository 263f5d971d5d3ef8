// Package simultaneously runs independent functions on a bounded worker
// pool and reports their combined result.
package simultaneously

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/quicksort/contexts"
	commonErrors "github.com/amp-labs/quicksort/errors"
)

// Do runs the functions in parallel. See DoCtx.
func Do(maxConcurrent int, f ...func(ctx context.Context) error) error {
	return DoCtx(context.Background(), maxConcurrent, f...)
}

// DoCtx runs every callback on a pool of at most maxConcurrent workers and
// waits for all of them. If maxConcurrent is less than 1, every callback
// gets its own worker.
//
// The first failure cancels the context handed to the callbacks. Callbacks
// that have not started by then are skipped and report the context error.
// Callbacks already running are expected to notice cancellation on their
// own.
//
// Panics inside callbacks are recovered and returned as errors wrapping
// errors.ErrPanicRecovery, with the stack trace in the message.
//
// The result is nil, the only error, or every error joined in callback
// order.
func DoCtx(ctx context.Context, maxConcurrent int, callback ...func(ctx context.Context) error) error {
	if len(callback) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(contexts.EnsureContext(ctx))

	var cancelOnce sync.Once
	defer cancelOnce.Do(cancel)

	if maxConcurrent < 1 || maxConcurrent > len(callback) {
		maxConcurrent = len(callback)
	}

	pool := pond.NewPool(maxConcurrent)
	defer pool.StopAndWait()

	// One slot per callback, so no locking is needed and the joined error
	// keeps a stable order.
	errs := make([]error, len(callback))
	tasks := make([]pond.Task, 0, len(callback))

	for idx, fn := range callback {
		tasks = append(tasks, pool.Submit(func() {
			errs[idx] = invoke(ctx, fn)
			if errs[idx] != nil {
				cancelOnce.Do(cancel)
			}
		}))
	}

	for _, task := range tasks {
		_ = task.Wait() // invoke never panics, failures are in errs
	}

	return combineErrors(errs)
}

// invoke runs fn unless ctx is already done, converting a panic into an
// error.
func invoke(ctx context.Context, fn func(context.Context) error) (err error) {
	if !contexts.IsContextAlive(ctx) {
		return ctx.Err()
	}

	defer func() {
		if r := recover(); r != nil {
			err = panicError(r, debug.Stack())
		}
	}()

	return fn(ctx)
}

// panicError converts a recovered value into an error. If the value is an
// error it stays reachable through errors.Is / errors.As.
func panicError(recovered any, stack []byte) error {
	if e, ok := recovered.(error); ok {
		return fmt.Errorf("%w: %w\nstack trace:\n%s", commonErrors.ErrPanicRecovery, e, stack)
	}

	return fmt.Errorf("%w: %v\nstack trace:\n%s", commonErrors.ErrPanicRecovery, recovered, stack)
}

func combineErrors(errs []error) error {
	var nonNil []error

	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}

	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return errors.Join(nonNil...)
	}
}
