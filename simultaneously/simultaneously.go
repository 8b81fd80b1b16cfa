// Package simultaneously runs functions in parallel on a bounded pool of
// workers, converting panics into errors.
package simultaneously

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/alitto/pond/v2"
)

// ErrPanicRecovered is the base error for panic recovery.
var ErrPanicRecovered = errors.New("recovered from panic")

// Do runs the given functions in parallel and returns their errors combined.
// See DoCtx for more information.
func Do(maxConcurrent int, f ...func(ctx context.Context) error) error {
	return DoCtx(context.Background(), maxConcurrent, f...)
}

// DoCtx runs the given functions in parallel on a pool of at most
// maxConcurrent workers. If maxConcurrent is less than 1, every function gets
// its own worker.
//
// As soon as one function fails, the context handed to the others is
// canceled; functions which have not started yet are skipped. The returned
// error joins the errors of every function that ran and failed, in argument
// order. If nothing failed but ctx was canceled before all functions ran, the
// context's error is returned.
//
// Panics inside the functions are recovered and reported as errors wrapping
// ErrPanicRecovered, with a stack trace.
func DoCtx(ctx context.Context, maxConcurrent int, callbacks ...func(ctx context.Context) error) error {
	if len(callbacks) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if maxConcurrent < 1 || maxConcurrent > len(callbacks) {
		maxConcurrent = len(callbacks)
	}

	pool := pond.NewPool(maxConcurrent)

	errs := make([]error, len(callbacks))
	skips := make([]bool, len(callbacks))

	for idx, callback := range callbacks {
		pool.SubmitErr(func() error {
			if ctx.Err() != nil {
				skips[idx] = true

				return nil
			}

			err := invoke(ctx, callback)
			if err != nil {
				errs[idx] = err

				cancel()
			}

			return err
		})
	}

	// Every submitted task has finished once StopAndWait returns.
	pool.StopAndWait()

	skipped := false
	for _, s := range skips {
		skipped = skipped || s
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	if skipped {
		return context.Cause(ctx)
	}

	return nil
}

func invoke(ctx context.Context, callback func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w\n%s", ErrPanicRecovered, e, debug.Stack())
			} else {
				err = fmt.Errorf("%w: %v\n%s", ErrPanicRecovered, r, debug.Stack())
			}
		}
	}()

	return callback(ctx)
}
