package sorting

import (
	"context"
	"fmt"
	"slices"

	"github.com/amp-labs/amp-algorithms/compare"
	amperrors "github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/hashing"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/simultaneously"
	"github.com/amp-labs/amp-algorithms/spans"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Result is the output of one algorithm during a CrossCheck.
type Result[T any] struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Output    []T       `json:"output"    yaml:"output"`
	Stats     Stats     `json:"stats"     yaml:"stats"`
}

// CrossCheck sorts private copies of elems with every algorithm, in
// parallel, and verifies that each output is in ascending order, is a
// permutation of elems, and is element-wise equivalent to every other
// output. elems itself is never modified.
//
// All failures are reported together, each wrapping ErrDisagreement and
// annotated with the offending algorithm. On success the per-algorithm
// results are returned in Algorithms() order.
func CrossCheck[T any](
	ctx context.Context,
	elems []T,
	less compare.LessFunc[T],
	opts ...Option,
) ([]Result[T], error) {
	// Validate the arguments once up front, rather than once per algorithm.
	if _, err := NewFunc(elems, less, opts...); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = logger.With(ctx, "run_id", runID, "size", len(elems))

	return spans.StartValErr[[]Result[T]](ctx, "sorting.CrossCheck",
		spans.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("size", len(elems)),
		),
		spans.WithErrorMessage("cross-check failed"),
	).Enter(func(ctx context.Context, _ trace.Span) ([]Result[T], error) {
		return crossCheck(ctx, elems, less, opts)
	})
}

func crossCheck[T any](ctx context.Context, elems []T, less compare.LessFunc[T], opts []Option) ([]Result[T], error) {
	o := newOptions(opts)

	results, err := simultaneously.MapSliceCtx(ctx, o.concurrency, Algorithms(),
		func(ctx context.Context, alg Algorithm) (Result[T], error) {
			return spans.StartValErr[Result[T]](ctx, "sorting."+alg.String()).
				Enter(func(context.Context, trace.Span) (Result[T], error) {
					coll, err := NewFunc(slices.Clone(elems), less, opts...)
					if err != nil {
						return Result[T]{}, err
					}

					out, err := coll.Sort(alg)
					if err != nil {
						return Result[T]{}, err
					}

					return Result[T]{Algorithm: alg, Output: out, Stats: coll.Stats()}, nil
				})
		})
	if err != nil {
		crossChecksTotal.WithLabelValues(crossCheckError).Inc()

		return nil, err
	}

	if err := verify(elems, less, results); err != nil {
		crossChecksTotal.WithLabelValues(crossCheckDisagree).Inc()
		logger.Get(ctx).Error("sorting algorithms disagree", "error", err)

		return nil, err
	}

	crossChecksTotal.WithLabelValues(crossCheckAgree).Inc()
	logger.Get(ctx).Debug("sorting algorithms agree")

	return results, nil
}

func verify[T any](elems []T, less compare.LessFunc[T], results []Result[T]) error {
	var errs amperrors.Collection

	want := hashing.FingerprintOf(elems)

	for _, res := range results {
		errs.Add(verifyOne(want, less, res, results[0]))
	}

	return errs.GetError()
}

func verifyOne[T any](want hashing.Fingerprint, less compare.LessFunc[T], res, reference Result[T]) error {
	alg := res.Algorithm.String()

	if got := hashing.FingerprintOf(res.Output); got != want {
		return logger.AnnotateError(
			fmt.Errorf("%w: %s output is not a permutation of the input", ErrDisagreement, alg),
			"algorithm", alg, "fingerprint", got.String(), "expected_fingerprint", want.String())
	}

	for i := 1; i < len(res.Output); i++ {
		if less(res.Output[i], res.Output[i-1]) {
			return logger.AnnotateError(
				fmt.Errorf("%w: %s output is out of order at index %d", ErrDisagreement, alg, i),
				"algorithm", alg, "index", i)
		}
	}

	if len(res.Output) != len(reference.Output) {
		// The reference is itself broken and has been reported on its own.
		return nil
	}

	for i := range res.Output {
		if !compare.Equivalent(less, res.Output[i], reference.Output[i]) {
			return logger.AnnotateError(
				fmt.Errorf("%w: %s and %s differ at index %d",
					ErrDisagreement, alg, reference.Algorithm.String(), i),
				"algorithm", alg, "reference", reference.Algorithm.String(), "index", i)
		}
	}

	return nil
}
