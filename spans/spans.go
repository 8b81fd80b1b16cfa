// Package spans runs functions inside OpenTelemetry spans, taking care of
// the span's lifecycle, error recording and status.
//
//	out, err := spans.StartValErr[[]int](ctx, "sorting.merge",
//	    spans.WithAttributes(attribute.Int("size", len(in))),
//	).Enter(func(ctx context.Context, span trace.Span) ([]int, error) {
//	    return sortIt(ctx, in)
//	})
package spans

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultScope names the tracer used when the context carries none.
const DefaultScope = "github.com/amp-labs/amp-algorithms"

type contextKey string

const tracerKey contextKey = "tracer"

// WithTracer stores a tracer in the context. Spans started from the
// context (or its children) use it instead of the global tracer provider.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// TracerFromContext returns the tracer stored with WithTracer, or one from
// the global tracer provider.
func TracerFromContext(ctx context.Context) trace.Tracer {
	if tracer, ok := ctx.Value(tracerKey).(trace.Tracer); ok && tracer != nil {
		return tracer
	}

	return otel.Tracer(DefaultScope)
}

// ErrOrchestrator runs functions returning only an error.
type ErrOrchestrator struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// StartErr prepares a span named name. Nothing happens until Enter.
func StartErr(ctx context.Context, name string, opts ...Option) *ErrOrchestrator {
	return &ErrOrchestrator{ctx: ctx, name: name, opts: opts}
}

// Enter runs f inside the span and returns its error.
func (o *ErrOrchestrator) Enter(f func(ctx context.Context, span trace.Span) error) error {
	if f == nil {
		return nil
	}

	_, err := run(o.ctx, o.name, o.opts, func(ctx context.Context, span trace.Span) (struct{}, error) {
		return struct{}{}, f(ctx, span)
	})

	return err
}

// ValErrOrchestrator runs functions returning a value and an error.
type ValErrOrchestrator[T any] struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// StartValErr prepares a span named name. Nothing happens until Enter.
func StartValErr[T any](ctx context.Context, name string, opts ...Option) *ValErrOrchestrator[T] {
	return &ValErrOrchestrator[T]{ctx: ctx, name: name, opts: opts}
}

// Enter runs f inside the span. On error the zero value is returned.
func (o *ValErrOrchestrator[T]) Enter(f func(ctx context.Context, span trace.Span) (T, error)) (T, error) {
	if f == nil {
		var zero T

		return zero, nil
	}

	return run(o.ctx, o.name, o.opts, f)
}
