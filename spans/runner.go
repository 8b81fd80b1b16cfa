package spans

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func newRunner(name string, opts []Option) *runner {
	r := &runner{
		name: name,
		kind: trace.SpanKindInternal,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// run executes f inside a new span. A panic in f marks the span as failed
// and then propagates.
func run[T any](
	ctx context.Context,
	name string,
	opts []Option,
	f func(ctx context.Context, span trace.Span) (T, error),
) (out T, err error) {
	r := newRunner(name, opts)

	start := append([]trace.SpanStartOption{trace.WithSpanKind(r.kind)}, r.start...)

	ctx, span := TracerFromContext(ctx).Start(ctx, r.name, start...)
	defer span.End()

	defer func() {
		if p := recover(); p != nil {
			span.SetAttributes(attribute.Bool("panic", true))
			r.setError(span, fmt.Errorf("panic: %v", p)) //nolint:err113

			panic(p)
		}
	}()

	if span.IsRecording() {
		for _, decorate := range r.decorate {
			if decorate != nil {
				decorate(span)
			}
		}
	}

	out, err = f(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setError(span, err)

		var zero T

		return zero, err
	}

	span.SetStatus(codes.Ok, "ok")

	return out, nil
}

func (r *runner) setError(span trace.Span, err error) {
	if r.failure != "" {
		span.SetStatus(codes.Error, r.failure+": "+err.Error())
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}
