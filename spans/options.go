package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures how a span is started and finished.
type Option func(*runner)

type runner struct {
	name     string
	kind     trace.SpanKind
	failure  string
	start    []trace.SpanStartOption
	decorate []func(span trace.Span)
}

// WithAttributes sets attributes on the span when it starts.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(r *runner) {
		r.start = append(r.start, trace.WithAttributes(attrs...))
	}
}

// WithSpanKind sets the span kind. The default is SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.kind = kind
	}
}

// WithErrorMessage prefixes the span's error status description.
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}

// WithSpanDecorator registers a function called with the span right after
// it starts, when the span is recording.
func WithSpanDecorator(decorator func(span trace.Span)) Option {
	return func(r *runner) {
		r.decorate = append(r.decorate, decorator)
	}
}
