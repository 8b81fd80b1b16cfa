package sorting

import "log/slog"

const defaultName = "default"

type options struct {
	name        string
	stableMerge bool
	logger      *slog.Logger
	concurrency int
}

// Option configures a Collection (and CrossCheck).
type Option func(*options)

// WithName labels the collection's metrics. Keep the set of names small:
// every distinct name is a separate Prometheus series.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithStableMerge selects merge sort's tie-break. When false (the default)
// the merge takes the right-hand head whenever the two heads compare equal,
// which can reorder equal elements. When true it takes the left-hand head,
// which makes merge sort stable.
func WithStableMerge(stable bool) Option {
	return func(o *options) {
		o.stableMerge = stable
	}
}

// WithLogger routes the collection's debug logs to the given logger instead
// of the process default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConcurrency bounds how many algorithms CrossCheck runs at once.
// Values below 1 run them all at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		name: defaultName,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.name == "" {
		o.name = defaultName
	}

	return o
}
