package sorting

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	crossCheckAgree    = "agree"
	crossCheckDisagree = "disagree"
	crossCheckError    = "error"
)

var (
	// sortCallsTotal counts completed sort calls.
	//
	// Labels:
	//   - algorithm: bubble, selection, insertion, quick or merge.
	//   - collection: the name given with WithName ("default" otherwise).
	sortCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_calls_total",
		Help: "The total number of sort calls",
	}, []string{"algorithm", "collection"})

	// sortComparisonsTotal counts element comparisons. Divided by
	// sort_calls_total it shows how far inputs are from the best case
	// (e.g. quick sort being fed sorted data).
	sortComparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_comparisons_total",
		Help: "The total number of element comparisons made while sorting",
	}, []string{"algorithm"})

	sortInputSize = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sort_input_size",
		Help:    "The number of elements per sort call",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), //nolint:mnd
	}, []string{"algorithm"})

	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sort_duration_seconds",
		Help:    "The time it takes to sort, in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 10, 8), //nolint:mnd
	}, []string{"algorithm"})

	// crossChecksTotal counts CrossCheck runs by outcome: agree, disagree,
	// or error (the run couldn't complete).
	crossChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_crosschecks_total",
		Help: "The total number of cross-checks between sorting algorithms",
	}, []string{"result"})
)

// init pre-initializes every known label combination so that dashboards and
// rate() queries see the series before the first sort happens.
func init() {
	for _, alg := range Algorithms() {
		sortCallsTotal.WithLabelValues(alg.String(), defaultName).Add(0)
		sortComparisonsTotal.WithLabelValues(alg.String()).Add(0)
	}

	for _, result := range []string{crossCheckAgree, crossCheckDisagree, crossCheckError} {
		crossChecksTotal.WithLabelValues(result).Add(0)
	}
}

func observe(collection string, alg Algorithm, size int, comparisons int64, elapsed time.Duration) {
	name := alg.String()

	sortCallsTotal.WithLabelValues(name, collection).Inc()
	sortComparisonsTotal.WithLabelValues(name).Add(float64(comparisons))
	sortInputSize.WithLabelValues(name).Observe(float64(size))
	sortDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}
