package sorting

import "go.uber.org/atomic"

// Stats is a snapshot of the work a Collection has done across all calls.
type Stats struct {
	Calls       int64 `json:"calls"       yaml:"calls"`
	Comparisons int64 `json:"comparisons" yaml:"comparisons"`
	Swaps       int64 `json:"swaps"       yaml:"swaps"`
}

// counters accumulate Stats. Copying sorts may run concurrently on one
// Collection, so updates are atomic.
type counters struct {
	calls       atomic.Int64
	comparisons atomic.Int64
	swaps       atomic.Int64
}

func (c *counters) add(r *tally) {
	c.calls.Inc()
	c.comparisons.Add(r.comparisons)
	c.swaps.Add(r.swaps)
}

func (c *counters) snapshot() Stats {
	return Stats{
		Calls:       c.calls.Load(),
		Comparisons: c.comparisons.Load(),
		Swaps:       c.swaps.Load(),
	}
}

// tally counts the work of a single call. It is owned by that call, so
// plain integers suffice.
type tally struct {
	comparisons int64
	swaps       int64
}
