package sorting

import (
	"slices"
	"time"

	"github.com/amp-labs/amp-algorithms/stack"
)

// span is a half-open index range [lo, hi) of the quick sort work buffer.
type span struct {
	lo, hi int
}

// QuickSort returns a sorted copy of the stored slice, leaving the stored
// slice untouched.
//
// The first element of each range is the pivot. Elements strictly less
// than the pivot are placed before it and all others after it, each group
// keeping its scan order, so the output is deterministic. The result is
// the same as that of the textbook recursion
//
//	quick(s) = quick(less) + [pivot] + quick(rest)
//
// but ranges are kept on an explicit work stack instead of the goroutine
// stack: on sorted or reverse-sorted input the recursion would be n levels
// deep.
func (c *Collection[T]) QuickSort() []T {
	started := time.Now()
	buf := slices.Clone(c.elements)
	n := len(buf)

	var t tally

	if n > 1 {
		c.quickSort(&t, buf)
	}

	c.finish(Quick, n, started, &t)

	return buf
}

func (c *Collection[T]) quickSort(t *tally, buf []T) {
	scratch := make([]T, len(buf))
	work := stack.New[span](0)

	// The stack is unbounded, so Push can't fail.
	_ = work.Push(span{lo: 0, hi: len(buf)})

	for !work.IsEmpty() {
		rng, _ := work.Pop()
		pivotIdx := c.partition(t, buf[rng.lo:rng.hi], scratch[rng.lo:rng.hi])

		left := span{lo: rng.lo, hi: rng.lo + pivotIdx}
		right := span{lo: rng.lo + pivotIdx + 1, hi: rng.hi}

		for _, sub := range []span{right, left} {
			if sub.hi-sub.lo > 1 {
				_ = work.Push(sub)
			}
		}
	}
}

// partition rearranges part around its first element, using scratch (of
// the same length) as temporary space, and returns the pivot's new index.
// Smaller elements fill scratch from the front and the others from the
// back; the back run is then reversed to restore scan order.
func (c *Collection[T]) partition(t *tally, part, scratch []T) int {
	pivot := part[0]
	lo, hi := 0, len(part)

	for _, v := range part[1:] {
		if c.lt(t, v, pivot) {
			scratch[lo] = v
			lo++
		} else {
			hi--
			scratch[hi] = v
		}
	}

	// lo == hi-1: exactly one slot is left, for the pivot.
	scratch[lo] = pivot
	slices.Reverse(scratch[hi:])

	copy(part, scratch)

	return lo
}
