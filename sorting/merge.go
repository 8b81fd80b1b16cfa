package sorting

import (
	"slices"
	"time"
)

// MergeSort returns a sorted copy of the stored slice, leaving the stored
// slice untouched.
//
// The slice is split at len/2, both halves are sorted recursively and the
// results merged. Recursion depth is log2(n). When the heads of the two
// halves compare equal the right-hand head is taken, unless the collection
// was built with WithStableMerge(true).
func (c *Collection[T]) MergeSort() []T {
	started := time.Now()
	data := slices.Clone(c.elements)

	var t tally

	sorted := c.mergeSort(&t, data)

	c.finish(Merge, len(data), started, &t)

	return sorted
}

func (c *Collection[T]) mergeSort(t *tally, data []T) []T {
	if len(data) <= 1 {
		return data
	}

	middle := len(data) / 2

	return c.merge(t, c.mergeSort(t, data[:middle]), c.mergeSort(t, data[middle:]))
}

func (c *Collection[T]) merge(t *tally, left, right []T) []T {
	result := make([]T, 0, len(left)+len(right))

	l, r := 0, 0

	for l < len(left) && r < len(right) {
		var takeLeft bool

		if c.opts.stableMerge {
			takeLeft = !c.lt(t, right[r], left[l])
		} else {
			takeLeft = c.lt(t, left[l], right[r])
		}

		if takeLeft {
			result = append(result, left[l])
			l++
		} else {
			result = append(result, right[r])
			r++
		}
	}

	result = append(result, left[l:]...)

	return append(result, right[r:]...)
}
