package sorting

import "time"

// BubbleSort sorts the stored slice in place and returns it.
//
// Each pass bubbles the largest remaining element to the end of the
// unsorted prefix. A pass without swaps means the slice is sorted, so an
// already-sorted slice costs a single pass. Equal neighbours are never
// swapped, which keeps the sort stable.
func (c *Collection[T]) BubbleSort() []T {
	started := time.Now()
	data := c.elements
	n := len(data)

	var t tally

	for i := range n {
		swapped := false

		for j := 0; j < n-1-i; j++ {
			if c.lt(&t, data[j+1], data[j]) {
				swap(&t, data, j, j+1)

				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	c.finish(Bubble, n, started, &t)

	return data
}

// SelectionSort sorts the stored slice in place and returns it.
//
// For each position it scans the rest of the slice for the minimum and
// swaps it into place. It always performs n(n-1)/2 comparisons and at most
// n-1 swaps. Swapping across the unsorted suffix can reorder equal
// elements, so the sort isn't stable.
func (c *Collection[T]) SelectionSort() []T {
	started := time.Now()
	data := c.elements
	n := len(data)

	var t tally

	for i := 0; i < n-1; i++ {
		minIdx := i

		for j := i + 1; j < n; j++ {
			if c.lt(&t, data[j], data[minIdx]) {
				minIdx = j
			}
		}

		if minIdx != i {
			swap(&t, data, i, minIdx)
		}
	}

	c.finish(Selection, n, started, &t)

	return data
}

// InsertionSort sorts the stored slice in place and returns it.
//
// Each element is held aside while the strictly greater elements of the
// sorted prefix shift one slot right, then dropped into the gap. Only
// strictly greater elements move, so the sort is stable, and a sorted slice
// needs just n-1 comparisons. Each shift is counted as a swap.
func (c *Collection[T]) InsertionSort() []T {
	started := time.Now()
	data := c.elements
	n := len(data)

	var t tally

	for i := 1; i < n; i++ {
		current := data[i]
		j := i - 1

		for j >= 0 && c.lt(&t, current, data[j]) {
			data[j+1] = data[j]
			t.swaps++
			j--
		}

		data[j+1] = current
	}

	c.finish(Insertion, n, started, &t)

	return data
}
