// Package search finds values in slices, either by scanning every element
// or by bisecting a slice that is already in ascending order.
package search

import (
	"cmp"

	"github.com/amp-labs/amp-algorithms/compare"
)

// NotFound is the index returned when the target is absent.
const NotFound = -1

// Linear scans elems front to back and returns the index of the first
// element equal to target, or NotFound.
func Linear[T any](elems []T, target T, equal func(a, b T) bool) int {
	for i, elem := range elems {
		if equal(elem, target) {
			return i
		}
	}

	return NotFound
}

// Binary returns the index of an element equivalent to target in elems,
// which must be sorted ascending by less, or NotFound. When several
// elements are equivalent to target, the lowest such index is returned.
func Binary[T any](elems []T, target T, less compare.LessFunc[T]) int {
	lo, hi := 0, len(elems)

	// Invariant: elems[:lo] < target <= elems[hi:].
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec

		if less(elems[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo < len(elems) && !less(target, elems[lo]) {
		return lo
	}

	return NotFound
}

// LinearOrdered is Linear for types with a natural equality.
func LinearOrdered[T comparable](elems []T, target T) int {
	return Linear(elems, target, func(a, b T) bool { return a == b })
}

// BinaryOrdered is Binary for types with a natural order.
func BinaryOrdered[T cmp.Ordered](elems []T, target T) int {
	return Binary(elems, target, compare.Less[T])
}
