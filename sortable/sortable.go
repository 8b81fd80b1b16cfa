// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-algorithms/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less adapts a Sortable type to a compare.LessFunc.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}
