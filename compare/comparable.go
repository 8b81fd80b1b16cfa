// Package compare provides utilities for comparing values.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// LessFunc reports whether a sorts strictly before b. Implementations must
// describe a strict weak ordering: irreflexive, transitive, and with
// incomparability transitive as well.
type LessFunc[T any] func(a, b T) bool

// Less is the natural LessFunc for ordered types.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Equivalent reports whether neither value sorts before the other.
func Equivalent[T any](less LessFunc[T], a, b T) bool {
	return !less(a, b) && !less(b, a)
}
