package sortable

import "cmp"

// Float is a sortable wrapper type for float64.
//
// NaN values are ordered before every other value (matching cmp.Less), which
// keeps LessThan a strict weak ordering even when NaNs are present.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

// Equals returns true if both values compare equal under cmp.Compare, so a
// NaN equals another NaN.
func (f Float) Equals(other Float) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}
