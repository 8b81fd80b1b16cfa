package sortable

import "facette.io/natsort"

// Natural is a string compared in natural order: runs of digits are compared
// by numeric value, so "item2" sorts before "item10".
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan is strict. natsort.Compare answers "precedes or equal", so values
// it places in both directions ("v01" and "v1") are treated as equivalent.
func (n Natural) LessThan(other Natural) bool {
	return natsort.Compare(string(n), string(other)) && !natsort.Compare(string(other), string(n))
}
