package sortable

// String is a sortable string compared byte by byte, so "item10" sorts
// before "item2". Use Natural for numeric-aware ordering.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
