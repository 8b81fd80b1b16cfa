// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so they can be handed to the sorting and search
// packages without supplying a separate ordering function.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-algorithms/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// Ready-made implementations exist for [Float], [String] and [Natural]
// (strings compared in natural order, so "file10" follows "file9").
//
// # Usage
//
//	coll, err := sorting.NewSortable([]sortable.Natural{"v10", "v9", "v1"})
//	if err != nil {
//	    return err
//	}
//
//	coll.MergeSort() // v1, v9, v10
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    return j.Priority < other.Priority
//	}
//
// LessThan must be a strict ordering: x.LessThan(x) is always false. Stable
// algorithms keep equal-priority jobs in their input order.
package sortable
