// Package sorting implements the classic comparison sorts over a single
// collection type.
//
// A Collection wraps a caller-owned slice together with an ordering. Five
// algorithms are available and all of them produce the same ascending
// order for the same input; they differ in how they treat the stored slice:
//
//	Algorithm   Mutates stored slice   Stable   Best / worst comparisons
//	bubble      yes (returns it)       yes      O(n)  / O(n²)
//	selection   yes (returns it)       no       O(n²) / O(n²)
//	insertion   yes (returns it)       yes      O(n)  / O(n²)
//	quick       no  (new slice)        yes      O(n log n) / O(n²)
//	merge       no  (new slice)        opt-in   O(n log n) / O(n log n)
//
// Quick sort always picks the first element as pivot, so sorted and
// reverse-sorted inputs hit its quadratic case. It runs off an explicit
// work stack, so such inputs cost time but never goroutine stack. Its
// partitions keep scan order and elements equal to the pivot always land
// after it, which makes it stable.
//
// Merge sort takes the right-hand element when two heads compare equal,
// unless the collection was built with WithStableMerge(true).
//
// The in-place algorithms race with every other call on the same
// Collection and must be serialized by the caller. The copying algorithms
// only read the stored slice and may run concurrently with each other.
//
// CrossCheck runs every algorithm on private copies of an input and fails
// unless they all agree.
package sorting
