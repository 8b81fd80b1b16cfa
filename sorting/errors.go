package sorting

import "errors"

var (
	// ErrInvalidInput is returned when a Collection can't be built from the
	// given arguments: a missing slice, a missing ordering, or a value that
	// isn't a slice of the expected element type.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownAlgorithm is returned for algorithm names and values that
	// don't denote one of the supported algorithms.
	ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

	// ErrDisagreement is returned by CrossCheck when an algorithm's output
	// isn't a sorted permutation of its input.
	ErrDisagreement = errors.New("sorting algorithms disagree")
)
