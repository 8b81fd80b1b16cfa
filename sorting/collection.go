package sorting

import (
	"cmp"
	"fmt"
	"log/slog"
	"time"

	"github.com/amp-labs/amp-algorithms/compare"
	amperrors "github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/sortable"
)

// Collection holds a slice and the ordering used to sort it.
//
// The slice is stored by reference: the in-place algorithms rearrange the
// caller's own backing array, and the copying algorithms read it.
type Collection[T any] struct {
	elements []T
	less     compare.LessFunc[T]
	opts     options
	counters counters
}

// New builds a Collection ordered by the natural order of T.
func New[T cmp.Ordered](elems []T, opts ...Option) (*Collection[T], error) {
	return NewFunc(elems, compare.Less[T], opts...)
}

// NewSortable builds a Collection ordered by T's LessThan method.
func NewSortable[T sortable.Sortable[T]](elems []T, opts ...Option) (*Collection[T], error) {
	return NewFunc(elems, sortable.Less[T], opts...)
}

// NewFunc builds a Collection ordered by less, which must be a strict weak
// ordering. A nil slice or a nil less fails with ErrInvalidInput; an empty
// slice is fine.
func NewFunc[T any](elems []T, less compare.LessFunc[T], opts ...Option) (*Collection[T], error) {
	if elems == nil {
		return nil, fmt.Errorf("%w: elements: %w", ErrInvalidInput, amperrors.ErrNilArgument)
	}

	if less == nil {
		return nil, fmt.Errorf("%w: less function: %w", ErrInvalidInput, amperrors.ErrNilArgument)
	}

	return &Collection[T]{
		elements: elems,
		less:     less,
		opts:     newOptions(opts),
	}, nil
}

// FromAny builds a Collection from a dynamically-typed value, which must be
// a non-nil []T. Anything else (a scalar, nil, a slice of another type)
// fails with ErrInvalidInput.
func FromAny[T cmp.Ordered](value any, opts ...Option) (*Collection[T], error) {
	if value == nil {
		return nil, fmt.Errorf("%w: missing value: %w", ErrInvalidInput, amperrors.ErrNilArgument)
	}

	elems, ok := value.([]T)
	if !ok {
		return nil, fmt.Errorf("%w: expected %T, got %T: %w", ErrInvalidInput, elems, value, amperrors.ErrWrongType)
	}

	return New(elems, opts...)
}

// Elements returns the stored slice. After an in-place sort it is sorted.
func (c *Collection[T]) Elements() []T {
	return c.elements
}

// Len returns the number of stored elements.
func (c *Collection[T]) Len() int {
	return len(c.elements)
}

// Name returns the metrics label of the collection.
func (c *Collection[T]) Name() string {
	return c.opts.name
}

// Stats returns the totals accumulated over every sort call so far.
func (c *Collection[T]) Stats() Stats {
	return c.counters.snapshot()
}

// Sort runs the given algorithm. Whether the stored slice is mutated
// depends on the algorithm, see the package documentation.
func (c *Collection[T]) Sort(alg Algorithm) ([]T, error) {
	switch alg {
	case Bubble:
		return c.BubbleSort(), nil
	case Selection:
		return c.SelectionSort(), nil
	case Insertion:
		return c.InsertionSort(), nil
	case Quick:
		return c.QuickSort(), nil
	case Merge:
		return c.MergeSort(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

func (c *Collection[T]) log() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}

	return logger.Get()
}

// lt compares two elements, counting the comparison.
func (c *Collection[T]) lt(t *tally, a, b T) bool {
	t.comparisons++

	return c.less(a, b)
}

// swap exchanges two elements of data, counting the swap.
func swap[T any](t *tally, data []T, i, j int) {
	t.swaps++
	data[i], data[j] = data[j], data[i]
}

// finish records a completed call in the collection's stats, the metrics
// and the debug log.
func (c *Collection[T]) finish(alg Algorithm, size int, started time.Time, t *tally) {
	elapsed := time.Since(started)

	c.counters.add(t)
	observe(c.opts.name, alg, size, t.comparisons, elapsed)

	c.log().Debug("sorted collection",
		"collection", c.opts.name,
		"algorithm", alg.String(),
		"size", size,
		"comparisons", t.comparisons,
		"swaps", t.swaps,
		"duration", elapsed)
}
