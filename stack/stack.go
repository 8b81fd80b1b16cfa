// Package stack provides a generic last-in-first-out stack, optionally
// bounded to a fixed capacity.
package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned when popping from an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrStackOverflow is returned when pushing onto a full, bounded stack.
	ErrStackOverflow = errors.New("stack overflow")
)

// Stack is a LIFO container. The zero value is an empty, unbounded stack.
// It is not safe for concurrent use.
type Stack[T any] struct {
	data     []T
	capacity int
}

// New returns an empty stack holding at most capacity items. A capacity
// of zero or less means the stack grows without bound.
func New[T any](capacity int) *Stack[T] {
	s := &Stack[T]{capacity: capacity}

	if capacity > 0 {
		s.data = make([]T, 0, capacity)
	}

	return s
}

// Push puts item on top of the stack.
func (s *Stack[T]) Push(item T) error {
	if s.capacity > 0 && len(s.data) >= s.capacity {
		return fmt.Errorf("%w: capacity is %d", ErrStackOverflow, s.capacity)
	}

	s.data = append(s.data, item)

	return nil
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, error) { //nolint:ireturn
	var zero T

	if len(s.data) == 0 {
		return zero, ErrStackUnderflow
	}

	top := len(s.data) - 1
	item := s.data[top]

	// Clear the slot so the backing array doesn't pin the value.
	s.data[top] = zero
	s.data = s.data[:top]

	return item, nil
}

// Peek returns the top item without removing it. The boolean is false
// if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) { //nolint:ireturn
	if len(s.data) == 0 {
		var zero T

		return zero, false
	}

	return s.data[len(s.data)-1], true
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// Size returns the number of items on the stack.
func (s *Stack[T]) Size() int {
	return len(s.data)
}

// Capacity returns the maximum size of the stack, or 0 if it is unbounded.
func (s *Stack[T]) Capacity() int {
	if s.capacity <= 0 {
		return 0
	}

	return s.capacity
}
