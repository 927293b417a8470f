// Package stacks provides a LIFO stack over a growable slice.
package stacks

import (
	"fmt"
	"iter"

	"ironds/errs"
)

var ErrStackEmpty = fmt.Errorf("stack is empty: %w", errs.ErrEmptyContainer)

type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

// Stack is a LIFO stack. top is the index of the most recently pushed element, -1 when empty.
// Slots above top are zeroed and reused by later pushes.
type Stack[T any] struct {
	items []T
	top   int
}

func New[T any](opts ...Option) *Stack[T] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.capacity < 0 {
		cfg.capacity = 0
	}
	return &Stack[T]{
		items: make([]T, 0, cfg.capacity),
		top:   -1,
	}
}

// Push places value on top of the stack. Amortized O(1).
func (s *Stack[T]) Push(value T) {
	s.top++
	if s.top < len(s.items) {
		s.items[s.top] = value
		return
	}
	s.items = append(s.items, value)
}

// Pop removes and returns the top element. The vacated slot is zeroed so the value can be collected.
func (s *Stack[T]) Pop() (value T, err error) {
	if s.IsEmpty() {
		return value, ErrStackEmpty
	}
	value = s.items[s.top]
	var zero T
	s.items[s.top] = zero
	s.top--
	return value, nil
}

func (s *Stack[T]) Peek() (value T, err error) {
	if s.IsEmpty() {
		return value, ErrStackEmpty
	}
	return s.items[s.top], nil
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == -1
}

func (s *Stack[T]) Len() int {
	return s.top + 1
}

// Values yields the elements from top to bottom without popping them.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.top; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

func (s *Stack[T]) String() string {
	return fmt.Sprintf("%v", s.items[:s.top+1])
}
