// Package types provides small generic containers shared across services.
package types

import "slices"

// OrderedSet is a set that remembers the order in which elements were first
// inserted.
//
// It is used wherever de-duplication must not reorder the input, such as
// message types, addresses and coins extracted from a transaction. The zero
// value is not ready for use; create one with NewOrderedSet.
type OrderedSet[T comparable] struct {
	index  map[T]struct{}
	values []T
}

// NewOrderedSet creates an OrderedSet and inserts the provided elements in
// order, skipping duplicates.
//
// Parameters:
//   - data: zero or more elements to initialize the set with.
//
// Returns:
//   - A pointer to the initialized OrderedSet.
func NewOrderedSet[T comparable](data ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		index:  make(map[T]struct{}, len(data)),
		values: make([]T, 0, len(data)),
	}
	s.Add(data...)
	return s
}

// Add appends each value that is not already present.
//
// Returns:
//   - The number of values actually inserted.
func (s *OrderedSet[T]) Add(values ...T) int {
	added := 0
	for _, v := range values {
		if _, ok := s.index[v]; ok {
			continue
		}

		s.index[v] = struct{}{}
		s.values = append(s.values, v)
		added++
	}
	return added
}

// Has reports whether v is in the set.
func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.values)
}

// Values returns a copy of the elements in insertion order. The result is
// never nil.
func (s *OrderedSet[T]) Values() []T {
	return slices.Clone(s.values)
}
