// SPDX-License-Identifier: MIT

// Package matrix - Store: the dictionary-of-keys backing a Sparse matrix.
//
// Purpose:
//   - Map Coord → T for occupied cells only; an absent key reads as the default.
//   - Keep Set a raw primitive. The "default means absent" policy lives in one
//     place (CellRef.Assign); Store never compares values against the default.
//
// Complexity quicksheet:
//   - Get/Set/Erase/Has/Len: O(1) expected; Cells: O(Len()); Clone: O(Len()).

package matrix

import (
	"iter"
	"maps"
)

// Store owns the occupied cells of one matrix.
// The zero Store is not usable; construct with NewStore.
type Store[T comparable] struct {
	def  T           // value reported for absent coordinates
	data map[Coord]T // occupied cells only (when written through CellRef)
}

// NewStore returns an empty store reporting def for absent coordinates.
// capacity is a size hint for the backing map; negative values are treated as 0.
func NewStore[T comparable](def T, capacity int) *Store[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Store[T]{def: def, data: make(map[Coord]T, capacity)}
}

// Default returns the value reported for absent coordinates.
func (s *Store[T]) Default() T { return s.def }

// Get returns the value stored at c, or the default when c is absent.
// Get never mutates the store.
func (s *Store[T]) Get(c Coord) T {
	if v, ok := s.data[c]; ok {
		return v
	}

	return s.def
}

// Has reports whether c has a stored entry.
func (s *Store[T]) Has(c Coord) bool {
	_, ok := s.data[c]

	return ok
}

// Set stores v at c, overwriting any previous value. It does NOT check v
// against the default: callers that need the no-default-stored invariant must
// route default writes to Erase.
func (s *Store[T]) Set(c Coord, v T) {
	s.data[c] = v
}

// Erase removes the entry at c. Erasing an absent coordinate is a no-op.
func (s *Store[T]) Erase(c Coord) {
	delete(s.data, c)
}

// Len returns the number of stored entries.
func (s *Store[T]) Len() int { return len(s.data) }

// Clear removes every entry, keeping the default.
func (s *Store[T]) Clear() {
	clear(s.data)
}

// Clone returns an independent copy with the same default and entries.
func (s *Store[T]) Clone() *Store[T] {
	return &Store[T]{def: s.def, data: maps.Clone(s.data)}
}

// Cells returns a lazy sequence over the stored entries, each exactly once,
// in unspecified order. Every call starts an independent traversal and the
// sequence may be ranged over any number of times. Mutating the store while a
// traversal is in progress is not supported.
func (s *Store[T]) Cells() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for c, v := range s.data {
			if !yield(Cell[T]{X: c.X, Y: c.Y, Value: v}) {
				return
			}
		}
	}
}
