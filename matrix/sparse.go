// SPDX-License-Identifier: MIT

// Package matrix - Sparse: an unbounded two-dimensional matrix.
//
// Purpose:
//   - Every cell logically holds the default value fixed at New.
//   - Only cells holding something else consume memory; writing the default
//     removes the entry, so Len() is always the count of non-default cells.
//   - Cells are addressed either in two stages (Row(x).Col(y)) or directly
//     (At, Set, Erase).
//
// Complexity quicksheet:
//   - At/Set/Erase/Has/Len: O(1) expected.
//   - Cells: O(Len()) lazily; SortedCells/Bounds/Clone/String: O(Len()·log Len()) at most.
//
// Sparse is not safe for concurrent use; guard it with a mutex if shared.

package matrix

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Sparse is an unbounded matrix of T with a fixed default value.
type Sparse[T comparable] struct {
	store *Store[T]
	opts  Options
}

var _ fmt.Stringer = (*Sparse[int])(nil)

// New returns an empty matrix in which every cell reads as def.
// Occupancy is decided with ==, so for float types a NaN write always stores.
//
// Example:
//
//	m := matrix.New(0)
//	m.Row(3).Col(-7).Assign(42)
//	v := m.At(3, -7) // 42
func New[T comparable](def T, opts ...Option) *Sparse[T] {
	o := gatherOptions(opts...)

	return &Sparse[T]{
		store: NewStore(def, o.capacity),
		opts:  o,
	}
}

// Default returns the value held by every unwritten cell.
func (m *Sparse[T]) Default() T { return m.store.Default() }

// Row selects row x. The returned selector must be completed with Col before
// the cell can be read or written.
func (m *Sparse[T]) Row(x int) RowSelector[T] {
	return RowSelector[T]{m: m, x: x}
}

// At returns the value at (x, y), or the default when the cell is absent.
func (m *Sparse[T]) At(x, y int) T {
	return m.store.Get(Coord{X: x, Y: y})
}

// Set writes v at (x, y). It is shorthand for m.Row(x).Col(y).Assign(v) and
// follows the same rule: writing the default erases the cell.
func (m *Sparse[T]) Set(x, y int, v T) {
	m.Row(x).Col(y).Assign(v)
}

// Erase resets (x, y) to the default. No-op when the cell is absent.
func (m *Sparse[T]) Erase(x, y int) {
	m.store.Erase(Coord{X: x, Y: y})
}

// Has reports whether (x, y) holds a non-default value.
func (m *Sparse[T]) Has(x, y int) bool {
	return m.store.Has(Coord{X: x, Y: y})
}

// Len returns the number of occupied cells.
func (m *Sparse[T]) Len() int { return m.store.Len() }

// Clear resets every cell to the default.
func (m *Sparse[T]) Clear() { m.store.Clear() }

// Clone returns an independent matrix with the same default, options and cells.
func (m *Sparse[T]) Clone() *Sparse[T] {
	return &Sparse[T]{store: m.store.Clone(), opts: m.opts}
}

// Cells enumerates occupied cells only, each exactly once, in unspecified
// order. Each call is an independent traversal:
//
//	for c := range m.Cells() {
//		fmt.Println(c.X, c.Y, c.Value)
//	}
//
// Do not write to the matrix while ranging over Cells.
func (m *Sparse[T]) Cells() iter.Seq[Cell[T]] {
	return m.store.Cells()
}

// SortedCells returns the occupied cells in row-major order (X, then Y).
// Use it when output must be reproducible.
func (m *Sparse[T]) SortedCells() []Cell[T] {
	out := make([]Cell[T], 0, m.Len())
	for c := range m.Cells() {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells[T])

	return out
}

// compareCells orders cells row-major.
func compareCells[T comparable](a, b Cell[T]) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}

	return cmp.Compare(a.Y, b.Y)
}

// Bounds returns the smallest rectangle [lo, hi] (inclusive) covering every
// occupied cell. ok is false for an empty matrix.
func (m *Sparse[T]) Bounds() (lo, hi Coord, ok bool) {
	for c := range m.Cells() {
		if !ok {
			lo, hi, ok = c.Coord(), c.Coord(), true
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}

	return lo, hi, ok
}

// String lists occupied cells in row-major order, one "[x][y] = v" per line.
// An empty matrix renders as the empty string.
func (m *Sparse[T]) String() string {
	var sb strings.Builder
	for _, c := range m.SortedCells() {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// formatValue renders one cell value with %v.
func formatValue[T any](v T) string {
	return fmt.Sprintf("%v", v)
}
