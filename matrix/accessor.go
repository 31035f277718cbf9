// SPDX-License-Identifier: MIT

// Package matrix - two-stage cell addressing.
//
// Addressing a cell goes through two distinct types:
//
//	m.Row(x)        → RowSelector[T]  (column pending; no read/write methods)
//	m.Row(x).Col(y) → CellRef[T]      (fully addressed; Value / Assign)
//
// Because RowSelector exposes nothing but Col, a half-addressed cell cannot be
// read or written; the compiler rejects it.
//
// Both types are small values holding a back-pointer to the matrix. They are
// meant to live for one expression; keeping them around is harmless but they
// always observe the matrix's current state, never a snapshot.

package matrix

// RowSelector is a matrix with the row index fixed and the column pending.
type RowSelector[T comparable] struct {
	m *Sparse[T]
	x int
}

// Col fixes the column and returns a fully addressed cell handle.
// No store access happens here.
func (r RowSelector[T]) Col(y int) CellRef[T] {
	return CellRef[T]{m: r.m, at: Coord{X: r.x, Y: y}}
}

// X returns the selected row index.
func (r RowSelector[T]) X() int { return r.x }

// CellRef is a fully addressed handle to one cell.
type CellRef[T comparable] struct {
	m  *Sparse[T]
	at Coord
}

// Coord returns the addressed coordinate.
func (c CellRef[T]) Coord() Coord { return c.at }

// Value returns the cell value, or the matrix default when the cell is absent.
// Reading never creates an entry.
func (c CellRef[T]) Value() T {
	return c.m.store.Get(c.at)
}

// Assign writes v into the cell and returns the same handle, so assignments
// chain left to right:
//
//	m.Row(100).Col(100).Assign(314).Assign(0).Assign(217)
//
// Every step re-evaluates the default check: v == default erases the entry,
// anything else stores it. The final state reflects the last call only.
func (c CellRef[T]) Assign(v T) CellRef[T] {
	if v == c.m.store.Default() {
		c.m.store.Erase(c.at)
	} else {
		c.m.store.Set(c.at, v)
	}

	return c
}

// Occupied reports whether the cell currently holds a non-default value.
func (c CellRef[T]) Occupied() bool {
	return c.m.store.Has(c.at)
}

// String formats the current cell value with %v.
func (c CellRef[T]) String() string {
	return formatValue(c.Value())
}
