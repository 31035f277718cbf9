// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the store and the indexing façade.
// This file intentionally contains ONLY value types (Coord, Cell); storage
// lives in store.go and the accessor protocol in accessor.go.
package matrix

import "fmt"

// Coord addresses one cell of an unbounded matrix: X selects the row, Y the
// column. Any int is legal in either component, negative values included.
// Coord is comparable and is used directly as a map key.
type Coord struct {
	X int // row
	Y int // column
}

// Mixing constants (64-bit golden ratio and the splitmix64 finalizer).
const (
	hashSeed   = 0x9e3779b97f4a7c15
	hashMulti1 = 0xbf58476d1ce4e5b9
	hashMulti2 = 0x94d049bb133111eb
)

// Hash returns a 64-bit digest combining both components.
// Equal coordinates always produce equal digests. The row is mixed before the
// column is folded in, so (a,b) and (b,a) usually differ.
//
// Go maps hash Coord on their own; Hash is for callers that need an explicit
// digest, e.g. to shard cells across several matrices.
// Complexity: O(1).
func (c Coord) Hash() uint64 {
	h := mix64(uint64(c.X) + hashSeed)

	return mix64(h ^ (uint64(c.Y) + hashSeed + (h << 6) + (h >> 2)))
}

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * hashMulti1
	z = (z ^ (z >> 27)) * hashMulti2

	return z ^ (z >> 31)
}

// String renders the coordinate as "[x][y]".
func (c Coord) String() string {
	return fmt.Sprintf("[%d][%d]", c.X, c.Y)
}

// Cell is one occupied (x, y, value) triple produced by enumeration.
// A Cell is a copy; mutating it does not touch the matrix.
type Cell[T comparable] struct {
	X, Y  int // coordinates of the occupied cell
	Value T   // stored (non-default) value
}

// Coord returns the cell position as a Coord.
func (c Cell[T]) Coord() Coord { return Coord{X: c.X, Y: c.Y} }

// String renders the cell as "[x][y] = value".
func (c Cell[T]) String() string {
	return fmt.Sprintf("[%d][%d] = %v", c.X, c.Y, c.Value)
}
