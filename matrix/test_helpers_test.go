// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures (diagonal fills, cell collections).

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/infmatrix/matrix"
)

// diagSpan is the side of the block used by the diagonal fixtures.
const diagSpan = 10

// fillDiagonals writes m[i][i] = i and m[i][span-1-i] = span-1-i for i in
// [0, span), in that order. With default 0 the writes of 0 store nothing.
func fillDiagonals(t testing.TB, m *matrix.Sparse[int], span int) {
	t.Helper()
	for i := 0; i < span; i++ {
		m.Row(i).Col(i).Assign(i)
		m.Row(i).Col(span - 1 - i).Assign(span - 1 - i)
	}
}

// collect drains a full enumeration into a coordinate-keyed map and fails
// the test if any coordinate is yielded twice.
func collect[T comparable](t *testing.T, m *matrix.Sparse[T]) map[matrix.Coord]T {
	t.Helper()
	got := make(map[matrix.Coord]T, m.Len())
	for c := range m.Cells() {
		if _, dup := got[c.Coord()]; dup {
			t.Fatalf("cell %v yielded twice", c.Coord())
		}
		got[c.Coord()] = c.Value
	}

	return got
}
