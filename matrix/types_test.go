// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/infmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestCoordHash_EqualCoordsEqualDigests(t *testing.T) {
	cases := []matrix.Coord{
		{X: 0, Y: 0},
		{X: 1, Y: -1},
		{X: -100, Y: 100},
		{X: 1 << 20, Y: -(1 << 20)},
	}
	for _, c := range cases {
		cp := matrix.Coord{X: c.X, Y: c.Y}
		require.Equal(t, c, cp)
		require.Equal(t, c.Hash(), cp.Hash(), "coord %v", c)
	}
}

func TestCoordHash_OrderSensitive(t *testing.T) {
	a := matrix.Coord{X: 3, Y: 7}
	b := matrix.Coord{X: 7, Y: 3}
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestCoordHash_FewCollisionsOnSmallGrid(t *testing.T) {
	// 201×201 block around the origin: a decent mixer must not collide here.
	seen := make(map[uint64]matrix.Coord)
	for x := -100; x <= 100; x++ {
		for y := -100; y <= 100; y++ {
			c := matrix.Coord{X: x, Y: y}
			h := c.Hash()
			prev, dup := seen[h]
			require.Falsef(t, dup, "hash collision between %v and %v", prev, c)
			seen[h] = c
		}
	}
}

func TestCoordAndCell_String(t *testing.T) {
	require.Equal(t, "[4][-2]", matrix.Coord{X: 4, Y: -2}.String())

	c := matrix.Cell[float64]{X: 100, Y: 100, Value: 514}
	require.Equal(t, "[100][100] = 514", c.String())
	require.Equal(t, matrix.Coord{X: 100, Y: 100}, c.Coord())
}
