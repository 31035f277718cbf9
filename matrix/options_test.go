// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/infmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultCapacity, o.Capacity())
	require.Equal(t, matrix.DefaultCellSeparator, o.CellSeparator())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithCapacity(8), nil, matrix.WithCapacity(64))
	require.Equal(t, 64, o.Capacity())

	o = matrix.NewOptions(matrix.WithCellSeparator(","), matrix.WithCellSeparator(""))
	require.Equal(t, "", o.CellSeparator())
}

func TestWithCapacity_PanicsOnNegative(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithCapacity: capacity must be non-negative", func() {
		matrix.WithCapacity(-1)
	})
	require.NotPanics(t, func() { matrix.WithCapacity(0) })
}

func TestWithCellSeparator_AffectsFormatWindow(t *testing.T) {
	m := matrix.New(0, matrix.WithCellSeparator("|"))
	m.Set(0, 1, 5)

	s, err := m.FormatWindow(0, 0, 1, 3)
	require.NoError(t, err)
	require.Equal(t, "0|5|0|\n", s)
}
