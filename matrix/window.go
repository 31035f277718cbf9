// SPDX-License-Identifier: MIT

// Package matrix - dense windows over a Sparse matrix.
//
// A window is an h×w rectangle whose top-left cell is (r0, c0). Window copies
// it into a [][]T (absent cells read as the default); FormatWindow renders it
// as text. Both are pure reads and never create entries.

package matrix

import (
	"math"
	"strings"
)

const (
	ctxWindow       = "Window"       // method tag used in error wrappers
	ctxFormatWindow = "FormatWindow" // method tag used in error wrappers
)

// validateWindow checks the shape, that the last row/column is representable
// and that the cell count h*w fits in an int.
func validateWindow(r0, c0, h, w int) error {
	if h <= 0 || w <= 0 {
		return ErrBadShape
	}
	if r0 > math.MaxInt-(h-1) || c0 > math.MaxInt-(w-1) {
		return ErrOutOfRange
	}
	if w > math.MaxInt/h {
		return ErrOutOfRange
	}

	return nil
}

// Window returns an independent h×w copy of the region starting at (r0, c0):
// out[i][j] == m.At(r0+i, c0+j).
//
// Errors:
//   - ErrBadShape when h <= 0 or w <= 0.
//   - ErrOutOfRange when r0+h-1 or c0+w-1 overflows int, or h*w does.
//
// Complexity: O(h*w).
func (m *Sparse[T]) Window(r0, c0, h, w int) ([][]T, error) {
	if err := validateWindow(r0, c0, h, w); err != nil {
		return nil, sparseErrorf(ctxWindow, r0, c0, h, w, err)
	}

	// One flat buffer, sliced per row.
	buf := make([]T, h*w)
	out := make([][]T, h)
	for i := 0; i < h; i++ {
		row := buf[i*w : (i+1)*w : (i+1)*w]
		for j := 0; j < w; j++ {
			row[j] = m.At(r0+i, c0+j)
		}
		out[i] = row
	}

	return out, nil
}

// FormatWindow renders the h×w region starting at (r0, c0) one row per line.
// Each value is followed by the configured separator (see WithCellSeparator),
// so with the default separator a row of 1 and 0 prints as "1 0 \n".
//
// Errors are the same as Window.
func (m *Sparse[T]) FormatWindow(r0, c0, h, w int) (string, error) {
	if err := validateWindow(r0, c0, h, w); err != nil {
		return "", sparseErrorf(ctxFormatWindow, r0, c0, h, w, err)
	}

	var sb strings.Builder
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			sb.WriteString(formatValue(m.At(r0+i, c0+j)))
			sb.WriteString(m.opts.separator)
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
