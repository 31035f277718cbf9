// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Point operations (At, Set, Erase, Len, Cells) are total and never return
// errors. The sentinels below belong to the window surface only, where a
// caller can ask for a region that has no sensible shape.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels
// are wrapped with call-site context via sparseErrorf; callers match them
// with errors.Is.

var (
	// ErrBadShape is returned when a requested window has h<=0 or w<=0.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that the last row or column of a window does not
	// fit in the int coordinate space.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// sparseErrorf wraps err with a uniform "Sparse.<method>(r0,c0,h,w)" context.
func sparseErrorf(method string, r0, c0, h, w int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d,%d,%d): %w", method, r0, c0, h, w, err)
}
