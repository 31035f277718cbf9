// Package infmatrix is an in-memory, unbounded two-dimensional sparse matrix.
//
// What is infmatrix?
//
//	A small library with no runtime dependencies, built around one container:
//		• Sparse[T]: a logically infinite grid indexed by any pair of ints
//		• a fixed default value per matrix; only other values use memory
//		• two-stage addressing m.Row(x).Col(y) with chained Assign
//		• restartable enumeration of occupied cells (iter.Seq)
//
// Everything lives in one subpackage:
//
//	matrix/   — Coord, Store, Sparse, RowSelector, CellRef, windows
//	examples/ — runnable demonstration programs
//
// Quick example:
//
//	m := matrix.New(0)
//	m.Row(100).Col(100).Assign(314).Assign(0).Assign(217)
//	m.At(100, 100) // 217
//	m.Len()        // 1
//
//	go get github.com/katalvlaran/infmatrix/matrix
package infmatrix
