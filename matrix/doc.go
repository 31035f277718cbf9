// Package matrix implements an unbounded, two-dimensional sparse matrix.
//
// A Sparse[T] is a logically infinite grid indexed by two ints (negative
// values included). Every cell holds the default value given to New until it
// is written; only cells holding a different value consume memory.
//
// The package provides:
//
//   - Sparse[T] with two-stage addressing: m.Row(x).Col(y) yields a CellRef
//     that reads with Value and writes with Assign. Assign returns the same
//     handle, so writes chain: m.Row(x).Col(y).Assign(1).Assign(2).
//   - Direct point access via At, Set, Erase and Has.
//   - Cells, a restartable iter.Seq over occupied cells only, plus
//     SortedCells for reproducible output.
//   - Window / FormatWindow to materialize or print a dense rectangle.
//   - Store[T], the dictionary-of-keys backing store, usable on its own.
//
// Central invariant: writing the default value erases the cell. A cell holding
// the default is therefore indistinguishable from an absent one, and Len()
// always equals the number of non-default cells.
//
// Sparse is not safe for concurrent use.
package matrix
