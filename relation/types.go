// SPDX-License-Identifier: MIT

// Package relation: the matrix contract consumed by every operation.
// This file intentionally contains ONLY the public Matrix interface; the
// concrete row-major storage lives in impl_dense.go.
package relation

// Matrix is a two-dimensional mutable array of bool cells.
// A relation over {0,…,n-1} is a Matrix with Rows() == Cols() == n where
// At(i, j) == true means "i is related to j".
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the cell at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (bool, error)

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v bool) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
