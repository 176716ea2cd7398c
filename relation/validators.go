// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Provide a single, canonical source of truth for input checks.
//   - Keep kernels minimal by delegating nil/shape/index checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Square → SameSize).
//   - A typed nil (*Dense)(nil) stored in a Matrix counts as nil.

package relation

import (
	"sort"
)

// isNil reports whether m is an untyped nil or a nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
// AI-Hints: first statement of every unary operation in this package.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateSameSize – Composite: Square(a) → Square(b) → equal order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: first statement of every binary operator (SetAlgebra).
func ValidateSameSize(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateSquare(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateNode checks that node is a 0-based element index of square m.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: O(1).
func ValidateNode(m Matrix, node int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if node < 0 || node >= m.Rows() {
		return ErrOutOfRange
	}

	return nil
}

// normalizePositions converts 1-based element positions into a sorted,
// duplicate-free slice of 0-based indices.
//
// Errors: ErrOutOfRange for an empty list or any position outside [1, n].
// Complexity: O(k log k) for k positions.
func normalizePositions(n int, positions []int) ([]int, error) {
	if len(positions) == 0 {
		return nil, ErrOutOfRange
	}

	seen := make([]bool, n)
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		if p < 1 || p > n {
			return nil, ErrOutOfRange
		}
		if seen[p-1] {
			continue
		}
		seen[p-1] = true
		out = append(out, p-1)
	}
	sort.Ints(out)

	return out, nil
}

// asDense returns a *Dense view of a validated matrix.
// Fast-path: *Dense is returned as-is (callers only read it).
// Fallback: any other Matrix is materialized through At in i→j order.
// Complexity: O(1) fast-path, O(r*c) fallback.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	r, c := m.Rows(), m.Cols()
	out := newDense(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// squareDense is the common prologue of unary operations:
// ValidateSquare, then asDense.
func squareDense(op string, m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, relationErrorf(op, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, relationErrorf(op, err)
	}

	return d, nil
}

// pairDense is the common prologue of binary operators:
// ValidateSameSize, then asDense on both operands.
func pairDense(op string, a, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, nil, relationErrorf(op, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, relationErrorf(op, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, relationErrorf(op, err)
	}

	return da, db, nil
}
