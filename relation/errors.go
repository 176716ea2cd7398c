// SPDX-License-Identifier: MIT
// Package relation: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the relation
// package. Every public operation returns one of these (wrapped with operation
// context) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package relation

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// nil -> non-square -> size mismatch -> index/range -> structural violations.
// Validation always completes before the result is allocated, so a failing
// call never leaves a partially built relation behind.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("relation: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("relation: matrix is not square")

	// ErrDimensionMismatch indicates two relations of different order were
	// passed to a binary operator.
	ErrDimensionMismatch = errors.New("relation: dimension mismatch")

	// ErrOutOfRange indicates an index (0-based cell or node, 1-based
	// narrowing position) outside its valid bounds, or an empty position set.
	ErrOutOfRange = errors.New("relation: index out of range")

	// ErrBadShape is returned by constructors for negative or ragged shapes.
	ErrBadShape = errors.New("relation: invalid shape")

	// ErrNotEquivalence is returned by EquivalenceClasses when the input is
	// not reflexive, symmetric and transitive.
	ErrNotEquivalence = errors.New("relation: not an equivalence relation")

	// ErrCycleDetected is returned by TopologicalOrder on cyclic input.
	ErrCycleDetected = errors.New("relation: cycle detected")
)

// relationErrorf tags err with the public operation name.
// The sentinel stays reachable through errors.Is.
func relationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
