// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Set-algebraic combinators over two relations of equal order:
//     Intersection, Union, Difference, SymmetricDifference and Product
//     (relational composition), plus Power as repeated composition.
//
// Design:
//   - All cell-wise operators share one private kernel (ewCombine) so the
//     validation order and loop order are identical everywhere.
//   - Every result is a freshly allocated *Dense; operands are only read.
//
// Determinism & Performance:
//   - Fixed flat 0..n²-1 loop for cell-wise ops; i→j→k for Product.
//   - O(n²) for cell-wise ops, O(n³) worst case for Product.

package relation

// Operation names for unified error wrapping.
const (
	opIntersection        = "Intersection"
	opUnion               = "Union"
	opDifference          = "Difference"
	opSymmetricDifference = "SymmetricDifference"
	opProduct             = "Product"
	opPower               = "Power"
)

// ewCombine computes out[i,j] = f(a[i,j], b[i,j]) for two same-order relations.
// Time: O(n²). Space: O(n²).
func ewCombine(op string, a, b Matrix, f func(x, y bool) bool) (*Dense, error) {
	da, db, err := pairDense(op, a, b)
	if err != nil {
		return nil, err
	}

	out := newDense(da.r, da.c)
	for k := range out.data {
		out.data[k] = f(da.data[k], db.data[k])
	}

	return out, nil
}

// Intersection returns A ∩ B: out[i,j] = a[i,j] ∧ b[i,j].
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func Intersection(a, b Matrix) (*Dense, error) {
	return ewCombine(opIntersection, a, b, func(x, y bool) bool { return x && y })
}

// Union returns A ∪ B: out[i,j] = a[i,j] ∨ b[i,j].
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func Union(a, b Matrix) (*Dense, error) {
	return ewCombine(opUnion, a, b, func(x, y bool) bool { return x || y })
}

// Difference returns A \ B: out[i,j] = a[i,j] ∧ ¬b[i,j].
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func Difference(a, b Matrix) (*Dense, error) {
	return ewCombine(opDifference, a, b, func(x, y bool) bool { return x && !y })
}

// SymmetricDifference returns A △ B: out[i,j] = a[i,j] ⊕ b[i,j].
// Equivalent to Union(Difference(A,B), Difference(B,A)) in a single pass.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func SymmetricDifference(a, b Matrix) (*Dense, error) {
	return ewCombine(opSymmetricDifference, a, b, func(x, y bool) bool { return x != y })
}

// Product returns the relational composition A∘B:
// out[i,j] = ∃k. a[i,k] ∧ b[k,j] (boolean matrix product).
//
// Implementation:
//   - Stage 1: validate both operands (nil → square → same order).
//   - Stage 2: for each (i,j) scan k until the first witness.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³) worst case, Space O(n²).
func Product(a, b Matrix) (*Dense, error) {
	da, db, err := pairDense(opProduct, a, b)
	if err != nil {
		return nil, err
	}

	return product(da, db), nil
}

// product is the unchecked kernel behind Product and Power.
func product(a, b *Dense) *Dense {
	n := a.r
	out := newDense(n, n)

	var i, j, k int
	for i = 0; i < n; i++ {
		baseI := i * n
		for j = 0; j < n; j++ {
			for k = 0; k < n; k++ {
				if a.data[baseI+k] && b.data[k*n+j] {
					out.data[baseI+j] = true
					break // one witness is enough
				}
			}
		}
	}

	return out
}

// Power returns the k-fold composition R^k, with R^0 = Δ (identity) and R^1 = R.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange (k < 0).
//
// Complexity:
//   - Time O(n³ log k) via binary exponentiation, Space O(n²).
func Power(a Matrix, k int) (*Dense, error) {
	d, err := squareDense(opPower, a)
	if err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, relationErrorf(opPower, ErrOutOfRange)
	}

	result, _ := Identity(d.r) // order already validated
	base := d.cloneDense()
	for k > 0 {
		if k&1 == 1 {
			result = product(result, base)
		}
		k >>= 1
		if k > 0 {
			base = product(base, base)
		}
	}

	return result, nil
}
