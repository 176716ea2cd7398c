// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Single-relation transforms: Complement, Reverse (converse), Dual and
//     the three narrowing variants.
//
// Narrowing policies (one policy per named operation):
//   - Narrow:         RESIZE.   k×k output over the sorted, de-duplicated positions.
//   - NarrowPreserve: PRESERVE. n×n output; cells touching an element outside
//     the position set are forced false.
//   - NarrowRange:    PRESERVE over the contiguous 1-based range [from, to].
//
// All positions accepted by the narrowing family are 1-based element numbers.

package relation

// Operation names for unified error wrapping.
const (
	opComplement     = "Complement"
	opReverse        = "Reverse"
	opDual           = "Dual"
	opNarrow         = "Narrow"
	opNarrowPreserve = "NarrowPreserve"
	opNarrowRange    = "NarrowRange"
)

// Complement returns ¬R: out[i,j] = ¬a[i,j].
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func Complement(a Matrix) (*Dense, error) {
	d, err := squareDense(opComplement, a)
	if err != nil {
		return nil, err
	}

	return complement(d), nil
}

// complement is the unchecked kernel behind Complement.
func complement(d *Dense) *Dense {
	out := newDense(d.r, d.c)
	for k, v := range d.data {
		out.data[k] = !v
	}

	return out
}

// Reverse returns the converse relation R⁻¹ (the transpose): out[j,i] = a[i,j].
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func Reverse(a Matrix) (*Dense, error) {
	d, err := squareDense(opReverse, a)
	if err != nil {
		return nil, err
	}

	return d.Transpose(), nil
}

// Dual returns the dual relation: out[j,i] = ¬a[i,j].
// Bit-for-bit equal to Reverse(Complement(a)) and Complement(Reverse(a)),
// computed in a single pass without the intermediate matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func Dual(a Matrix) (*Dense, error) {
	d, err := squareDense(opDual, a)
	if err != nil {
		return nil, err
	}

	n := d.r
	out := newDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			out.data[j*n+i] = !d.data[base+j]
		}
	}

	return out, nil
}

// Narrow restricts R to the given elements and RESIZES the result.
// MAIN DESCRIPTION:
//   - Output order equals the number of distinct positions; cell (p,q) of the
//     output is a[pos[p]-1, pos[q]-1] with pos sorted ascending.
//
// Inputs:
//   - positions: 1-based element numbers in [1, n]; order and duplicates are ignored.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (shape), ErrOutOfRange (empty list or bad position).
//
// Complexity:
//   - Time O(k log k + k²), Space O(k²) for k distinct positions.
//
// AI-Hints:
//   - Use NarrowPreserve instead when the result must stay comparable
//     (same order) with the input, e.g. for Intersection/Union afterwards.
func Narrow(a Matrix, positions []int) (*Dense, error) {
	d, err := squareDense(opNarrow, a)
	if err != nil {
		return nil, err
	}
	idx, err := normalizePositions(d.r, positions)
	if err != nil {
		return nil, relationErrorf(opNarrow, err)
	}

	n, k := d.r, len(idx)
	out := newDense(k, k)
	var p, q int
	for p = 0; p < k; p++ {
		src := idx[p] * n
		for q = 0; q < k; q++ {
			out.data[p*k+q] = d.data[src+idx[q]]
		}
	}

	return out, nil
}

// NarrowPreserve restricts R to the given elements keeping the order n.
// Cells whose row or column is outside the set become false; cells inside
// keep their value.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange (empty list or position outside [1, n]).
//
// Complexity:
//   - Time O(n² + k log k), Space O(n²).
func NarrowPreserve(a Matrix, positions []int) (*Dense, error) {
	d, err := squareDense(opNarrowPreserve, a)
	if err != nil {
		return nil, err
	}
	idx, err := normalizePositions(d.r, positions)
	if err != nil {
		return nil, relationErrorf(opNarrowPreserve, err)
	}

	keep := make([]bool, d.r)
	for _, i := range idx {
		keep[i] = true
	}

	return narrowMask(d, keep), nil
}

// NarrowRange is NarrowPreserve over the contiguous 1-based range [from, to].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare,
//   - ErrOutOfRange when from > to or either bound is outside [1, n].
//
// Complexity: O(n²).
func NarrowRange(a Matrix, from, to int) (*Dense, error) {
	d, err := squareDense(opNarrowRange, a)
	if err != nil {
		return nil, err
	}
	if from > to || from < 1 || to > d.r {
		return nil, relationErrorf(opNarrowRange, ErrOutOfRange)
	}

	keep := make([]bool, d.r)
	for i := from - 1; i < to; i++ {
		keep[i] = true
	}

	return narrowMask(d, keep), nil
}

// narrowMask zeroes every cell whose row or column is not kept.
func narrowMask(d *Dense, keep []bool) *Dense {
	n := d.r
	out := newDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		if !keep[i] {
			continue // whole row stays false
		}
		base := i * n
		for j = 0; j < n; j++ {
			out.data[base+j] = keep[j] && d.data[base+j]
		}
	}

	return out
}
