// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Extremal elements of a relation over {0..n-1}:
//     Maxima    i with a[i,j] for every j   (i is related to everything),
//     Minima    i with a[j,i] for every j   (everything is related to i),
//     Majorants i with no j such that a[j,i] (nothing dominates i),
//     Minorants i with no j such that a[i,j] (i dominates nothing).
//
// Contract:
//   - Results ascend, hold no duplicates and are never nil (possibly empty).
//   - Has* queries stop at the first qualifying index.

package relation

// extremalRule decides whether index i qualifies in a square *Dense.
type extremalRule func(d *Dense, i int) bool

// rowAll reports a[i,j] == want for every j.
func rowAll(d *Dense, i int, want bool) bool {
	base := i * d.r
	for j := 0; j < d.r; j++ {
		if d.data[base+j] != want {
			return false
		}
	}

	return true
}

// colAll reports a[j,i] == want for every j.
func colAll(d *Dense, i int, want bool) bool {
	for j := 0; j < d.r; j++ {
		if d.data[j*d.r+i] != want {
			return false
		}
	}

	return true
}

func isMaximum(d *Dense, i int) bool  { return rowAll(d, i, true) }
func isMinimum(d *Dense, i int) bool  { return colAll(d, i, true) }
func isMajorant(d *Dense, i int) bool { return colAll(d, i, false) }
func isMinorant(d *Dense, i int) bool { return rowAll(d, i, false) }

// collect validates a and returns every index satisfying rule, ascending.
// Complexity: O(n²).
func collect(op string, a Matrix, rule extremalRule) ([]int, error) {
	d, err := squareDense(op, a)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0)
	for i := 0; i < d.r; i++ {
		if rule(d, i) {
			out = append(out, i)
		}
	}

	return out, nil
}

// exists validates a and reports whether any index satisfies rule.
// Complexity: O(n²) worst case; stops at the first hit.
func exists(op string, a Matrix, rule extremalRule) (bool, error) {
	d, err := squareDense(op, a)
	if err != nil {
		return false, err
	}
	for i := 0; i < d.r; i++ {
		if rule(d, i) {
			return true, nil
		}
	}

	return false, nil
}

// Maxima returns every i with a[i,j] for all j.
// Errors: ErrNilMatrix, ErrNonSquare.
func Maxima(a Matrix) ([]int, error) { return collect("Maxima", a, isMaximum) }

// Minima returns every i with a[j,i] for all j.
// Errors: ErrNilMatrix, ErrNonSquare.
func Minima(a Matrix) ([]int, error) { return collect("Minima", a, isMinimum) }

// Majorants returns every i that no element is related to (empty column i).
// Errors: ErrNilMatrix, ErrNonSquare.
func Majorants(a Matrix) ([]int, error) { return collect("Majorants", a, isMajorant) }

// Minorants returns every i related to no element (empty row i).
// Errors: ErrNilMatrix, ErrNonSquare.
func Minorants(a Matrix) ([]int, error) { return collect("Minorants", a, isMinorant) }

// HasMaximum reports whether Maxima is non-empty.
func HasMaximum(a Matrix) (bool, error) { return exists("HasMaximum", a, isMaximum) }

// HasMinimum reports whether Minima is non-empty.
func HasMinimum(a Matrix) (bool, error) { return exists("HasMinimum", a, isMinimum) }

// HasMajorant reports whether Majorants is non-empty.
func HasMajorant(a Matrix) (bool, error) { return exists("HasMajorant", a, isMajorant) }

// HasMinorant reports whether Minorants is non-empty.
func HasMinorant(a Matrix) (bool, error) { return exists("HasMinorant", a, isMinorant) }
