// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Primitive property predicates: the eleven atomic tests every derived
//     order-theoretic class is built from.
//
// Contract:
//   - Pure: the input is only read.
//   - Every kernel returns on the first falsifying cell or pair.
//   - Pair predicates (symmetric, asymmetric, anti-symmetric, connex) look
//     at i≠j only and scan the strict upper triangle once.
//   - A 0×0 relation satisfies every predicate vacuously.

package relation

// predicate is an unchecked kernel over a validated square *Dense.
type predicate func(d *Dense) bool

// check validates a, then evaluates p on its dense view.
func check(op string, a Matrix, p predicate) (bool, error) {
	d, err := squareDense(op, a)
	if err != nil {
		return false, err
	}

	return p(d), nil
}

// IsReflexive reports ∀i: a[i,i]. Complexity: O(n).
func IsReflexive(a Matrix) (bool, error) { return check("IsReflexive", a, reflexive) }

// IsAntiReflexive reports ∀i: ¬a[i,i] (irreflexive). Complexity: O(n).
func IsAntiReflexive(a Matrix) (bool, error) { return check("IsAntiReflexive", a, antiReflexive) }

// IsSymmetric reports ∀i≠j: a[i,j] = a[j,i]. Complexity: O(n²).
func IsSymmetric(a Matrix) (bool, error) { return check("IsSymmetric", a, symmetric) }

// IsAsymmetric reports ∀i≠j: a[i,j] ⇒ ¬a[j,i]. Complexity: O(n²).
func IsAsymmetric(a Matrix) (bool, error) { return check("IsAsymmetric", a, asymmetric) }

// IsAntiSymmetric reports ∀i≠j: a[i,j] ≠ a[j,i], i.e. every pair of distinct
// elements is related in exactly one direction. Complexity: O(n²).
func IsAntiSymmetric(a Matrix) (bool, error) { return check("IsAntiSymmetric", a, antiSymmetric) }

// IsTransitive reports ∀i,j,k: a[i,k] ∧ a[k,j] ⇒ a[i,j]. Complexity: O(n³).
func IsTransitive(a Matrix) (bool, error) { return check("IsTransitive", a, transitive) }

// IsNegativeTransitive reports IsTransitive(Complement(a)).
// The complement is never materialized. Complexity: O(n³).
func IsNegativeTransitive(a Matrix) (bool, error) {
	return check("IsNegativeTransitive", a, negativeTransitive)
}

// IsConnex reports ∀i≠j: a[i,j] ∨ a[j,i]. Complexity: O(n²).
func IsConnex(a Matrix) (bool, error) { return check("IsConnex", a, connex) }

// IsTotal reports that every cell is true (the full relation). Complexity: O(n²).
func IsTotal(a Matrix) (bool, error) { return check("IsTotal", a, total) }

// IsDiagonal reports a[i,j] = (i = j) for all i,j, i.e. a == Δ. Complexity: O(n²).
func IsDiagonal(a Matrix) (bool, error) { return check("IsDiagonal", a, diagonal) }

// IsAntiDiagonal reports a[i,j] = (i ≠ j) for all i,j, i.e. a == ¬Δ. Complexity: O(n²).
func IsAntiDiagonal(a Matrix) (bool, error) { return check("IsAntiDiagonal", a, antiDiagonal) }

// ---------- kernels ----------

func reflexive(d *Dense) bool {
	for i := 0; i < d.r; i++ {
		if !d.data[i*d.r+i] {
			return false
		}
	}

	return true
}

func antiReflexive(d *Dense) bool {
	for i := 0; i < d.r; i++ {
		if d.data[i*d.r+i] {
			return false
		}
	}

	return true
}

// pairwise evaluates ok(a[i,j], a[j,i]) over the strict upper triangle.
func pairwise(d *Dense, ok func(ij, ji bool) bool) bool {
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !ok(d.data[i*n+j], d.data[j*n+i]) {
				return false
			}
		}
	}

	return true
}

func symmetric(d *Dense) bool {
	return pairwise(d, func(ij, ji bool) bool { return ij == ji })
}

func asymmetric(d *Dense) bool {
	return pairwise(d, func(ij, ji bool) bool { return !(ij && ji) })
}

func antiSymmetric(d *Dense) bool {
	return pairwise(d, func(ij, ji bool) bool { return ij != ji })
}

func connex(d *Dense) bool {
	return pairwise(d, func(ij, ji bool) bool { return ij || ji })
}

// transitiveOver checks transitivity of the relation whose cell (i,j) is
// data[i*n+j] == want. want=false checks the complement in place.
func transitiveOver(d *Dense, want bool) bool {
	n := d.r
	data := d.data
	var i, j, k int
	for i = 0; i < n; i++ {
		baseI := i * n
		for k = 0; k < n; k++ {
			if data[baseI+k] != want {
				continue // no i→k edge, nothing to propagate
			}
			baseK := k * n
			for j = 0; j < n; j++ {
				if data[baseK+j] == want && data[baseI+j] != want {
					return false // i→k→j without i→j
				}
			}
		}
	}

	return true
}

func transitive(d *Dense) bool { return transitiveOver(d, true) }

func negativeTransitive(d *Dense) bool { return transitiveOver(d, false) }

func total(d *Dense) bool {
	for _, v := range d.data {
		if !v {
			return false
		}
	}

	return true
}

func diagonal(d *Dense) bool {
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if d.data[i*n+j] != (i == j) {
				return false
			}
		}
	}

	return true
}

func antiDiagonal(d *Dense) bool {
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if d.data[i*n+j] != (i != j) {
				return false
			}
		}
	}

	return true
}
