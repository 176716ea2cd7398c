// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Named order-theoretic classes expressed as conjunctions (and negations)
//     of the primitive predicates in predicates.go.
//
// Contract:
//   - Components are evaluated left to right; the first false one ends the
//     evaluation. Use Classify to compute every class with one scan per primitive.

package relation

// all is the conjunction of kernels, short-circuiting on the first false one.
func all(ps ...predicate) predicate {
	return func(d *Dense) bool {
		for _, p := range ps {
			if !p(d) {
				return false
			}
		}

		return true
	}
}

// not negates a kernel.
func not(p predicate) predicate {
	return func(d *Dense) bool { return !p(d) }
}

// Derived kernels behind the public predicates.
var (
	equivalence        = all(reflexive, symmetric, transitive)
	partialEquivalence = all(symmetric, transitive)
	preOrder           = all(reflexive, transitive)
	strictPreOrder     = all(antiReflexive, transitive)
	partialOrder       = all(reflexive, antiSymmetric, transitive)
	strictOrder        = all(antiReflexive, antiSymmetric, transitive)
	linearOrder        = all(partialOrder, connex)
	totalOrder         = all(reflexive, transitive, connex)
	strictPartialOrder = all(antiReflexive, asymmetric, transitive)
	strictLinearOrder  = all(strictPartialOrder, connex)
	tournament         = all(antiReflexive, asymmetric)
	dependency         = all(reflexive, symmetric)
	nonTransitive      = all(not(transitive), not(negativeTransitive))
	nonSymmetric       = all(not(symmetric), not(antiSymmetric))
)

// IsEquivalence reports Reflexive ∧ Symmetric ∧ Transitive.
func IsEquivalence(a Matrix) (bool, error) { return check("IsEquivalence", a, equivalence) }

// IsPartialEquivalence reports Symmetric ∧ Transitive.
func IsPartialEquivalence(a Matrix) (bool, error) {
	return check("IsPartialEquivalence", a, partialEquivalence)
}

// IsPreOrder reports Reflexive ∧ Transitive.
func IsPreOrder(a Matrix) (bool, error) { return check("IsPreOrder", a, preOrder) }

// IsQuasiOrder is an alias of IsPreOrder.
func IsQuasiOrder(a Matrix) (bool, error) { return check("IsQuasiOrder", a, preOrder) }

// IsStrictPreOrder reports AntiReflexive ∧ Transitive.
func IsStrictPreOrder(a Matrix) (bool, error) { return check("IsStrictPreOrder", a, strictPreOrder) }

// IsPartialOrder reports Reflexive ∧ AntiSymmetric ∧ Transitive.
func IsPartialOrder(a Matrix) (bool, error) { return check("IsPartialOrder", a, partialOrder) }

// IsNonStrictOrder is an alias of IsPartialOrder.
func IsNonStrictOrder(a Matrix) (bool, error) { return check("IsNonStrictOrder", a, partialOrder) }

// IsStrictOrder reports AntiReflexive ∧ AntiSymmetric ∧ Transitive.
func IsStrictOrder(a Matrix) (bool, error) { return check("IsStrictOrder", a, strictOrder) }

// IsLinearOrder reports PartialOrder ∧ Connex.
func IsLinearOrder(a Matrix) (bool, error) { return check("IsLinearOrder", a, linearOrder) }

// IsTotalOrder reports Reflexive ∧ Transitive ∧ Connex.
func IsTotalOrder(a Matrix) (bool, error) { return check("IsTotalOrder", a, totalOrder) }

// IsStrictPartialOrder reports AntiReflexive ∧ Asymmetric ∧ Transitive.
func IsStrictPartialOrder(a Matrix) (bool, error) {
	return check("IsStrictPartialOrder", a, strictPartialOrder)
}

// IsStrictLinearOrder reports StrictPartialOrder ∧ Connex.
func IsStrictLinearOrder(a Matrix) (bool, error) {
	return check("IsStrictLinearOrder", a, strictLinearOrder)
}

// IsTournament reports AntiReflexive ∧ Asymmetric.
func IsTournament(a Matrix) (bool, error) { return check("IsTournament", a, tournament) }

// IsDependency reports Reflexive ∧ Symmetric.
func IsDependency(a Matrix) (bool, error) { return check("IsDependency", a, dependency) }

// IsNonTransitive reports ¬Transitive ∧ ¬NegativeTransitive.
func IsNonTransitive(a Matrix) (bool, error) { return check("IsNonTransitive", a, nonTransitive) }

// IsNonSymmetric reports ¬Symmetric ∧ ¬AntiSymmetric.
func IsNonSymmetric(a Matrix) (bool, error) { return check("IsNonSymmetric", a, nonSymmetric) }
