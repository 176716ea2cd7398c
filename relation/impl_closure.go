// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Closure operators: the smallest superset of R satisfying reflexivity,
//     symmetry, transitivity, or a combination of them.
//   - Transitive closure is Warshall's boolean specialization of the
//     Floyd–Warshall fixed point, with the same fixed k → i → j loop order.
//
// Contract:
//   - Input is never mutated; each closure clones it first.
//   - The result satisfies the predicate it names and contains every true
//     cell of the input.

package relation

// Operation names for unified error wrapping.
const (
	opReflexiveClosure           = "ReflexiveClosure"
	opSymmetricClosure           = "SymmetricClosure"
	opTransitiveClosure          = "TransitiveClosure"
	opReflexiveTransitiveClosure = "ReflexiveTransitiveClosure"
	opEquivalenceClosure         = "EquivalenceClosure"
	opReflexiveReduction         = "ReflexiveReduction"
	opEquivalenceClasses         = "EquivalenceClasses"
)

// ReflexiveClosure returns R ∪ Δ: a clone of R with every diagonal cell true.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²) copy, O(n) writes.
func ReflexiveClosure(a Matrix) (*Dense, error) {
	d, err := squareDense(opReflexiveClosure, a)
	if err != nil {
		return nil, err
	}
	out := d.cloneDense()
	reflexiveInPlace(out)

	return out, nil
}

// SymmetricClosure returns R ∪ R⁻¹: for every true (i,j), (j,i) is forced true.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func SymmetricClosure(a Matrix) (*Dense, error) {
	d, err := squareDense(opSymmetricClosure, a)
	if err != nil {
		return nil, err
	}
	out := d.cloneDense()
	symmetricInPlace(out)

	return out, nil
}

// TransitiveClosure returns R⁺, the smallest transitive relation containing R.
// MAIN DESCRIPTION:
//   - Warshall fixed point: R[i,j] ← R[i,j] ∨ (R[i,k] ∧ R[k,j]).
//
// Implementation:
//   - Stage 1: validate (nil → square) and clone.
//   - Stage 2: run warshallInPlace on the clone.
//
// Determinism:
//   - Loop order is fixed (k → i → j). k MUST be the outermost loop: after
//     iteration k the matrix holds every path whose intermediate nodes are in
//     {0..k}; any other nesting misses paths on some inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the result.
//
// AI-Hints:
//   - Idempotent: TransitiveClosure(TransitiveClosure(R)) == TransitiveClosure(R).
func TransitiveClosure(a Matrix) (*Dense, error) {
	d, err := squareDense(opTransitiveClosure, a)
	if err != nil {
		return nil, err
	}
	out := d.cloneDense()
	warshallInPlace(out)

	return out, nil
}

// ReflexiveTransitiveClosure returns R* = R⁺ ∪ Δ (reachability in zero or more steps).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n³).
func ReflexiveTransitiveClosure(a Matrix) (*Dense, error) {
	d, err := squareDense(opReflexiveTransitiveClosure, a)
	if err != nil {
		return nil, err
	}
	out := d.cloneDense()
	reflexiveInPlace(out)
	warshallInPlace(out)

	return out, nil
}

// EquivalenceClosure returns the smallest equivalence relation containing R:
// transitive(symmetric(reflexive(R))). Symmetry survives the transitive step,
// so the result is reflexive, symmetric and transitive.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n³).
func EquivalenceClosure(a Matrix) (*Dense, error) {
	d, err := squareDense(opEquivalenceClosure, a)
	if err != nil {
		return nil, err
	}
	out := d.cloneDense()
	reflexiveInPlace(out)
	symmetricInPlace(out)
	warshallInPlace(out)

	return out, nil
}

// ReflexiveReduction returns R \ Δ (the diagonal removed).
// Turns a partial order into its strict counterpart.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func ReflexiveReduction(a Matrix) (*Dense, error) {
	d, err := squareDense(opReflexiveReduction, a)
	if err != nil {
		return nil, err
	}
	out := d.cloneDense()
	for i := 0; i < out.r; i++ {
		out.data[i*out.r+i] = false
	}

	return out, nil
}

// EquivalenceClasses partitions {0..n-1} into the classes of an equivalence.
// Classes are ordered by their smallest member; members ascend within a class.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare,
//   - ErrNotEquivalence when R is not reflexive, symmetric and transitive.
//
// Complexity:
//   - Time O(n³) (dominated by the transitivity check), Space O(n).
func EquivalenceClasses(a Matrix) ([][]int, error) {
	d, err := squareDense(opEquivalenceClasses, a)
	if err != nil {
		return nil, err
	}
	if !(reflexive(d) && symmetric(d) && transitive(d)) {
		return nil, relationErrorf(opEquivalenceClasses, ErrNotEquivalence)
	}

	n := d.r
	assigned := make([]bool, n)
	classes := make([][]int, 0)
	var i, j int
	for i = 0; i < n; i++ {
		if assigned[i] {
			continue
		}
		// Row i of an equivalence is exactly the class of i.
		class := make([]int, 0)
		for j = 0; j < n; j++ {
			if d.data[i*n+j] {
				assigned[j] = true
				class = append(class, j)
			}
		}
		classes = append(classes, class)
	}

	return classes, nil
}

// reflexiveInPlace sets every diagonal cell of a square *Dense.
func reflexiveInPlace(d *Dense) {
	for i := 0; i < d.r; i++ {
		d.data[i*d.r+i] = true
	}
}

// symmetricInPlace mirrors every true cell across the diagonal.
// Only the strict upper triangle is visited; each pair is settled once.
func symmetricInPlace(d *Dense) {
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d.data[i*n+j] || d.data[j*n+i] {
				d.data[i*n+j] = true
				d.data[j*n+i] = true
			}
		}
	}
}

// warshallInPlace runs the boolean transitive-closure fixed point on a
// square *Dense in place.
//
// Loop order is fixed (k → i → j); k outermost is required for correctness.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func warshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets for K and I in the flat buffer
	)

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source vertex i
			baseI = i * n
			if !data[baseI+k] { // i cannot reach k,
				continue // so no path via k can add i→j
			}
			for j = 0; j < n; j++ { // inner: destination vertex j
				if data[baseK+j] {
					data[baseI+j] = true
				}
			}
		}
	}
}
