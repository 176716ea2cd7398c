// Package relation implements the algebra and classification of binary
// relations over finite sets {0, …, n-1}, stored as square boolean matrices.
//
// The relation package provides:
//
//   - Matrix, the interface every operation accepts, and *Dense, the
//     row-major implementation every operation returns.
//   - Set algebra (Intersection, Union, Difference, SymmetricDifference),
//     composition (Product, Power) and single-relation transforms
//     (Complement, Reverse, Dual, Narrow, NarrowPreserve, NarrowRange).
//   - Closures (reflexive, symmetric, transitive via Warshall, and their
//     combinations) and EquivalenceClasses.
//   - Eleven primitive predicates (IsReflexive … IsAntiDiagonal), the derived
//     order-theoretic classes built from them (IsEquivalence, IsPartialOrder,
//     IsStrictLinearOrder, …), and Classify, which computes all of them with
//     one scan per primitive, optionally on several goroutines.
//   - Extremal elements (Maxima, Minima, Majorants, Minorants) and graph
//     views: IsAcyclic, FindCycle, TopologicalOrder, Successors, Predecessors.
//   - Random, a reproducible generator driven by a caller-supplied *rand.Rand.
//
// Every operation validates its inputs and reports failures as wrapped
// sentinel errors (ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, …) that
// callers match with errors.Is. Inputs are never mutated; results are fresh
// *Dense values.
//
// Dense relations cost O(n²) memory; transitive closure, Product and the
// transitivity predicates are O(n³). See the examples for usage patterns.
package relation
