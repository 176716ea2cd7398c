// Package binrel is an in-memory toolkit for finite binary relations: build
// them as boolean matrices, combine and close them, and classify them into
// the order-theoretic families (equivalences, partial, linear and strict
// orders, tournaments, …).
//
// Layout:
//
//   - relation     – the library: Matrix/Dense, set algebra, closures,
//     predicates, Classify, extremal elements, cycles.
//   - cmd/relclass – command-line front end over relation.
//   - examples     – runnable scenarios (dependency ordering, role hierarchy).
//
// Quick start:
//
//	a, _ := relation.FromInts([][]int{{0, 1}, {0, 0}})
//	tc, _ := relation.TransitiveClosure(a)
//	props, _ := relation.Classify(ctx, tc, relation.WithAcyclicity())
//	fmt.Println(props) // anti-reflexive, asymmetric, …
package binrel
