// SPDX-License-Identifier: MIT
package relation_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/binrel/relation"
)

// ExampleTransitiveClosure closes a three-element chain.
func ExampleTransitiveClosure() {
	a, _ := relation.FromInts([][]int{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	tc, _ := relation.TransitiveClosure(a)
	fmt.Print(tc)

	// Output:
	// [0, 1, 1]
	// [0, 0, 1]
	// [0, 0, 0]
}

// ExampleClassify lists every property of ≤ on {0,1,2}.
func ExampleClassify() {
	le, _ := relation.FromInts([][]int{
		{1, 1, 1},
		{0, 1, 1},
		{0, 0, 1},
	})
	props, _ := relation.Classify(context.Background(), le, relation.WithAcyclicity())
	fmt.Println(props.Holds(relation.PropLinearOrder))
	fmt.Println(props.Holds(relation.PropAcyclic))

	// Output:
	// true
	// false
}

// ExampleNarrow contrasts the resizing and size-preserving restrictions.
func ExampleNarrow() {
	full, _ := relation.Full(3)

	small, _ := relation.Narrow(full, []int{1, 3})
	fmt.Print(small)

	kept, _ := relation.NarrowPreserve(full, []int{1, 3})
	fmt.Print(kept)

	// Output:
	// [1, 1]
	// [1, 1]
	// [1, 0, 1]
	// [0, 0, 0]
	// [1, 0, 1]
}

// ExampleEquivalenceClasses partitions a set by an equivalence closure.
func ExampleEquivalenceClasses() {
	a, _ := relation.FromInts([][]int{
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 0},
	})
	eq, _ := relation.EquivalenceClosure(a)
	classes, _ := relation.EquivalenceClasses(eq)
	fmt.Println(classes)

	// Output:
	// [[0 2] [1 3]]
}

// ExampleFindCycle reports a closed walk through the graph of a relation.
func ExampleFindCycle() {
	a, _ := relation.FromInts([][]int{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	cycle, _ := relation.FindCycle(a)
	fmt.Println(cycle)

	// Output:
	// [0 1 2 0]
}
