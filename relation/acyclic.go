// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Cycle analysis of the directed graph induced by a relation, where
//     a[i,j] is the edge i → j: IsAcyclic, FindCycle, TopologicalOrder,
//     and the Successors/Predecessors node lookups.
//
// Algorithm:
//   - Depth-first search with three-color marking. Gray marks the nodes on
//     the current path; reaching a Gray node again closes a cycle. Black
//     marks nodes whose whole reachable subgraph is known acyclic, so they
//     are never explored twice. A node reached twice through different
//     non-cyclic paths is Black, not Gray, and is not a cycle.
//   - The traversal is iterative (explicit frame stack, one child cursor per
//     frame) so deep chains never hit the goroutine stack limit.
//   - Every node is used as a start, so all components are checked.
//   - A self-loop a[i,i] is a cycle of length one.
//
// Complexity:
//   - Time O(n²) on the dense matrix (each node expanded once, each row scanned once).
//   - Memory O(n).

package relation

// Visitation states of the cycle walker.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored, no cycle reachable from here
)

// Operation names for unified error wrapping.
const (
	opIsAcyclic        = "IsAcyclic"
	opFindCycle        = "FindCycle"
	opTopologicalOrder = "TopologicalOrder"
	opSuccessors       = "Successors"
	opPredecessors     = "Predecessors"
)

// cycleWalker holds the state of one iterative DFS over a square *Dense.
type cycleWalker struct {
	d     *Dense
	state []int // per-node color
	path  []int // current DFS path (Gray nodes, root first)
	next  []int // per-frame cursor: next column to inspect in path[f]'s row
	order []int // post-order of finished (Black) nodes
}

// newCycleWalker allocates the walker state for d.
func newCycleWalker(d *Dense) *cycleWalker {
	return &cycleWalker{
		d:     d,
		state: make([]int, d.r),
		path:  make([]int, 0, d.r),
		next:  make([]int, 0, d.r),
		order: make([]int, 0, d.r),
	}
}

// push marks u Gray and opens a frame for it.
func (w *cycleWalker) push(u int) {
	w.state[u] = gray
	w.path = append(w.path, u)
	w.next = append(w.next, 0)
}

// visit explores everything reachable from start.
// Returns (v, true) when an edge into the Gray node v closes a cycle; the
// cycle is path[index of v:] at that moment. Returns (0, false) otherwise.
func (w *cycleWalker) visit(start int) (int, bool) {
	n := w.d.r
	data := w.d.data
	w.push(start)

	for len(w.path) > 0 {
		top := len(w.path) - 1
		u := w.path[top]
		base := u * n
		descended := false

		for w.next[top] < n {
			v := w.next[top]
			w.next[top]++
			if !data[base+v] {
				continue
			}
			switch w.state[v] {
			case gray:
				return v, true // back edge u → v
			case white:
				w.push(v)
				descended = true
			}
			if descended {
				break
			}
		}
		if descended {
			continue
		}

		// Every successor of u is Black: u is finished.
		w.state[u] = black
		w.order = append(w.order, u)
		w.path = w.path[:top]
		w.next = w.next[:top]
	}

	return 0, false
}

// run starts visit from every White node in ascending order.
// Returns the closing node of the first cycle found, if any.
func (w *cycleWalker) run() (int, bool) {
	for s := 0; s < w.d.r; s++ {
		if w.state[s] != white {
			continue
		}
		if v, found := w.visit(s); found {
			return v, true
		}
	}

	return 0, false
}

// IsAcyclic reports whether the directed graph of a has no cycle.
// MAIN DESCRIPTION:
//   - Equivalent to "the transitive closure of a is anti-reflexive".
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n).
func IsAcyclic(a Matrix) (bool, error) {
	d, err := squareDense(opIsAcyclic, a)
	if err != nil {
		return false, err
	}
	_, found := newCycleWalker(d).run()

	return !found, nil
}

// FindCycle returns one cycle of a as a closed node sequence [v0, …, vk, v0],
// or nil when a is acyclic. Every consecutive pair is a true cell of a.
// A self-loop on v is reported as [v, v].
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n²), Space O(n).
func FindCycle(a Matrix) ([]int, error) {
	d, err := squareDense(opFindCycle, a)
	if err != nil {
		return nil, err
	}

	w := newCycleWalker(d)
	v, found := w.run()
	if !found {
		return nil, nil
	}

	idx := len(w.path) - 1
	for w.path[idx] != v {
		idx--
	}
	cycle := make([]int, 0, len(w.path)-idx+1)
	cycle = append(cycle, w.path[idx:]...)
	cycle = append(cycle, v)

	return cycle, nil
}

// TopologicalOrder returns the nodes of an acyclic relation ordered so that
// every edge i → j (i ≠ j) has i before j: the reverse DFS post-order with
// starts and successors taken in ascending index order (deterministic).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrCycleDetected.
// Complexity: Time O(n²), Space O(n).
func TopologicalOrder(a Matrix) ([]int, error) {
	d, err := squareDense(opTopologicalOrder, a)
	if err != nil {
		return nil, err
	}

	w := newCycleWalker(d)
	if _, found := w.run(); found {
		return nil, relationErrorf(opTopologicalOrder, ErrCycleDetected)
	}

	order := w.order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// Successors returns every j with a[node, j], ascending (outgoing edges of node).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange (node outside [0, n)).
// Complexity: O(n).
func Successors(a Matrix, node int) ([]int, error) {
	if err := ValidateNode(a, node); err != nil {
		return nil, relationErrorf(opSuccessors, err)
	}
	d, err := asDense(a)
	if err != nil {
		return nil, relationErrorf(opSuccessors, err)
	}

	out := make([]int, 0)
	base := node * d.r
	for j := 0; j < d.r; j++ {
		if d.data[base+j] {
			out = append(out, j)
		}
	}

	return out, nil
}

// Predecessors returns every i with a[i, node], ascending (incoming edges of node).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange (node outside [0, n)).
// Complexity: O(n).
func Predecessors(a Matrix, node int) ([]int, error) {
	if err := ValidateNode(a, node); err != nil {
		return nil, relationErrorf(opPredecessors, err)
	}
	d, err := asDense(a)
	if err != nil {
		return nil, relationErrorf(opPredecessors, err)
	}

	out := make([]int, 0)
	for i := 0; i < d.r; i++ {
		if d.data[i*d.r+node] {
			out = append(out, i)
		}
	}

	return out, nil
}
