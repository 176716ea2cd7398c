// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Complete classification of a relation in one call: each primitive
//     predicate is evaluated exactly once and every derived class is read
//     off the memoized primitive results.
//
// Concurrency:
//   - With WithParallel(w) the primitives run on an errgroup limited to w
//     goroutines. Each task writes its own slot of a fixed array and only
//     reads the relation, so no locking is needed.
//   - The context is checked before each predicate; cancellation surfaces
//     as the wrapped ctx.Err().

package relation

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

const opClassify = "Classify"

// Property names one primitive or derived property.
type Property int

// Properties in declaration order: primitives first, then derived classes,
// then acyclicity (evaluated only under WithAcyclicity).
const (
	PropReflexive Property = iota
	PropAntiReflexive
	PropSymmetric
	PropAsymmetric
	PropAntiSymmetric
	PropTransitive
	PropNegativeTransitive
	PropConnex
	PropTotal
	PropDiagonal
	PropAntiDiagonal

	PropEquivalence
	PropPartialEquivalence
	PropPreOrder
	PropStrictPreOrder
	PropPartialOrder
	PropStrictOrder
	PropLinearOrder
	PropTotalOrder
	PropStrictPartialOrder
	PropStrictLinearOrder
	PropTournament
	PropDependency
	PropNonTransitive
	PropNonSymmetric

	PropAcyclic

	propertyCount // sentinel; keep last
)

// primitiveCount is the number of primitive predicates (the first block above).
const primitiveCount = int(PropAntiDiagonal) + 1

var propertyNames = [propertyCount]string{
	PropReflexive:          "reflexive",
	PropAntiReflexive:      "anti-reflexive",
	PropSymmetric:          "symmetric",
	PropAsymmetric:         "asymmetric",
	PropAntiSymmetric:      "anti-symmetric",
	PropTransitive:         "transitive",
	PropNegativeTransitive: "negative-transitive",
	PropConnex:             "connex",
	PropTotal:              "total",
	PropDiagonal:           "diagonal",
	PropAntiDiagonal:       "anti-diagonal",
	PropEquivalence:        "equivalence",
	PropPartialEquivalence: "partial-equivalence",
	PropPreOrder:           "pre-order",
	PropStrictPreOrder:     "strict-pre-order",
	PropPartialOrder:       "partial-order",
	PropStrictOrder:        "strict-order",
	PropLinearOrder:        "linear-order",
	PropTotalOrder:         "total-order",
	PropStrictPartialOrder: "strict-partial-order",
	PropStrictLinearOrder:  "strict-linear-order",
	PropTournament:         "tournament",
	PropDependency:         "dependency",
	PropNonTransitive:      "non-transitive",
	PropNonSymmetric:       "non-symmetric",
	PropAcyclic:            "acyclic",
}

// String returns the kebab-case name of p, or "unknown" when out of range.
func (p Property) String() string {
	if p < 0 || p >= propertyCount {
		return "unknown"
	}

	return propertyNames[p]
}

// primitiveKernels maps each primitive Property to its kernel.
var primitiveKernels = [primitiveCount]predicate{
	PropReflexive:          reflexive,
	PropAntiReflexive:      antiReflexive,
	PropSymmetric:          symmetric,
	PropAsymmetric:         asymmetric,
	PropAntiSymmetric:      antiSymmetric,
	PropTransitive:         transitive,
	PropNegativeTransitive: negativeTransitive,
	PropConnex:             connex,
	PropTotal:              total,
	PropDiagonal:           diagonal,
	PropAntiDiagonal:       antiDiagonal,
}

// Properties is the full classification of one relation.
type Properties struct {
	// Order of the classified relation.
	Size int

	// Primitive properties.
	Reflexive          bool
	AntiReflexive      bool
	Symmetric          bool
	Asymmetric         bool
	AntiSymmetric      bool
	Transitive         bool
	NegativeTransitive bool
	Connex             bool
	Total              bool
	Diagonal           bool
	AntiDiagonal       bool

	// Derived classes.
	Equivalence        bool
	PartialEquivalence bool
	PreOrder           bool
	StrictPreOrder     bool
	PartialOrder       bool
	StrictOrder        bool
	LinearOrder        bool
	TotalOrder         bool
	StrictPartialOrder bool
	StrictLinearOrder  bool
	Tournament         bool
	Dependency         bool
	NonTransitive      bool
	NonSymmetric       bool

	// Acyclic is meaningful only when AcyclicityChecked is true.
	Acyclic           bool
	AcyclicityChecked bool
}

// values lays the properties out in Property order.
func (p Properties) values() [propertyCount]bool {
	return [propertyCount]bool{
		PropReflexive:          p.Reflexive,
		PropAntiReflexive:      p.AntiReflexive,
		PropSymmetric:          p.Symmetric,
		PropAsymmetric:         p.Asymmetric,
		PropAntiSymmetric:      p.AntiSymmetric,
		PropTransitive:         p.Transitive,
		PropNegativeTransitive: p.NegativeTransitive,
		PropConnex:             p.Connex,
		PropTotal:              p.Total,
		PropDiagonal:           p.Diagonal,
		PropAntiDiagonal:       p.AntiDiagonal,
		PropEquivalence:        p.Equivalence,
		PropPartialEquivalence: p.PartialEquivalence,
		PropPreOrder:           p.PreOrder,
		PropStrictPreOrder:     p.StrictPreOrder,
		PropPartialOrder:       p.PartialOrder,
		PropStrictOrder:        p.StrictOrder,
		PropLinearOrder:        p.LinearOrder,
		PropTotalOrder:         p.TotalOrder,
		PropStrictPartialOrder: p.StrictPartialOrder,
		PropStrictLinearOrder:  p.StrictLinearOrder,
		PropTournament:         p.Tournament,
		PropDependency:         p.Dependency,
		PropNonTransitive:      p.NonTransitive,
		PropNonSymmetric:       p.NonSymmetric,
		PropAcyclic:            p.AcyclicityChecked && p.Acyclic,
	}
}

// Holds reports whether property q holds. Unknown properties never hold,
// and PropAcyclic holds only when acyclicity was checked.
func (p Properties) Holds(q Property) bool {
	if q < 0 || q >= propertyCount {
		return false
	}

	return p.values()[q]
}

// Names returns the names of every held property in declaration order.
func (p Properties) Names() []string {
	vals := p.values()
	out := make([]string, 0, propertyCount)
	for q := Property(0); q < propertyCount; q++ {
		if vals[q] {
			out = append(out, q.String())
		}
	}

	return out
}

// String joins Names with ", ".
func (p Properties) String() string {
	return strings.Join(p.Names(), ", ")
}

// Classify computes every primitive and derived property of a.
// MAIN DESCRIPTION:
//   - One scan per primitive predicate; derived classes are combined from
//     the memoized primitives, matching the Is* functions bit for bit.
//
// Implementation:
//   - Stage 1: validate (nil → square), resolve options.
//   - Stage 2: evaluate primitives (sequentially, or on an errgroup).
//   - Stage 3: derive classes; optionally run the cycle walker.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; ctx.Err() when the context ends first.
//
// Complexity:
//   - Time O(n³) (two transitivity scans), Space O(n) beyond the input.
//
// AI-Hints:
//   - A nil ctx is treated as context.Background().
func Classify(ctx context.Context, a Matrix, opts ...Option) (Properties, error) {
	d, err := squareDense(opClassify, a)
	if err != nil {
		return Properties{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts...)

	var prim [primitiveCount]bool
	var acyclic bool
	if o.workers == 1 {
		err = classifySequential(ctx, d, o, &prim, &acyclic)
	} else {
		err = classifyParallel(ctx, d, o, &prim, &acyclic)
	}
	if err != nil {
		return Properties{}, relationErrorf(opClassify, err)
	}

	return derive(d.r, prim, o.acyclicity, acyclic), nil
}

// classifySequential evaluates the primitives in Property order.
func classifySequential(ctx context.Context, d *Dense, o Options, prim *[primitiveCount]bool, acyclic *bool) error {
	for k, p := range primitiveKernels {
		if err := ctx.Err(); err != nil {
			return err
		}
		prim[k] = p(d)
	}
	if o.acyclicity {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, found := newCycleWalker(d).run()
		*acyclic = !found
	}

	return nil
}

// classifyParallel fans the primitives out on an errgroup limited to o.workers.
func classifyParallel(ctx context.Context, d *Dense, o Options, prim *[primitiveCount]bool, acyclic *bool) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for k, p := range primitiveKernels {
		k, p := k, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			prim[k] = p(d) // distinct slot per task
			return nil
		})
	}
	if o.acyclicity {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, found := newCycleWalker(d).run()
			*acyclic = !found
			return nil
		})
	}

	return g.Wait()
}

// derive combines memoized primitives into the full Properties value.
// Formulas are the ones of derived.go.
func derive(n int, prim [primitiveCount]bool, checked, acyclic bool) Properties {
	p := Properties{
		Size:               n,
		Reflexive:          prim[PropReflexive],
		AntiReflexive:      prim[PropAntiReflexive],
		Symmetric:          prim[PropSymmetric],
		Asymmetric:         prim[PropAsymmetric],
		AntiSymmetric:      prim[PropAntiSymmetric],
		Transitive:         prim[PropTransitive],
		NegativeTransitive: prim[PropNegativeTransitive],
		Connex:             prim[PropConnex],
		Total:              prim[PropTotal],
		Diagonal:           prim[PropDiagonal],
		AntiDiagonal:       prim[PropAntiDiagonal],
		AcyclicityChecked:  checked,
		Acyclic:            checked && acyclic,
	}

	p.Equivalence = p.Reflexive && p.Symmetric && p.Transitive
	p.PartialEquivalence = p.Symmetric && p.Transitive
	p.PreOrder = p.Reflexive && p.Transitive
	p.StrictPreOrder = p.AntiReflexive && p.Transitive
	p.PartialOrder = p.Reflexive && p.AntiSymmetric && p.Transitive
	p.StrictOrder = p.AntiReflexive && p.AntiSymmetric && p.Transitive
	p.LinearOrder = p.PartialOrder && p.Connex
	p.TotalOrder = p.Reflexive && p.Transitive && p.Connex
	p.StrictPartialOrder = p.AntiReflexive && p.Asymmetric && p.Transitive
	p.StrictLinearOrder = p.StrictPartialOrder && p.Connex
	p.Tournament = p.AntiReflexive && p.Asymmetric
	p.Dependency = p.Reflexive && p.Symmetric
	p.NonTransitive = !p.Transitive && !p.NegativeTransitive
	p.NonSymmetric = !p.Symmetric && !p.AntiSymmetric

	return p
}
