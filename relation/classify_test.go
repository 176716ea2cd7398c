// SPDX-License-Identifier: MIT
package relation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binrel/relation"
)

// standalone maps each Property to its single-call predicate.
var standalone = map[relation.Property]predicateFn{
	relation.PropReflexive:          relation.IsReflexive,
	relation.PropAntiReflexive:      relation.IsAntiReflexive,
	relation.PropSymmetric:          relation.IsSymmetric,
	relation.PropAsymmetric:         relation.IsAsymmetric,
	relation.PropAntiSymmetric:      relation.IsAntiSymmetric,
	relation.PropTransitive:         relation.IsTransitive,
	relation.PropNegativeTransitive: relation.IsNegativeTransitive,
	relation.PropConnex:             relation.IsConnex,
	relation.PropTotal:              relation.IsTotal,
	relation.PropDiagonal:           relation.IsDiagonal,
	relation.PropAntiDiagonal:       relation.IsAntiDiagonal,
	relation.PropEquivalence:        relation.IsEquivalence,
	relation.PropPartialEquivalence: relation.IsPartialEquivalence,
	relation.PropPreOrder:           relation.IsPreOrder,
	relation.PropStrictPreOrder:     relation.IsStrictPreOrder,
	relation.PropPartialOrder:       relation.IsPartialOrder,
	relation.PropStrictOrder:        relation.IsStrictOrder,
	relation.PropLinearOrder:        relation.IsLinearOrder,
	relation.PropTotalOrder:         relation.IsTotalOrder,
	relation.PropStrictPartialOrder: relation.IsStrictPartialOrder,
	relation.PropStrictLinearOrder:  relation.IsStrictLinearOrder,
	relation.PropTournament:         relation.IsTournament,
	relation.PropDependency:         relation.IsDependency,
	relation.PropNonTransitive:      relation.IsNonTransitive,
	relation.PropNonSymmetric:       relation.IsNonSymmetric,
	relation.PropAcyclic:            relation.IsAcyclic,
}

// classifyInputs mixes random relations with structured ones so that the
// rarer classes (orders, equivalences) actually occur.
func classifyInputs(t *testing.T) []*relation.Dense {
	t.Helper()
	out := []*relation.Dense{
		mustRel(t, [][]int{{1, 1, 1}, {0, 1, 1}, {0, 0, 1}}),
		mustRel(t, [][]int{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}}),
		mustRel(t, [][]int{{1, 0, 1}, {0, 1, 0}, {1, 0, 1}}),
		mustRel(t, [][]int{{0, 1, 1}, {1, 0, 0}, {0, 0, 0}}),
		mustRel(t, [][]int{}),
	}
	for _, seed := range propertySeeds {
		out = append(out, mustRandom(t, 6, 0.5, seed), mustRandom(t, 6, 0.15, seed))
	}

	return out
}

func TestClassify_MatchesStandalonePredicates(t *testing.T) {
	t.Parallel()

	for idx, a := range classifyInputs(t) {
		props, err := relation.Classify(context.Background(), a, relation.WithAcyclicity())
		require.NoError(t, err)
		assert.Equal(t, a.Rows(), props.Size)
		assert.True(t, props.AcyclicityChecked)

		for p, pred := range standalone {
			want, err := pred(a)
			require.NoError(t, err)
			assert.Equal(t, want, props.Holds(p), "input %d: %s", idx, p)
		}
	}
}

func TestClassify_ParallelEqualsSequential(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for _, a := range classifyInputs(t) {
		seq, err := relation.Classify(ctx, a, relation.WithAcyclicity())
		require.NoError(t, err)
		for _, w := range []int{2, 4, 32} {
			par, err := relation.Classify(ctx, hide{a}, relation.WithParallel(w), relation.WithAcyclicity())
			require.NoError(t, err)
			assert.Equal(t, seq, par, "workers=%d", w)
		}
	}
}

func TestClassify_AcyclicityOptIn(t *testing.T) {
	t.Parallel()

	chain := mustRel(t, [][]int{{0, 1}, {0, 0}})
	props, err := relation.Classify(context.Background(), chain)
	require.NoError(t, err)
	assert.False(t, props.AcyclicityChecked)
	assert.False(t, props.Holds(relation.PropAcyclic), "unchecked acyclicity never holds")
	assert.NotContains(t, props.Names(), "acyclic")

	props, err = relation.Classify(context.Background(), chain, relation.WithAcyclicity())
	require.NoError(t, err)
	assert.True(t, props.Holds(relation.PropAcyclic))
	assert.Contains(t, props.Names(), "acyclic")
}

func TestClassify_NamesAndString(t *testing.T) {
	t.Parallel()

	lessEq := mustRel(t, [][]int{{1, 1}, {0, 1}})
	props, err := relation.Classify(context.TODO(), lessEq)
	require.NoError(t, err)

	// pair predicates ignore the diagonal, so ≤ on two elements is also asymmetric
	want := []string{
		"reflexive", "asymmetric", "anti-symmetric", "transitive", "negative-transitive", "connex",
		"pre-order", "partial-order", "linear-order", "total-order",
	}
	assert.Equal(t, want, props.Names())
	assert.Equal(t, "reflexive, asymmetric, anti-symmetric, transitive, negative-transitive, connex, "+
		"pre-order, partial-order, linear-order, total-order", props.String())
}

func TestClassify_Errors(t *testing.T) {
	t.Parallel()

	rect, _ := relation.NewRect(2, 1)
	_, err := relation.Classify(context.Background(), nil)
	require.ErrorIs(t, err, relation.ErrNilMatrix)
	_, err = relation.Classify(context.Background(), rect)
	require.ErrorIs(t, err, relation.ErrNonSquare)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := mustRandom(t, 4, 0.5, 1)

	_, err = relation.Classify(ctx, a)
	require.ErrorIs(t, err, context.Canceled)
	_, err = relation.Classify(ctx, a, relation.WithParallel(3))
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	def := relation.DefaultOptions()
	assert.Equal(t, relation.DefaultWorkers, def.Workers())
	assert.Equal(t, relation.DefaultAcyclicity, def.Acyclicity())

	assert.Panics(t, func() { relation.WithParallel(0) })
	assert.Panics(t, func() { relation.WithParallel(-4) })
	assert.NotPanics(t, func() { relation.WithParallel(1) })
}

func TestProperty_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reflexive", relation.PropReflexive.String())
	assert.Equal(t, "strict-linear-order", relation.PropStrictLinearOrder.String())
	assert.Equal(t, "acyclic", relation.PropAcyclic.String())
	assert.Equal(t, "unknown", relation.Property(-1).String())
	assert.Equal(t, "unknown", relation.Property(1000).String())
	assert.False(t, relation.Properties{Total: true}.Holds(relation.Property(1000)))
}
