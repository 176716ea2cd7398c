// SPDX-License-Identifier: MIT
package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binrel/relation"
)

// extremes gathers every extremal query for one relation.
type extremes struct {
	maxima, minima, majorants, minorants     []int
	hasMax, hasMin, hasMajorant, hasMinorant bool
}

func collectExtremes(t *testing.T, a relation.Matrix) extremes {
	t.Helper()
	var (
		e   extremes
		err error
	)
	e.maxima, err = relation.Maxima(a)
	require.NoError(t, err)
	e.minima, err = relation.Minima(a)
	require.NoError(t, err)
	e.majorants, err = relation.Majorants(a)
	require.NoError(t, err)
	e.minorants, err = relation.Minorants(a)
	require.NoError(t, err)
	e.hasMax, err = relation.HasMaximum(a)
	require.NoError(t, err)
	e.hasMin, err = relation.HasMinimum(a)
	require.NoError(t, err)
	e.hasMajorant, err = relation.HasMajorant(a)
	require.NoError(t, err)
	e.hasMinorant, err = relation.HasMinorant(a)
	require.NoError(t, err)

	return e
}

func TestExtremal_Fixtures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rel  [][]int
		want extremes
	}{
		{
			name: "none",
			rel:  [][]int{{1, 1, 0, 1}, {0, 0, 1, 0}, {0, 0, 0, 1}, {0, 1, 0, 0}},
			want: extremes{maxima: []int{}, minima: []int{}, majorants: []int{}, minorants: []int{}},
		},
		{
			name: "maximum and minorants",
			rel:  [][]int{{1, 1, 1, 1}, {1, 0, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			want: extremes{
				maxima: []int{0}, minima: []int{}, majorants: []int{}, minorants: []int{2, 3},
				hasMax: true, hasMinorant: true,
			},
		},
		{
			name: "minima and majorants",
			rel:  [][]int{{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}},
			want: extremes{
				maxima: []int{}, minima: []int{2, 3}, majorants: []int{0, 1}, minorants: []int{},
				hasMin: true, hasMajorant: true,
			},
		},
		{
			name: "singleton",
			rel:  [][]int{{1}},
			want: extremes{
				maxima: []int{0}, minima: []int{0}, majorants: []int{}, minorants: []int{},
				hasMax: true, hasMin: true,
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := mustRel(t, tc.rel)
			assert.Equal(t, tc.want, collectExtremes(t, a))
			assert.Equal(t, tc.want, collectExtremes(t, hide{a}), "fallback path")
		})
	}
}

func TestExtremal_HasAgreesWithLists(t *testing.T) {
	t.Parallel()

	for _, seed := range propertySeeds {
		e := collectExtremes(t, mustRandom(t, 6, 0.7, seed))
		assert.Equal(t, len(e.maxima) > 0, e.hasMax, "seed %d", seed)
		assert.Equal(t, len(e.minima) > 0, e.hasMin, "seed %d", seed)
		assert.Equal(t, len(e.majorants) > 0, e.hasMajorant, "seed %d", seed)
		assert.Equal(t, len(e.minorants) > 0, e.hasMinorant, "seed %d", seed)
	}
}

func TestExtremal_EmptyRelation(t *testing.T) {
	t.Parallel()

	empty, _ := relation.NewDense(0)
	e := collectExtremes(t, empty)
	assert.NotNil(t, e.maxima)
	assert.Empty(t, e.maxima)
	assert.False(t, e.hasMax)
}
