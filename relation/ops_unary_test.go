// SPDX-License-Identifier: MIT
package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binrel/relation"
)

var unaryFixture = [][]int{
	{1, 1, 0, 1},
	{0, 1, 1, 1},
	{0, 1, 0, 0},
	{1, 0, 1, 0},
}

func TestComplement_Fixture(t *testing.T) {
	t.Parallel()

	a := mustRel(t, unaryFixture)
	got, err := relation.Complement(a)
	require.NoError(t, err)
	requireRel(t, [][]int{
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{1, 0, 1, 1},
		{0, 1, 0, 1},
	}, got)
	requireRel(t, unaryFixture, a)
}

func TestReverse_Fixture(t *testing.T) {
	t.Parallel()

	got, err := relation.Reverse(hide{mustRel(t, unaryFixture)})
	require.NoError(t, err)
	requireRel(t, [][]int{
		{1, 0, 0, 1},
		{1, 1, 1, 0},
		{0, 1, 0, 1},
		{1, 1, 0, 0},
	}, got)
}

func TestUnary_Identities(t *testing.T) {
	t.Parallel()

	for _, seed := range propertySeeds {
		a := mustRandom(t, 8, 0.5, seed)

		c, _ := relation.Complement(a)
		cc, _ := relation.Complement(c)
		assert.True(t, a.Equal(cc), "seed %d: complement is an involution", seed)

		r, _ := relation.Reverse(a)
		rr, _ := relation.Reverse(r)
		assert.True(t, a.Equal(rr), "seed %d: reverse is an involution", seed)

		dual, err := relation.Dual(a)
		require.NoError(t, err)
		rc, _ := relation.Reverse(c)
		cr, _ := relation.Complement(r)
		assert.True(t, dual.Equal(rc), "seed %d: dual == reverse(complement)", seed)
		assert.True(t, dual.Equal(cr), "seed %d: dual == complement(reverse)", seed)

		dd, _ := relation.Dual(dual)
		assert.True(t, a.Equal(dd), "seed %d: dual is an involution", seed)
	}
}

func TestNarrowPreserve_AllOnes(t *testing.T) {
	t.Parallel()

	full, _ := relation.Full(4)
	got, err := relation.NarrowPreserve(full, []int{1, 3, 4})
	require.NoError(t, err)
	requireRel(t, [][]int{
		{1, 0, 1, 1},
		{0, 0, 0, 0},
		{1, 0, 1, 1},
		{1, 0, 1, 1},
	}, got)

	// order and duplicates are irrelevant
	again, err := relation.NarrowPreserve(full, []int{4, 1, 3, 3})
	require.NoError(t, err)
	assert.True(t, got.Equal(again))
}

func TestNarrowRange_Fixture(t *testing.T) {
	t.Parallel()

	a := mustRel(t, [][]int{
		{1, 0, 0, 1},
		{1, 1, 1, 0},
		{0, 1, 0, 1},
		{1, 1, 0, 0},
	})
	got, err := relation.NarrowRange(a, 2, 3)
	require.NoError(t, err)
	requireRel(t, [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}, got)

	viaSet, err := relation.NarrowPreserve(a, []int{2, 3})
	require.NoError(t, err)
	assert.True(t, got.Equal(viaSet))
}

func TestNarrow_Resizes(t *testing.T) {
	t.Parallel()

	a := mustRel(t, [][]int{
		{1, 0, 0, 1},
		{1, 1, 1, 0},
		{0, 1, 0, 1},
		{1, 1, 0, 0},
	})
	got, err := relation.Narrow(a, []int{3, 1})
	require.NoError(t, err)
	requireRel(t, [][]int{
		{1, 0},
		{0, 0},
	}, got)

	whole, err := relation.Narrow(a, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.True(t, a.Equal(whole))

	kept, err := relation.NarrowPreserve(a, []int{4, 3, 2, 1})
	require.NoError(t, err)
	assert.True(t, a.Equal(kept))
}

func TestNarrow_Errors(t *testing.T) {
	t.Parallel()

	a, _ := relation.Full(3)
	cases := []struct {
		name string
		call func() error
	}{
		{"resize empty", func() error { _, err := relation.Narrow(a, nil); return err }},
		{"resize zero", func() error { _, err := relation.Narrow(a, []int{0}); return err }},
		{"resize past n", func() error { _, err := relation.Narrow(a, []int{1, 4}); return err }},
		{"preserve empty", func() error { _, err := relation.NarrowPreserve(a, []int{}); return err }},
		{"preserve negative", func() error { _, err := relation.NarrowPreserve(a, []int{-2}); return err }},
		{"range reversed", func() error { _, err := relation.NarrowRange(a, 3, 2); return err }},
		{"range low", func() error { _, err := relation.NarrowRange(a, 0, 2); return err }},
		{"range high", func() error { _, err := relation.NarrowRange(a, 1, 4); return err }},
	}
	for _, tc := range cases {
		require.ErrorIs(t, tc.call(), relation.ErrOutOfRange, tc.name)
	}
}
