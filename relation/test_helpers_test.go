// SPDX-License-Identifier: MIT
// Package relation_test contains test helpers
//
// Purpose:
//   • Small, deterministic fixtures written as 0/1 tables.
//   • A wrapper that forces the non-*Dense (At/Set) fallback paths.

package relation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binrel/relation"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Code under test then materializes it through At, so hide{X} exercises the
// generic fallback while X itself exercises the *Dense fast-path.
type hide struct{ relation.Matrix }

// mustRel BUILDS a *Dense from a 0/1 table or fails the test.
func mustRel(t testing.TB, rows [][]int) *relation.Dense {
	t.Helper()
	d, err := relation.FromInts(rows)
	require.NoError(t, err)

	return d
}

// mustRandom BUILDS a seeded n×n relation of the given density.
func mustRandom(t testing.TB, n int, density float64, seed int64) *relation.Dense {
	t.Helper()
	d, err := relation.Random(n, density, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return d
}

// requireRel ASSERTS that got equals the 0/1 table want, cell by cell.
func requireRel(t testing.TB, want [][]int, got relation.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	exp := mustRel(t, want)
	require.Truef(t, exp.Equal(got), "want:\n%v\ngot:\n%v", exp, got)
}

// mustAt READS cell (i,j) or fails the test.
func mustAt(t testing.TB, m relation.Matrix, i, j int) bool {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// propertySeeds drive the randomized property tests; fixed for reproducibility.
var propertySeeds = []int64{1, 7, 42, 1337, 4242}
