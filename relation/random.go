// SPDX-License-Identifier: MIT
// Package relation - deterministic random relations for tests and benchmarks.
//
// Goals:
//   - Determinism: the randomness source is always passed in; nothing reads
//     the global math/rand state or the wall clock.
//   - Reproducible default: a nil source falls back to a fixed seed.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Give every goroutine its own source.

package relation

import (
	"math"
	"math/rand"
)

const opRandom = "Random"

// defaultSeed seeds the source Random builds when rng == nil.
const defaultSeed int64 = 1

// Random returns an n×n relation where each cell is true independently with
// probability density. Cells are drawn in row-major order, one Float64 each,
// so the same source state always yields the same relation.
//
// Errors:
//   - ErrBadShape for n < 0.
//   - ErrOutOfRange for density NaN or outside [0, 1].
//
// Complexity: Time O(n²), Space O(n²).
func Random(n int, density float64, rng *rand.Rand) (*Dense, error) {
	if n < 0 {
		return nil, relationErrorf(opRandom, ErrBadShape)
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, relationErrorf(opRandom, ErrOutOfRange)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	out := newDense(n, n)
	for k := range out.data {
		out.data[k] = rng.Float64() < density
	}

	return out, nil
}
