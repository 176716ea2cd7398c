// SPDX-License-Identifier: MIT
// Package relation_test provides benchmarks for the O(n³) kernels,
// using deterministic random relations.
package relation_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/binrel/relation"
)

// benchSizes are the relation orders to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkD *relation.Dense
	sinkB bool
	sinkP relation.Properties
)

func BenchmarkTransitiveClosure(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustRandom(b, n, 0.05, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := relation.TransitiveClosure(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkProduct(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustRandom(b, n, 0.1, 1337)
			y := mustRandom(b, n, 0.1, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := relation.Product(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkIsTransitive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			// a closure is transitive, so the scan never exits early
			a := mustRandom(b, n, 0.05, 7)
			tc, _ := relation.TransitiveClosure(a)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := relation.IsTransitive(tc)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = ok
			}
		})
	}
}

func BenchmarkClassify(b *testing.B) {
	b.ReportAllocs()
	ctx := context.Background()
	for _, n := range benchSizes {
		for _, w := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, w), func(b *testing.B) {
				a := mustRandom(b, n, 0.05, 42)
				tc, _ := relation.ReflexiveTransitiveClosure(a)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					p, err := relation.Classify(ctx, tc, relation.WithParallel(w))
					if err != nil {
						b.Fatal(err)
					}
					sinkP = p
				}
			})
		}
	}
}
