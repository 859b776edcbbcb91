// SPDX-License-Identifier: MIT
package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/polyarea/generator"
	"github.com/katalvlaran/polyarea/montecarlo"
	"github.com/katalvlaran/polyarea/rng"
)

func BenchmarkEstimate_100Gon_10k(b *testing.B) {
	src := rng.New(seedDet)
	p, err := generator.GenerateWithRetry(src, 100, 10, 10)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = montecarlo.Estimate(p, 10_000, src)
	}
}

func BenchmarkEstimateParallel_100Gon_100k(b *testing.B) {
	p, err := generator.GenerateWithRetry(rng.New(seedDet), 100, 10, 10)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = montecarlo.EstimateParallel(p, 100_000, 4, seedDet)
	}
}

func BenchmarkSearch_Default(b *testing.B) {
	p, err := generator.GenerateWithRetry(rng.New(seedDet), 100, 10, 10)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = montecarlo.Search(p, rng.New(int64(i)+1), montecarlo.DefaultSearchOptions())
	}
}
