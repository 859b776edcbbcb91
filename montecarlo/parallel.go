// SPDX-License-Identifier: MIT
// Package: polyarea/montecarlo

package montecarlo

import (
	"sync"

	"github.com/katalvlaran/polyarea/geom"
	"github.com/katalvlaran/polyarea/rng"
)

// EstimateParallel splits `samples` across `workers` goroutines.
//
// Worker k samples from rng.Derive(seed, k), an independent stream, and
// draws ⌊samples/workers⌋ points, the last worker taking the remainder.
// Inside counts are summed, so the result is identical for a fixed
// (seed, workers) pair regardless of scheduling. workers > samples is
// clamped to samples.
//
// Errors:
//   - ErrInvalidArgument if samples < 1 or workers < 1.
//   - ErrEmptyPolygon if p is the zero value.
//
// Complexity: O(samples·n / workers) wall time, O(workers) memory.
func EstimateParallel(p geom.Polygon, samples, workers int, seed int64) (float64, error) {
	if workers < 1 {
		return 0, mcErrorf(opEstimateParallel, "%w: workers must be ≥ 1, got %d", ErrInvalidArgument, workers)
	}
	if samples < 1 {
		return 0, mcErrorf(opEstimateParallel, "%w: samples must be ≥ 1, got %d", ErrInvalidArgument, samples)
	}
	if p.IsEmpty() {
		return 0, mcErrorf(opEstimateParallel, "%w", ErrEmptyPolygon)
	}
	if workers > samples {
		workers = samples
	}

	box := p.Bounds()
	per, rem := samples/workers, samples%workers
	counts := make([]int, workers)

	var wg sync.WaitGroup
	for k := 0; k < workers; k++ {
		n := per
		if k == workers-1 {
			n += rem
		}
		wg.Add(1)
		go func(k, n int) {
			defer wg.Done()
			counts[k] = countInside(p, box, n, rng.Derive(seed, uint64(k)))
		}(k, n)
	}
	wg.Wait()

	var total int
	for _, c := range counts {
		total += c
	}

	return scale(box, total, samples), nil
}
