// SPDX-License-Identifier: MIT
// Package: polyarea/montecarlo
//
// stats.go - repeated-trial summaries.
//
// RunTrials repeats Estimate with a fixed sample count and condenses the
// estimates into mean, spread and bias figures. The statistics kernels come
// from gonum/stat; this file only collects the samples and the deviations
// from the exact area.

package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/polyarea/geom"
	"github.com/katalvlaran/polyarea/rng"
)

// RunTrials performs opts.Trials independent Estimate calls of opts.Samples
// points each, drawing from src in sequence.
//
// Errors:
//   - ErrInvalidArgument if opts.Samples < 1 or opts.Trials < 2.
//   - ErrNeedSource, ErrEmptyPolygon as for Estimate.
//   - ErrDegenerateArea if the exact area is zero or non-finite.
//
// Complexity: O(Trials·Samples·n) time, O(Trials) space.
func RunTrials(p geom.Polygon, src rng.Source, opts TrialOptions) (TrialStats, error) {
	if opts.Trials < 2 {
		return TrialStats{}, mcErrorf(opRunTrials, "%w: trials must be ≥ 2, got %d", ErrInvalidArgument, opts.Trials)
	}
	if err := validateEstimate(opRunTrials, p, opts.Samples, src); err != nil {
		return TrialStats{}, err
	}
	exact := geom.Area(p)
	if !geom.HasUsableArea(p) {
		return TrialStats{}, mcErrorf(opRunTrials, "%w: got %g", ErrDegenerateArea, exact)
	}

	box := p.Bounds()
	estimates := make([]float64, opts.Trials)
	var absDev float64
	for i := range estimates {
		estimates[i] = scale(box, countInside(p, box, opts.Samples, src), opts.Samples)
		absDev += math.Abs(estimates[i] - exact)
		if opts.Progress != nil {
			opts.Progress(i+1, opts.Trials)
		}
	}

	mean, std := stat.MeanStdDev(estimates, nil)

	return TrialStats{
		Trials:           opts.Trials,
		Samples:          opts.Samples,
		Exact:            exact,
		Mean:             mean,
		StdDev:           std,
		StdErr:           stat.StdErr(std, float64(opts.Trials)),
		MeanAbsDeviation: absDev / float64(opts.Trials),
		RelativeBias:     (mean - exact) / exact,
	}, nil
}
