// SPDX-License-Identifier: MIT
// Package: polyarea/montecarlo

package montecarlo

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/polyarea/geom"
	"github.com/katalvlaran/polyarea/rng"
)

// Search doubles the sample count, starting at opts.InitialSamples, until a
// trial's relative error is ≤ opts.AcceptableError or the count exceeds
// opts.MaxSamples. See ConvergenceResult for the reported sample count.
//
// Errors:
//   - ErrInvalidArgument / ErrNeedSource for malformed options or a nil source.
//   - ErrDegenerateArea if the exact area is zero or non-finite.
//   - ErrTimeLimit (with the partial result) if opts.TimeLimit elapsed
//     before the loop finished.
//
// Complexity: O(MaxSamples·n) time in the worst case (the trial sizes form
// a geometric series), O(1) space.
func Search(p geom.Polygon, src rng.Source, opts SearchOptions) (ConvergenceResult, error) {
	return SearchContext(context.Background(), p, src, opts)
}

// SearchContext is Search with cancellation. ctx is checked before every
// trial; on cancellation the partial result is returned with ctx.Err().
func SearchContext(ctx context.Context, p geom.Polygon, src rng.Source, opts SearchOptions) (ConvergenceResult, error) {
	if err := validateSearchOptions(opts); err != nil {
		return ConvergenceResult{}, err
	}
	if src == nil {
		return ConvergenceResult{}, mcErrorf(opSearch, "%w", ErrNeedSource)
	}

	exact := geom.Area(p)
	if !geom.HasUsableArea(p) {
		return ConvergenceResult{}, mcErrorf(opSearch, "%w: got %g", ErrDegenerateArea, exact)
	}

	res := ConvergenceResult{
		Samples:   opts.InitialSamples,
		LastError: math.Inf(1),
		ExactArea: exact,
	}
	start := time.Now()

	var (
		est float64
		err error
	)
	for res.LastError > opts.AcceptableError && res.Samples <= opts.MaxSamples {
		if err = ctx.Err(); err != nil {
			res.Elapsed = time.Since(start)
			return res, mcErrorf(opSearch, "%w", err)
		}

		est, err = Estimate(p, res.Samples, src)
		if err != nil {
			res.Elapsed = time.Since(start)
			return res, err
		}
		res.LastEstimate = est
		res.LastError = math.Abs(est-exact) / exact
		if opts.OnTrial != nil {
			opts.OnTrial(Trial{Index: res.Trials, Samples: res.Samples, Estimate: est, RelativeError: res.LastError})
		}
		res.Trials++
		res.Samples *= 2

		if opts.TimeLimit > 0 && res.LastError > opts.AcceptableError &&
			res.Samples <= opts.MaxSamples && time.Since(start) > opts.TimeLimit {
			res.Elapsed = time.Since(start)
			return res, mcErrorf(opSearch, "%w after %d trials", ErrTimeLimit, res.Trials)
		}
	}

	res.Elapsed = time.Since(start)
	res.Converged = res.LastError <= opts.AcceptableError

	return res, nil
}

// maxSampleCeiling keeps the doubled counter representable.
const maxSampleCeiling = math.MaxInt / 2

func validateSearchOptions(opts SearchOptions) error {
	if !(opts.AcceptableError > 0) || math.IsInf(opts.AcceptableError, 0) {
		return mcErrorf(opSearch, "%w: acceptable error must be positive and finite, got %g", ErrInvalidArgument, opts.AcceptableError)
	}
	if opts.MaxSamples < 1 || opts.MaxSamples > maxSampleCeiling {
		return mcErrorf(opSearch, "%w: max samples must be in [1, %d], got %d", ErrInvalidArgument, maxSampleCeiling, opts.MaxSamples)
	}
	if opts.InitialSamples < 1 {
		return mcErrorf(opSearch, "%w: initial samples must be ≥ 1, got %d", ErrInvalidArgument, opts.InitialSamples)
	}
	if opts.TimeLimit < 0 {
		return mcErrorf(opSearch, "%w: time limit must be ≥ 0, got %s", ErrInvalidArgument, opts.TimeLimit)
	}

	return nil
}
