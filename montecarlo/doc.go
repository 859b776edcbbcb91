// SPDX-License-Identifier: MIT
// Package: polyarea/montecarlo
//
// Package montecarlo estimates polygon area by uniform rejection sampling
// and searches for the sample count that reaches a target relative error.
//
// 🚀 Estimate
//
//	Draw n points uniformly in the polygon's bounding box B, count the ones
//	strictly inside (geom.Contains), and return |B|·inside/n. The estimator
//	is unbiased; its standard error shrinks as O(1/√n).
//
// 🔁 Search
//
//	samples := InitialSamples (100); err := +Inf
//	while err > AcceptableError && samples ≤ MaxSamples:
//	    est := Estimate(p, samples)
//	    err  = |est − A| / A          // A computed once, up front
//	    samples *= 2
//
//	The doubling happens after every trial, so ConvergenceResult.Samples is
//	one doubling past the count that produced the passing error.
//	LastSamples() returns the count the final trial actually used. Exhaustion is not an
//	error: inspect Converged (or compare Samples with MaxSamples).
//
//	Iterations are bounded by ⌊log2(MaxSamples/InitialSamples)⌋ + 1.
//
// ⚙️ Extensions
//
//   - EstimateParallel - split samples over workers, one derived rng stream
//     per worker, partial counts summed.
//   - RunTrials        - repeat Estimate and summarize mean, standard
//     deviation, standard error and mean absolute deviation.
//   - SearchOptions.TimeLimit / SearchContext - stop between trials.
//
// Library code never logs; progress is observable through OnTrial hooks.
package montecarlo
