// SPDX-License-Identifier: MIT
// Package: polyarea/montecarlo

package montecarlo

import "time"

// Defaults for SearchOptions.
const (
	DefaultAcceptableError = 0.01
	DefaultMaxSamples      = 1_000_000
	DefaultInitialSamples  = 100
)

// Trial describes one Estimate call made by the search.
type Trial struct {
	Index         int     // 0-based trial number
	Samples       int     // sample count used by this trial
	Estimate      float64 // Monte Carlo area
	RelativeError float64 // |Estimate − exact| / exact
}

// SearchOptions configures Search.
//
// Fields:
//   - AcceptableError - target relative error, must be > 0.
//   - MaxSamples      - sample-count ceiling, must be in [1, math.MaxInt/2].
//   - InitialSamples  - first trial size, must be ≥ 1.
//   - TimeLimit       - optional wall-clock budget checked between trials;
//     0 disables it, negative values are rejected.
//   - OnTrial         - optional hook invoked after every trial.
type SearchOptions struct {
	AcceptableError float64
	MaxSamples      int
	InitialSamples  int
	TimeLimit       time.Duration
	OnTrial         func(Trial)
}

// DefaultSearchOptions returns the reference configuration:
// AcceptableError=0.01, MaxSamples=1_000_000, InitialSamples=100, no time
// limit, no hook.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		AcceptableError: DefaultAcceptableError,
		MaxSamples:      DefaultMaxSamples,
		InitialSamples:  DefaultInitialSamples,
	}
}

// ConvergenceResult is the outcome of Search.
//
// Samples is the doubled counter at loop exit: when converged it is one
// doubling past the trial that met the threshold; when exhausted it is the
// first value above MaxSamples. Use LastSamples for the count the final
// trial drew.
type ConvergenceResult struct {
	Samples      int           // counter value at exit (see type doc)
	Elapsed      time.Duration // wall-clock time spent in the loop
	Converged    bool          // true when LastError ≤ AcceptableError
	Trials       int           // number of Estimate calls made
	LastEstimate float64       // estimate of the final trial (0 if none)
	LastError    float64       // relative error of the final trial (+Inf if none)
	ExactArea    float64       // shoelace area used for normalisation
}

// LastSamples returns the sample count the final trial actually used, or 0
// when no trial ran.
func (r ConvergenceResult) LastSamples() int {
	if r.Trials == 0 {
		return 0
	}

	return r.Samples / 2
}

// TrialOptions configures RunTrials.
type TrialOptions struct {
	Samples  int                   // samples per trial, ≥ 1
	Trials   int                   // number of trials, ≥ 2 for a standard deviation
	Progress func(done, total int) // optional, invoked after each trial
}

// TrialStats summarizes repeated independent estimates.
type TrialStats struct {
	Trials           int
	Samples          int
	Exact            float64 // shoelace area
	Mean             float64 // mean estimate
	StdDev           float64 // sample standard deviation of the estimates
	StdErr           float64 // StdDev / √Trials
	MeanAbsDeviation float64 // mean |estimate − Exact|
	RelativeBias     float64 // (Mean − Exact) / Exact
}
