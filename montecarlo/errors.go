// SPDX-License-Identifier: MIT
// Package: polyarea/montecarlo

package montecarlo

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the estimator and the search.
var (
	// ErrInvalidArgument indicates malformed inputs detected before any work
	// (samples < 1, workers < 1, AcceptableError ≤ 0, MaxSamples < 1, ...).
	ErrInvalidArgument = errors.New("montecarlo: invalid argument")

	// ErrNeedSource indicates a nil rng.Source. It wraps ErrInvalidArgument.
	ErrNeedSource = fmt.Errorf("%w: random source is required", ErrInvalidArgument)

	// ErrEmptyPolygon indicates the zero-value geom.Polygon was passed to an
	// estimator; it has no bounding box to sample from.
	ErrEmptyPolygon = errors.New("montecarlo: polygon has no vertices")

	// ErrDegenerateArea indicates an exact area of zero or a non-finite
	// value, which leaves the relative error undefined.
	ErrDegenerateArea = errors.New("montecarlo: exact area is zero or non-finite")

	// ErrTimeLimit indicates the search stopped because SearchOptions.TimeLimit
	// elapsed. The partial result is returned alongside it.
	ErrTimeLimit = errors.New("montecarlo: time limit exceeded")
)

// Operation names used as error prefixes.
const (
	opEstimate         = "Estimate"
	opEstimateParallel = "EstimateParallel"
	opSearch           = "Search"
	opRunTrials        = "RunTrials"
)

// mcErrorf prefixes a formatted message (which may contain %w) with op.
func mcErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{op}, args...)...)
}
