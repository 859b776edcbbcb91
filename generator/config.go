// SPDX-License-Identifier: MIT
// Package: polyarea/generator

package generator

// Deterministic defaults.
const (
	DefaultRadialLo = 0.8 // lower bound of the radial scale factor
	DefaultRadialHi = 1.0 // upper bound of the radial scale factor
	DefaultRadius   = 10.0
)

// config aggregates all knobs used by Generate. Passed by value.
type config struct {
	radialLo float64
	radialHi float64
	perAxis  bool
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		radialLo: DefaultRadialLo,
		radialHi: DefaultRadialHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
