// SPDX-License-Identifier: MIT
// Package: polyarea/generator
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package generator

import "fmt"

// Option customizes Generate.
type Option func(*config)

// WithRadialRange sets the interval the per-vertex radial scale factor is
// drawn from. Panics unless 0 < lo ≤ hi.
func WithRadialRange(lo, hi float64) Option {
	if !(lo > 0 && lo <= hi) {
		panic(fmt.Sprintf("generator: WithRadialRange(%g, %g) needs 0 < lo <= hi", lo, hi))
	}

	return func(c *config) {
		c.radialLo, c.radialHi = lo, hi
	}
}

// WithPerAxisJitter draws an independent radial factor for each axis
// (x first, then y) instead of one factor per vertex.
func WithPerAxisJitter() Option {
	return func(c *config) {
		c.perAxis = true
	}
}
