// SPDX-License-Identifier: MIT
// Package montecarlo_test provides fixtures shared across the estimator,
// search and statistics tests.
package montecarlo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyarea/geom"
)

const (
	// seedDet is the deterministic seed used across tests.
	seedDet = int64(1234)

	// unreachable is an accuracy no finite Monte Carlo run meets in practice.
	unreachable = 1e-15
)

// fixedSource answers every draw with lo + t·(hi−lo).
type fixedSource struct {
	t     float64
	calls int
}

func (s *fixedSource) Uniform(lo, hi float64) float64 {
	s.calls++

	return lo + s.t*(hi-lo)
}

// seqSource replays fractions in order, cycling; records every interval.
type seqSource struct {
	ts        []float64
	i         int
	intervals [][2]float64
}

func (s *seqSource) Uniform(lo, hi float64) float64 {
	t := s.ts[s.i%len(s.ts)]
	s.i++
	s.intervals = append(s.intervals, [2]float64{lo, hi})

	return lo + t*(hi-lo)
}

// square returns the CCW unit square.
func square(t testing.TB) geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)

	return p
}

// triangle returns the right triangle (0,0)-(2,0)-(0,2): area 2, box area 4.
func triangle(t testing.TB) geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}})
	require.NoError(t, err)

	return p
}

// quad returns an irregular convex quadrilateral with an awkward area ratio.
func quad(t testing.TB) geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0.1}, {X: 2.7, Y: 2.9}, {X: 0.2, Y: 1.7}})
	require.NoError(t, err)

	return p
}
