// SPDX-License-Identifier: MIT
// Package: polyarea/montecarlo

package montecarlo

import (
	"github.com/katalvlaran/polyarea/geom"
	"github.com/katalvlaran/polyarea/rng"
)

// Estimate returns a Monte Carlo estimate of p's area from `samples` uniform
// draws in its bounding box. Each sample draws x first, then y.
//
// Errors:
//   - ErrInvalidArgument if samples < 1.
//   - ErrNeedSource if src is nil.
//   - ErrEmptyPolygon if p is the zero value.
//
// Complexity: O(samples·n) time, O(1) space.
func Estimate(p geom.Polygon, samples int, src rng.Source) (float64, error) {
	if err := validateEstimate(opEstimate, p, samples, src); err != nil {
		return 0, err
	}
	box := p.Bounds()
	inside := countInside(p, box, samples, src)

	return scale(box, inside, samples), nil
}

// countInside draws n points in box and counts those strictly inside p.
func countInside(p geom.Polygon, box geom.BoundingBox, n int, src rng.Source) int {
	var (
		inside int
		q      geom.Point
	)
	for k := 0; k < n; k++ {
		q.X = src.Uniform(box.MinX, box.MaxX)
		q.Y = src.Uniform(box.MinY, box.MaxY)
		if p.Contains(q) {
			inside++
		}
	}

	return inside
}

// scale converts an inside count into an area estimate.
func scale(box geom.BoundingBox, inside, samples int) float64 {
	return box.Area() * (float64(inside) / float64(samples))
}

func validateEstimate(op string, p geom.Polygon, samples int, src rng.Source) error {
	if samples < 1 {
		return mcErrorf(op, "%w: samples must be ≥ 1, got %d", ErrInvalidArgument, samples)
	}
	if src == nil {
		return mcErrorf(op, "%w", ErrNeedSource)
	}
	if p.IsEmpty() {
		return mcErrorf(op, "%w", ErrEmptyPolygon)
	}

	return nil
}
