// SPDX-License-Identifier: MIT
// Package: polyarea/generator

package generator

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/polyarea/geom"
	"github.com/katalvlaran/polyarea/rng"
)

// Generate returns a random simple polygon with vertexCount vertices whose
// distance from the origin lies in [lo·radius, hi·radius] along each base
// direction.
//
// Errors:
//   - ErrInvalidArgument if vertexCount < 3 or radius is not a positive finite number.
//   - ErrNeedSource if src is nil.
//   - ErrGeneration (joined with the geom sentinel) if the ring is not a
//     valid simple polygon. No internal retry happens.
//
// Complexity: O(n²) time (validation), O(n) memory.
func Generate(src rng.Source, vertexCount int, radius float64, opts ...Option) (geom.Polygon, error) {
	if err := validateArgs(MethodGenerate, src, vertexCount, radius); err != nil {
		return geom.Polygon{}, err
	}
	cfg := newConfig(opts...)

	pts := make([]geom.Point, vertexCount)
	var (
		i      int
		theta  float64
		rx, ry float64
		n      = float64(vertexCount)
	)
	for i = 0; i < vertexCount; i++ {
		theta = 2 * math.Pi * float64(i) / n
		rx = src.Uniform(cfg.radialLo, cfg.radialHi)
		ry = rx
		if cfg.perAxis {
			ry = src.Uniform(cfg.radialLo, cfg.radialHi)
		}
		pts[i] = geom.Point{
			X: math.Cos(theta) * rx * radius,
			Y: math.Sin(theta) * ry * radius,
		}
	}

	sortByCentroidAngle(pts)

	poly, err := geom.NewPolygon(pts)
	if err != nil {
		return geom.Polygon{}, generatorErrorf(MethodGenerate, "%w: %w", ErrGeneration, err)
	}

	return poly, nil
}

// GenerateWithRetry calls Generate up to attempts times with fresh draws from
// src and returns the first valid polygon. Argument errors are returned
// immediately; only ErrGeneration triggers another attempt.
//
// Complexity: O(attempts·n²) worst case.
func GenerateWithRetry(src rng.Source, vertexCount int, radius float64, attempts int, opts ...Option) (geom.Polygon, error) {
	if attempts < 1 {
		return geom.Polygon{}, generatorErrorf(MethodGenerateWithRetry, "%w: attempts must be ≥ 1, got %d", ErrInvalidArgument, attempts)
	}
	var lastErr error
	for k := 0; k < attempts; k++ {
		poly, err := Generate(src, vertexCount, radius, opts...)
		if err == nil {
			return poly, nil
		}
		if !errors.Is(err, ErrGeneration) {
			return geom.Polygon{}, err
		}
		lastErr = err
	}

	return geom.Polygon{}, generatorErrorf(MethodGenerateWithRetry, "gave up after %d attempts: %w", attempts, lastErr)
}

// sortByCentroidAngle reorders pts in place by ascending atan2 around their
// vertex mean. The sort is stable so equal angles keep generation order.
func sortByCentroidAngle(pts []geom.Point) {
	c := geom.Centroid(pts)
	angles := make([]float64, len(pts))
	for i, p := range pts {
		angles[i] = math.Atan2(p.Y-c.Y, p.X-c.X)
	}
	sort.Stable(byAngle{pts: pts, angles: angles})
}

// byAngle sorts points and their precomputed angles together.
type byAngle struct {
	pts    []geom.Point
	angles []float64
}

func (s byAngle) Len() int           { return len(s.pts) }
func (s byAngle) Less(i, j int) bool { return s.angles[i] < s.angles[j] }
func (s byAngle) Swap(i, j int) {
	s.pts[i], s.pts[j] = s.pts[j], s.pts[i]
	s.angles[i], s.angles[j] = s.angles[j], s.angles[i]
}

// validateArgs enforces the fail-fast contract before any sampling.
func validateArgs(method string, src rng.Source, vertexCount int, radius float64) error {
	if vertexCount < geom.MinVertices {
		return generatorErrorf(method, "%w: vertex count must be ≥ %d, got %d", ErrInvalidArgument, geom.MinVertices, vertexCount)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return generatorErrorf(method, "%w: radius must be positive and finite, got %g", ErrInvalidArgument, radius)
	}
	if src == nil {
		return generatorErrorf(method, "%w", ErrNeedSource)
	}

	return nil
}
