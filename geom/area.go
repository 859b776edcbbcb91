// SPDX-License-Identifier: MIT
// Package: polyarea/geom

package geom

import "math"

// Area returns the exact enclosed area of p using the Gauss shoelace formula:
//
//	A = |Σᵢ (xᵢ·yᵢ₊₁ − xᵢ₊₁·yᵢ)| / 2,   indices mod n.
//
// The absolute value makes the result independent of winding direction.
// Area of the empty polygon is 0.
//
// Complexity: O(n) time, O(1) space.
func Area(p Polygon) float64 {
	return math.Abs(shoelace(p.pts)) / 2
}

// Area is the method form of Area(p).
func (p Polygon) Area() float64 { return Area(p) }

// SignedArea returns the shoelace sum divided by 2 without the absolute
// value: positive for counter-clockwise rings, negative for clockwise ones.
//
// Complexity: O(n).
func SignedArea(p Polygon) float64 {
	return shoelace(p.pts) / 2
}

// SignedArea is the method form of SignedArea(p).
func (p Polygon) SignedArea() float64 { return SignedArea(p) }

// RingArea applies the shoelace formula to an unvalidated point slice.
// It exists for callers that must measure a candidate before NewPolygon.
func RingArea(pts []Point) float64 {
	return math.Abs(shoelace(pts)) / 2
}

// shoelace returns Σ (xᵢ·yᵢ₊₁ − xᵢ₊₁·yᵢ) over the closed ring.
func shoelace(pts []Point) float64 {
	n := len(pts)
	if n < MinVertices {
		return 0
	}
	var (
		sum  float64
		i, j int
	)
	for i = 0; i < n; i++ {
		j = (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}

	return sum
}
