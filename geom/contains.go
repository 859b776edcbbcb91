// SPDX-License-Identifier: MIT
// Package: polyarea/geom

package geom

import "math"

// Contains reports whether q lies strictly inside p.
//
// Boundary policy: a point on an edge or coincident with a vertex is NOT
// inside. The boundary is tested first with exact orientation arithmetic;
// the interior test is an even-odd ray cast toward +x using the half-open
// rule (yᵢ > y) != (yⱼ > y), so a ray through a shared vertex is counted once.
//
// Complexity: O(n) time, O(1) space.
func Contains(p Polygon, q Point) bool {
	n := len(p.pts)
	if n < MinVertices {
		return false
	}
	if OnBoundary(p, q) {
		return false
	}

	var (
		inside bool
		i, j   int
		a, b   Point
		xCross float64
	)
	for i, j = 0, n-1; i < n; j, i = i, i+1 {
		a, b = p.pts[i], p.pts[j]
		if (a.Y > q.Y) != (b.Y > q.Y) {
			// a.Y != b.Y is guaranteed by the branch condition.
			xCross = a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if q.X < xCross {
				inside = !inside
			}
		}
	}

	return inside
}

// Contains is the method form of Contains(p, q).
func (p Polygon) Contains(q Point) bool { return Contains(p, q) }

// OnBoundary reports whether q lies on any edge of p (vertices included).
//
// Complexity: O(n).
func OnBoundary(p Polygon, q Point) bool {
	n := len(p.pts)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if onSegment(q, a, b) {
			return true
		}
	}

	return false
}

// OnBoundary is the method form of OnBoundary(p, q).
func (p Polygon) OnBoundary(q Point) bool { return OnBoundary(p, q) }

// onSegment reports whether q lies on the closed segment [a, b].
func onSegment(q, a, b Point) bool {
	if Orient(a, b, q) != 0 {
		return false
	}

	return q.X >= math.Min(a.X, b.X) && q.X <= math.Max(a.X, b.X) &&
		q.Y >= math.Min(a.Y, b.Y) && q.Y <= math.Max(a.Y, b.Y)
}
