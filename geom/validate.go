// SPDX-License-Identifier: MIT
// Package: polyarea/geom
//
// validate.go - library-free validity checks for candidate rings.
//
// Design:
//   • Every check is a pure function over []Point and is exported so it can
//     be tested and reused on its own.
//   • Simplicity is checked by brute force over edge pairs: O(n²) with exact
//     orientation predicates.

package geom

import "math"

const opValidate = "Validate"

// Validate reports the first validity violation of a candidate ring, in the
// fixed order: ErrTooFewVertices, ErrNonFinite, ErrDuplicateVertex,
// ErrDegenerate (collinear), ErrSelfIntersecting, ErrDegenerate (zero area).
// It returns nil for a simple polygon.
//
// Complexity: O(n²) time, O(n) space.
func Validate(points []Point) error {
	n := len(points)
	if n < MinVertices {
		return geomErrorf(opValidate, ErrTooFewVertices, "got %d", n)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return geomErrorf(opValidate, ErrNonFinite, "vertex %d = (%g, %g)", i, p.X, p.Y)
		}
	}
	seen := make(map[Point]int, n)
	for i, p := range points {
		if first, dup := seen[p]; dup {
			return geomErrorf(opValidate, ErrDuplicateVertex, "vertices %d and %d", first, i)
		}
		seen[p] = i
	}
	if allCollinear(points) {
		return geomErrorf(opValidate, ErrDegenerate, "%d vertices are collinear", n)
	}
	if i, j, ok := firstCrossing(points); ok {
		return geomErrorf(opValidate, ErrSelfIntersecting, "edges %d and %d intersect", i, j)
	}
	if shoelace(points) == 0 {
		// only reachable through underflow on tiny rings.
		return geomErrorf(opValidate, ErrDegenerate, "%d vertices enclose no area", n)
	}

	return nil
}

// IsSimple reports whether the closed ring has no crossing or overlapping
// edges. It does not check size, finiteness or area; see Validate.
//
// Complexity: O(n²).
func IsSimple(points []Point) bool {
	if len(points) < MinVertices {
		return false
	}
	_, _, crossed := firstCrossing(points)

	return !crossed
}

// SegmentsIntersect reports whether closed segments [a,b] and [c,d] share
// at least one point (touching and collinear overlap included).
//
// Complexity: O(1).
func SegmentsIntersect(a, b, c, d Point) bool {
	d1 := Orient(c, d, a)
	d2 := Orient(c, d, b)
	d3 := Orient(a, b, c)
	d4 := Orient(a, b, d)

	if straddles(d1, d2) && straddles(d3, d4) {
		return true
	}

	return (d1 == 0 && onSegment(a, c, d)) ||
		(d2 == 0 && onSegment(b, c, d)) ||
		(d3 == 0 && onSegment(c, a, b)) ||
		(d4 == 0 && onSegment(d, a, b))
}

// straddles reports strictly opposite signs.
func straddles(u, v float64) bool {
	return (u > 0 && v < 0) || (u < 0 && v > 0)
}

// firstCrossing scans edge pairs and returns the first offending pair.
// Edge k runs from points[k] to points[(k+1)%n].
//   - non-adjacent edges must not touch at all;
//   - adjacent edges share one vertex s and must not fold back over each
//     other (collinear with the far endpoints on the same side of s).
func firstCrossing(points []Point) (int, int, bool) {
	n := len(points)
	var i, j int
	for i = 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		for j = i + 1; j < n; j++ {
			c, d := points[j], points[(j+1)%n]
			switch {
			case j == i+1:
				// shared vertex b == c.
				if foldsBack(a, b, d) {
					return i, j, true
				}
			case i == 0 && j == n-1:
				// shared vertex a == d.
				if foldsBack(b, a, c) {
					return i, j, true
				}
			default:
				if SegmentsIntersect(a, b, c, d) {
					return i, j, true
				}
			}
		}
	}

	return 0, 0, false
}

// foldsBack reports whether edges (u,s) and (s,w) overlap beyond s.
func foldsBack(u, s, w Point) bool {
	if Orient(u, s, w) != 0 {
		return false
	}
	du, dw := u.Sub(s), w.Sub(s)

	return du.X*dw.X+du.Y*dw.Y > 0
}

// allCollinear reports whether every point lies on one line.
func allCollinear(points []Point) bool {
	a := points[0]
	k := 1
	for k < len(points) && points[k] == a {
		k++
	}
	if k == len(points) {
		return true
	}
	b := points[k]
	for _, p := range points[k+1:] {
		if Orient(a, b, p) != 0 {
			return false
		}
	}

	return true
}

// finiteArea guards downstream normalisation against overflowed sums.
func finiteArea(a float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) && a > 0
}

// HasUsableArea reports whether p encloses a finite, strictly positive area.
func HasUsableArea(p Polygon) bool { return finiteArea(Area(p)) }
