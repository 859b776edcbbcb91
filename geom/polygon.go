// SPDX-License-Identifier: MIT
// Package: polyarea/geom

package geom

import "fmt"

// Polygon is a simple, implicitly closed ring of distinct vertices.
//
// Invariants (enforced by NewPolygon):
//   - Len() ≥ MinVertices;
//   - no two non-adjacent edges intersect;
//   - the enclosed area is non-zero.
//
// A Polygon is read-only after construction; accessor methods never expose
// the backing slice. The zero value is an empty polygon with zero area and
// empty bounds; it is never produced by NewPolygon.
type Polygon struct {
	pts []Point
}

// NewPolygon copies points and validates them as a simple polygon.
// The last vertex connects back to the first; do not repeat the first point.
//
// Errors: see Validate.
//
// Complexity: O(n²) for the simplicity check, O(n) memory for the copy.
func NewPolygon(points []Point) (Polygon, error) {
	if err := Validate(points); err != nil {
		return Polygon{}, err
	}
	cp := make([]Point, len(points))
	copy(cp, points)

	return Polygon{pts: cp}, nil
}

// MustPolygon is NewPolygon for fixtures and examples; it panics on error.
func MustPolygon(points ...Point) Polygon {
	p, err := NewPolygon(points)
	if err != nil {
		panic(err)
	}

	return p
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.pts) }

// IsEmpty reports whether p is the zero value.
func (p Polygon) IsEmpty() bool { return len(p.pts) == 0 }

// Vertex returns vertex i. It panics when i is out of range, like indexing.
func (p Polygon) Vertex(i int) Point { return p.pts[i] }

// Vertices returns a copy of the vertex sequence.
func (p Polygon) Vertices() []Point {
	cp := make([]Point, len(p.pts))
	copy(cp, p.pts)

	return cp
}

// Edge returns the i-th edge (vᵢ, vᵢ₊₁ mod n).
func (p Polygon) Edge(i int) (Point, Point) {
	n := len(p.pts)

	return p.pts[i], p.pts[(i+1)%n]
}

// Bounds returns the axis-aligned bounding box, recomputed from vertices.
//
// Complexity: O(n).
func (p Polygon) Bounds() BoundingBox { return boundsOf(p.pts) }

// Centroid returns the arithmetic mean of the vertices (not the area
// centroid).
func (p Polygon) Centroid() Point { return vertexMean(p.pts) }

// Reversed returns the same ring with opposite winding.
func (p Polygon) Reversed() Polygon {
	n := len(p.pts)
	cp := make([]Point, n)
	for i, v := range p.pts {
		cp[n-1-i] = v
	}

	return Polygon{pts: cp}
}

// Orientation reports the ring winding derived from the signed area.
func (p Polygon) Orientation() Orientation {
	s := SignedArea(p)
	switch {
	case s > 0:
		return CounterClockwise
	case s < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// String renders a short summary.
func (p Polygon) String() string {
	return fmt.Sprintf("Polygon(n=%d, area=%.5f)", len(p.pts), Area(p))
}

// vertexMean averages a point slice; zero for an empty slice.
func vertexMean(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, v := range pts {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(pts))

	return Point{X: sx / n, Y: sy / n}
}

// Centroid returns the arithmetic mean of an arbitrary point slice.
// Generators use it before a Polygon exists.
func Centroid(pts []Point) Point { return vertexMean(pts) }
