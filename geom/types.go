// SPDX-License-Identifier: MIT
// Package: polyarea/geom

package geom

import "math"

// MinVertices is the smallest vertex count of a valid polygon.
const MinVertices = 3

// Point is a planar coordinate pair. It has no identity beyond its value.
type Point struct {
	X, Y float64
}

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// BoundingBox is the axis-aligned extent of a point set.
// It is always derived from vertices, never stored by Polygon.
type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns MaxX − MinX.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY − MinY.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Area returns Width·Height.
func (b BoundingBox) Area() float64 { return b.Width() * b.Height() }

// Contains reports whether p lies in the closed box.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// boundsOf computes the box of a non-empty point slice.
// Complexity: O(n).
func boundsOf(pts []Point) BoundingBox {
	if len(pts) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}

	return b
}

// Orientation classifies the winding of a ring or the turn of three points.
type Orientation int

const (
	// Collinear marks a zero turn or a zero-area ring.
	Collinear Orientation = iota
	// CounterClockwise marks a left turn / positive signed area.
	CounterClockwise
	// Clockwise marks a right turn / negative signed area.
	Clockwise
)

// String returns a short human-readable label.
func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "ccw"
	case Clockwise:
		return "cw"
	default:
		return "collinear"
	}
}

// Orient returns the cross product (b−a)×(c−a): positive for a left turn,
// negative for a right turn, zero when a, b, c are collinear.
//
// Complexity: O(1).
func Orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
