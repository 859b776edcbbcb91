// SPDX-License-Identifier: MIT
// Package: polyarea/geom
//
// Package geom provides the planar primitives behind polyarea: points,
// simple polygons, bounding boxes, the shoelace area and a strict
// point-in-polygon predicate.
//
// 🚀 What is here?
//
//   - Point, BoundingBox   - plain immutable values.
//   - Polygon              - validated, read-only, implicitly closed ring.
//   - Area / SignedArea    - Gauss shoelace formula, O(n).
//   - Contains             - strict interior test (boundary ⇒ false), O(n).
//   - Validate / IsSimple  - library-free simplicity check, O(n²).
//
// ✨ Validity contract (NewPolygon):
//
//	len ≥ 3              else ErrTooFewVertices
//	finite coordinates   else ErrNonFinite
//	distinct vertices    else ErrDuplicateVertex
//	non-zero area        else ErrDegenerate
//	no edge crossings    else ErrSelfIntersecting
//
// Winding direction is free: clockwise and counter-clockwise rings are both
// accepted and yield the same Area.
//
// Numeric note:
//
//	The shoelace sum is exact up to floating-point rounding. Its relative
//	error is on the order of n·ε·S/|2A|, where ε is the float64 machine
//	epsilon (≈2.2e-16) and S = Σ(|xᵢ·yᵢ₊₁| + |xᵢ₊₁·yᵢ|). For rings placed far
//	from the origin relative to their size, S/|2A| grows and cancellation
//	dominates; translate such rings toward the origin first.
//
// Quick ASCII example:
//
//	(0,1)───(1,1)
//	  │ ·(.5,.5)│     Contains((.5,.5)) == true
//	  │         │     Contains((.5,0))  == false  (on edge)
//	(0,0)───(1,0)     Area() == 1
package geom
