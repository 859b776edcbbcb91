// SPDX-License-Identifier: MIT
package geom_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyarea/geom"
)

// ExampleArea computes the shoelace area of the unit square in both windings.
func ExampleArea() {
	sq := geom.MustPolygon(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0},
		geom.Point{X: 1, Y: 1}, geom.Point{X: 0, Y: 1},
	)
	fmt.Println(sq.Area(), sq.Reversed().Area(), sq.Orientation())
	// Output:
	// 1 1 ccw
}

// ExampleContains shows the strict boundary policy.
func ExampleContains() {
	sq := geom.MustPolygon(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0},
		geom.Point{X: 1, Y: 1}, geom.Point{X: 0, Y: 1},
	)
	fmt.Println(sq.Contains(geom.Point{X: 0.5, Y: 0.5}))
	fmt.Println(sq.Contains(geom.Point{X: 0.5, Y: 0}))
	// Output:
	// true
	// false
}

// ExampleNewPolygon rejects a collinear triple.
func ExampleNewPolygon() {
	_, err := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	fmt.Println(errors.Is(err, geom.ErrDegenerate))
	// Output:
	// true
}
