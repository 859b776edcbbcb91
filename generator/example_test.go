// SPDX-License-Identifier: MIT
package generator_test

import (
	"fmt"

	"github.com/katalvlaran/polyarea/generator"
	"github.com/katalvlaran/polyarea/rng"
)

// ExampleGenerate builds a seeded 100-gon of radius 10.
func ExampleGenerate() {
	poly, err := generator.Generate(rng.New(7), 100, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(poly.Len(), poly.Area() > 200 && poly.Area() < 315)
	// Output:
	// 100 true
}
