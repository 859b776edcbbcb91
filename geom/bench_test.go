// SPDX-License-Identifier: MIT
package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polyarea/geom"
)

// circle builds a regular n-gon of radius r; deterministic, always simple.
func circle(n int, r float64) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

func BenchmarkArea_n100(b *testing.B) {
	p := geom.MustPolygon(circle(100, 10)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Area()
	}
}

func BenchmarkContains_n100(b *testing.B) {
	p := geom.MustPolygon(circle(100, 10)...)
	q := geom.Point{X: 3, Y: 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Contains(q)
	}
}

func BenchmarkValidate_n200(b *testing.B) {
	pts := circle(200, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := geom.Validate(pts); err != nil {
			b.Fatalf("Validate failed: %v", err)
		}
	}
}
