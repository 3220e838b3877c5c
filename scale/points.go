// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Point is a plotted coordinate.
type Point struct {
	X, Y float64
}

// Points places values in the plane. Point i is (x(i), y(values[i])).
// values is not modified.
func Points(values []float64, x func(i int) float64, y func(v float64) float64) []Point {
	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{x(i), y(v)}
	}
	return pts
}
