// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	values := []float64{12, 0, 7.5, -3}
	orig := append([]float64(nil), values...)
	x := func(i int) float64 { return 10 + float64(i)*20 }
	y := NewLinearMap(-5, 15, 100, 0)

	pts := Points(values, x, y)
	assert.Len(t, pts, len(values))
	for i, p := range pts {
		assert.Equal(t, Point{x(i), y(values[i])}, p, "point %d", i)
	}
	assert.Equal(t, orig, values, "Points modified its input")
}

func TestPointsEmpty(t *testing.T) {
	pts := Points(nil, func(int) float64 { return 0 }, func(float64) float64 { return 0 })
	assert.NotNil(t, pts)
	assert.Empty(t, pts)
}
