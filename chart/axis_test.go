// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emerald-tower/charts/scale"
)

func TestLinearAxis(t *testing.T) {
	a := NewLinearAxis(0, 98, 5, scale.Options{}, 300, 20)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, a.Ticks)

	px, ok := a.Pixel(0)
	assert.True(t, ok)
	assert.InDelta(t, 300, px, 1e-9)
	px, ok = a.Pixel(100)
	assert.True(t, ok)
	assert.InDelta(t, 20, px, 1e-9)

	_, ok = a.Pixel(150)
	assert.False(t, ok)
	assert.InDelta(t, -120, a.Map(150), 1e-9)

	values, pixels := a.TickPixels()
	assert.Equal(t, a.Ticks, values)
	require.Len(t, pixels, len(values))
	for i := 1; i < len(pixels); i++ {
		assert.Less(t, pixels[i], pixels[i-1], "larger values must be drawn higher")
	}
}

func TestLogAxis(t *testing.T) {
	a, err := NewLogAxis(3, 950, 5, 300, 20)
	require.NoError(t, err)
	assert.Contains(t, a.Ticks, 100.0)
	for i := 1; i < len(a.Ticks); i++ {
		assert.Greater(t, a.Ticks[i], a.Ticks[i-1])
	}

	lo, ok := a.Pixel(3)
	require.True(t, ok)
	hi, ok := a.Pixel(950)
	require.True(t, ok)
	assert.Greater(t, lo, hi)

	_, err = NewLogAxis(-1, 10, 5, 300, 20)
	assert.Error(t, err)
	_, err = NewLogAxis(0, 10, 5, 300, 20)
	assert.Error(t, err)

	_, err = NewLogAxis(50, 50, 5, 300, 20)
	assert.NoError(t, err)
}
