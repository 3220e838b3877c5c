// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Interface = Linear{}

func TestLinearMapEndpoints(t *testing.T) {
	for _, test := range [][4]float64{
		{0, 9, 44, 1078},
		{0, 100, 300, 0},
		{-5, 5, 0, 1},
		{10, -10, -3, 7},
		{0.1, 0.7, 12.5, 99.25},
	} {
		d0, d1, r0, r1 := test[0], test[1], test[2], test[3]
		m := NewLinearMap(d0, d1, r0, r1)
		assert.InDelta(t, r0, m(d0), 1e-9, "NewLinearMap(%v)(%v)", test, d0)
		assert.InDelta(t, r1, m(d1), 1e-9, "NewLinearMap(%v)(%v)", test, d1)
	}
}

func TestLinearMap(t *testing.T) {
	assert.InDelta(t, 561, NewLinearMap(0, 9, 44, 1078)(4.5), 1e-9)

	// Flipped output range, as for a screen y axis.
	flip := NewLinearMap(0, 100, 300, 0)
	assert.InDelta(t, 225, flip(25), 1e-9)
	assert.InDelta(t, 330, flip(-10), 1e-9)

	assert.True(t, math.IsNaN(flip(math.NaN())))
}

func TestLinearMapDegenerate(t *testing.T) {
	m := NewLinearMap(5, 5, 0, 100)
	for _, v := range []float64{-1e6, 0, 5, 6, 10, 1e6} {
		got := m(v)
		assert.False(t, math.IsNaN(got) || math.IsInf(got, 0), "m(%v) = %v", v, got)
	}
	// The domain width is taken to be 1.
	assert.Equal(t, 0.0, m(5))
	assert.Equal(t, 100.0, m(6))
}

func TestLinear(t *testing.T) {
	s := NewLinear([]float64{3, 97, 42}, 5, Options{})
	require.Equal(t, Domain{0, 100, 20}, s.Domain)
	assert.InDelta(t, 0, s.Of(0), 1e-12)
	assert.InDelta(t, 0.5, s.Of(50), 1e-12)
	assert.InDelta(t, 1, s.Of(100), 1e-12)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, s.Ticks())

	empty := NewLinear(nil, 5, Options{})
	assert.Equal(t, Domain{0, 1, 1}, empty.Domain)
	assert.Equal(t, []float64{0, 1}, empty.Ticks())
}

func TestOutputScale(t *testing.T) {
	s := NewOutputScale(300, 20)

	y, ok := s.Of(0.5)
	assert.True(t, ok)
	assert.InDelta(t, 160, y, 1e-9)

	_, ok = s.Of(1.5)
	assert.False(t, ok, "crop should reject 1.5")
	_, ok = s.Of(1 + 1e-12)
	assert.True(t, ok, "crop should tolerate round-off")

	s.Clamp()
	y, ok = s.Of(-2)
	assert.True(t, ok)
	assert.InDelta(t, 300, y, 1e-9)

	s.Unclamp()
	y, ok = s.Of(2)
	assert.True(t, ok)
	assert.InDelta(t, -260, y, 1e-9)

	s.Crop()
	_, ok = s.Of(-0.1)
	assert.False(t, ok)
}
