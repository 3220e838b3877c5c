// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// A Map maps a value from one interval to another.
type Map func(v float64) float64

// NewLinearMap returns the affine Map that sends d0 to r0 and d1 to
// r1.
//
// Neither interval needs to be increasing, so a Map can flip an axis
// (for example, a screen y axis where larger values are drawn
// higher). If d0 == d1, the domain width is taken to be 1, giving a
// map with slope r1-r0 rather than dividing by zero.
func NewLinearMap(d0, d1, r0, r1 float64) Map {
	width := d1 - d0
	if width == 0 {
		width = 1
	}
	slope := (r1 - r0) / width
	return func(v float64) float64 {
		return r0 + (v-d0)*slope
	}
}

// Linear is a linear scale over a nice Domain.
type Linear struct {
	Domain
	of Map
}

// NewLinear returns a linear scale whose domain is the nice domain
// covering input. An empty input gives the domain [0, 1].
func NewLinear(input []float64, targetTicks int, o Options) Linear {
	min, max := minmax(input)
	return NewLinearDomain(NiceDomain(min, max, targetTicks, o))
}

// NewLinearDomain returns a linear scale over d.
func NewLinearDomain(d Domain) Linear {
	return Linear{d, NewLinearMap(d.Min, d.Max, 0, 1)}
}

func (s Linear) Of(x float64) float64 {
	return s.of(x)
}
