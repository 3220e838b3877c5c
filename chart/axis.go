// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"

	"github.com/emerald-tower/charts/scale"
)

// Axis places data values along a run of pixels.
type Axis struct {
	// Scale maps data values to [0, 1].
	Scale scale.Interface

	// Ticks are the data values to mark on the axis, in increasing
	// order.
	Ticks []float64

	out scale.OutputScale
}

// NewLinearAxis returns a linear axis over the nice domain covering
// [min, max], drawn from pixel r0 (at the domain minimum) to pixel r1.
func NewLinearAxis(min, max float64, targetTicks int, o scale.Options, r0, r1 float64) Axis {
	s := scale.NewLinearDomain(scale.NiceDomain(min, max, targetTicks, o))
	return Axis{Scale: s, Ticks: s.Ticks(), out: scale.NewOutputScale(r0, r1)}
}

// NewLogAxis returns a base 10 logarithmic axis whose domain is
// widened to powers of ten covering [min, max]. min and max must be
// positive.
func NewLogAxis(min, max float64, targetTicks int, r0, r1 float64) (Axis, error) {
	if min > max {
		min, max = max, min
	}
	if !(min > 0) {
		return Axis{}, fmt.Errorf("log axis over [%v, %v]: values must be positive", min, max)
	}
	if min == max {
		min, max = min/10, max*10
	}
	if targetTicks <= 0 {
		targetTicks = scale.DefaultTargetTicks
	}
	l, err := mscale.NewLog(min, max, 10)
	if err != nil {
		return Axis{}, fmt.Errorf("log axis over [%v, %v]: %w", min, max, err)
	}
	ls := &logScale{l: l, opts: mscale.TickOptions{Max: targetTicks + 1}}
	ls.l.Nice(ls.opts)
	return Axis{Scale: ls, Ticks: ls.Ticks(), out: scale.NewOutputScale(r0, r1)}, nil
}

// logScale adapts a go-moremath log scale to scale.Interface.
type logScale struct {
	l    mscale.Log
	opts mscale.TickOptions
}

func (s *logScale) Of(x float64) float64 {
	return s.l.Map(x)
}

func (s *logScale) Ticks() []float64 {
	major, _ := s.l.Ticks(s.opts)
	return major
}

// Pixel returns the pixel position of v. ok is false if v lies
// outside the axis domain.
func (a Axis) Pixel(v float64) (px float64, ok bool) {
	return a.out.Of(a.Scale.Of(v))
}

// Map returns the pixel position of v, extrapolating past the ends of
// the axis.
func (a Axis) Map(v float64) float64 {
	out := a.out
	out.Unclamp()
	px, _ := out.Of(a.Scale.Of(v))
	return px
}

// TickPixels returns the pixel positions of the ticks of a that fall
// on the axis, along with their values.
func (a Axis) TickPixels() (values, pixels []float64) {
	for i, u := range vec.Map(a.Scale.Of, a.Ticks) {
		if px, ok := a.out.Of(u); ok {
			values = append(values, a.Ticks[i])
			pixels = append(pixels, px)
		}
	}
	return
}
