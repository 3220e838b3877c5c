// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// OutputScale maps the unit interval produced by an Interface on to
// an output interval such as a run of pixels.
type OutputScale struct {
	clamp int
	of    Map
}

// cropSlack tolerates round-off at the ends of the unit interval.
const cropSlack = 1e-9

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewOutputScale returns an output scale from [0, 1] to [min, max].
// min may be greater than max. The scale initially crops.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{clampCrop, NewLinearMap(0, 1, min, max)}
}

// Crop makes Of reject inputs outside [0, 1].
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp makes Of extrapolate inputs outside [0, 1].
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp makes Of pin inputs outside [0, 1] to the nearest end.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x to the output interval. ok is false if s crops and x is
// outside [0, 1].
func (s OutputScale) Of(x float64) (y float64, ok bool) {
	switch s.clamp {
	case clampCrop:
		if x < -cropSlack || x > 1+cropSlack {
			return 0, false
		}
	case clampClamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return s.of(x), true
}
