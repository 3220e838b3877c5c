// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"sort"
)

// DefaultTargetTicks is the number of tick intervals NiceDomain and
// NiceTicks aim for when the caller passes a non-positive count.
const DefaultTargetTicks = 5

// Options constrains the step chosen by NiceStep.
//
// The zero value is ready to use: MinStep defaults to 1 and
// MultipleOf to no constraint.
type Options struct {
	// MinStep is the smallest step NiceStep will return. Values
	// that are not positive and finite mean 1.
	MinStep float64

	// MultipleOf, if > 0, forces steps that are at least
	// MultipleOf to be a multiple of it. This aligns ticks to a
	// secondary grid, such as multiples of 5.
	MultipleOf float64
}

func (o Options) minStep() float64 {
	if !(o.MinStep > 0) || math.IsInf(o.MinStep, 0) {
		return 1
	}
	return o.MinStep
}

func (o Options) multipleOf() float64 {
	if !(o.MultipleOf > 0) || math.IsInf(o.MultipleOf, 0) {
		return 0
	}
	return o.MultipleOf
}

// NiceStep returns a round step size such that about targetTicks
// steps span rng.
//
// The step is a 1, 2, 5 or 10 multiple of a power of ten, floored at
// o.MinStep and rounded to a whole number. If rng is not a positive
// finite number, NiceStep returns the minimum step.
func NiceStep(rng float64, targetTicks int, o Options) float64 {
	minStep := o.minStep()
	if math.IsNaN(rng) || math.IsInf(rng, 0) || rng <= 0 {
		return minStep
	}
	if targetTicks < 1 {
		targetTicks = 1
	}

	rough := rng / float64(targetTicks)
	if math.IsNaN(rough) || math.IsInf(rough, 0) || rough <= minStep {
		return minStep
	}

	pow := math.Pow(10, math.Floor(math.Log10(rough)))
	frac := rough / pow
	var mult float64
	switch {
	case frac >= 7.5:
		mult = 10
	case frac >= 3.5:
		mult = 5
	case frac >= 1.5:
		mult = 2
	default:
		mult = 1
	}

	step := roundHalfUp(math.Max(mult*pow, minStep))
	if step < minStep {
		// Rounding a fractional MinStep went below it.
		step = math.Ceil(minStep)
	}
	if m := o.multipleOf(); m > 0 && step >= m {
		step = math.Max(m, roundHalfUp(step/m)*m)
		if step < minStep {
			step = math.Ceil(minStep/m) * m
		}
	}
	return step
}

// Domain is an axis interval whose bounds are multiples of Step.
type Domain struct {
	Min, Max, Step float64
}

// fallbackDomain is returned for domains with non-finite bounds.
var fallbackDomain = Domain{Min: 0, Max: 1, Step: 1}

// NiceDomain expands [min, max] to bounds aligned on a nice step.
//
// min and max may be given in either order. If they are equal, the
// interval is padded by 10% of the value on each side, or by 1 if
// the value is 0. If either bound is NaN or infinite, NiceDomain
// returns the domain [0, 1] with step 1.
//
// If targetTicks <= 0, DefaultTargetTicks is used.
func NiceDomain(min, max float64, targetTicks int, o Options) Domain {
	if !isFinite(min) || !isFinite(max) {
		return fallbackDomain
	}
	if targetTicks <= 0 {
		targetTicks = DefaultTargetTicks
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		pad := 1.0
		if min != 0 {
			pad = math.Abs(min) * 0.1
		}
		min, max = min-pad, max+pad
	}

	step := NiceStep(max-min, targetTicks, o)
	return Domain{
		Min:  math.Floor(min/step) * step,
		Max:  math.Ceil(max/step) * step,
		Step: step,
	}
}

// Ticks returns the tick values of d from d.Min up to d.Max in
// increments of d.Step.
//
// Values are accumulated by repeated addition and each one is
// rounded independently, then de-duplicated and sorted. The loop
// bound is d.Max plus half a step, so the last tick survives
// round-off in the accumulation.
func (d Domain) Ticks() []float64 {
	if !(d.Step > 0) || !isFinite(d.Min) || !isFinite(d.Max) {
		return []float64{}
	}

	seen := make(map[float64]bool)
	ticks := []float64{}
	limit := d.Max + d.Step*0.5
	for v := d.Min; v <= limit; v += d.Step {
		t := roundHalfUp(v)
		if !seen[t] {
			seen[t] = true
			ticks = append(ticks, t)
		}
		if v+d.Step == v {
			// Step is below the float resolution at v.
			break
		}
	}
	sort.Float64s(ticks)
	return ticks
}

// NiceTicks returns the tick values of NiceDomain(min, max,
// targetTicks, o). The result is strictly increasing.
func NiceTicks(min, max float64, targetTicks int, o Options) []float64 {
	return NiceDomain(min, max, targetTicks, o).Ticks()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// roundHalfUp rounds x to the nearest integer, with halves rounded
// towards +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
