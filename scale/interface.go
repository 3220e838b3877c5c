// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale computes axis scales and "nice" tick marks for charts.
//
// NiceStep, NiceDomain and NiceTicks round raw data extremes to
// human-friendly axis bounds and tick spacings. NewLinearMap builds
// the mapping from data space to pixel space, and Points applies a
// pair of such mappings to a data series.
//
// Nothing in this package allocates shared state, so every function
// is safe to call concurrently.
package scale

// A scale satisfies Interface if it maps from some input domain to an
// output interval [0, 1] and can list the tick marks of that domain.
type Interface interface {
	Of(x float64) float64
	Ticks() []float64
}
