// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"github.com/emerald-tower/charts/scale"
)

// Kind selects how a series is drawn.
type Kind int

const (
	KindLine Kind = iota
	KindBar
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	}
	return "Kind(?)"
}

// Margin is the space between the plot area and the image edges, in
// pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Style controls the layout and appearance of a rendered chart.
type Style struct {
	Width, Height int
	Margin        Margin

	Kind  Kind
	Title string

	// Ticks is the number of y axis intervals to aim for.
	Ticks int
	// Options constrains the y axis tick step.
	Options scale.Options
	// LogScale draws the y axis on a base 10 log scale.
	LogScale bool

	// LabelFormat formats y tick labels with fmt.
	LabelFormat string
	FontSize    float64

	LineColor, BarColor, GridColor, TextColor color.Color
}

func DefaultStyle() Style {
	return Style{
		Width:       840,
		Height:      360,
		Margin:      Margin{Top: 40, Right: 20, Bottom: 40, Left: 64},
		Kind:        KindLine,
		Ticks:       scale.DefaultTargetTicks,
		LabelFormat: "%g",
		FontSize:    12,
		LineColor:   color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
		BarColor:    color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
		GridColor:   color.NRGBA{0xdd, 0xdd, 0xdd, 0xff},
		TextColor:   color.Black,
	}
}

// plotArea returns the pixel bounds of the region inside the margins.
func (s Style) plotArea() (left, top, right, bottom float64) {
	return s.Margin.Left, s.Margin.Top, float64(s.Width) - s.Margin.Right, float64(s.Height) - s.Margin.Bottom
}
