// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/emerald-tower/charts/scale"
)

// canvas is a drawing surface a Renderer can target.
type canvas interface {
	line(x0, y0, x1, y1 float64, c color.Color, width float64)
	polyline(pts []scale.Point, c color.Color, width float64)
	// rect fills a rectangle. If tip is not empty, it is shown when
	// the rectangle is hovered, where the surface supports it.
	rect(x, y, w, h float64, c color.Color, tip string)
	text(x, y float64, opts TextOpts, c color.Color, s string)
	// rotates reports whether text honors TextOpts.Rotate.
	rotates() bool
	done() error
}

// Renderer draws a Series as a chart.
//
// A Renderer holds no state between calls, so one Renderer may be
// used from several goroutines.
type Renderer struct {
	Style Style

	// Logger receives debug output for each render. nil disables
	// logging.
	Logger *zap.Logger
}

func NewRenderer(style Style, logger *zap.Logger) *Renderer {
	return &Renderer{Style: style, Logger: logger}
}

func (r *Renderer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// RenderSVG writes s as an SVG document to w.
//
// An empty series renders a placeholder rather than failing.
func (r *Renderer) RenderSVG(w io.Writer, s Series) error {
	svg := NewSVG(w, r.Style.Width, r.Style.Height)
	return r.render(&svgCanvas{svg}, s)
}

// RenderPNG writes s as a PNG image to w.
func (r *Renderer) RenderPNG(w io.Writer, s Series) error {
	c, err := newPNGCanvas(r.Style)
	if err != nil {
		return err
	}
	if err := r.render(c, s); err != nil {
		return err
	}
	return c.encode(w)
}

// YAxis returns the value axis a render of s would use, drawn from
// the bottom of the plot area up to the top.
func (r *Renderer) YAxis(s Series) (Axis, error) {
	min, max, err := s.Bounds()
	if err != nil {
		return Axis{}, err
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Axis{}, fmt.Errorf("series %q: value %s is %v", s.Name, s.label(i), v)
		}
	}
	st := r.Style
	_, top, _, bottom := st.plotArea()
	if st.LogScale {
		return NewLogAxis(min, max, st.Ticks, bottom, top)
	}
	if st.Kind == KindBar {
		// Bars grow from zero.
		min, max = math.Min(min, 0), math.Max(max, 0)
	}
	return NewLinearAxis(min, max, st.Ticks, st.Options, bottom, top), nil
}

func (r *Renderer) render(c canvas, s Series) error {
	st := r.Style
	left, top, right, bottom := st.plotArea()
	if right <= left || bottom <= top {
		return fmt.Errorf("chart %dx%d leaves no room inside its margins", st.Width, st.Height)
	}
	center := TextOpts{Anchor: AnchorMiddle, Baseline: BaselineMiddle, FontSize: st.FontSize}

	c.rect(0, 0, float64(st.Width), float64(st.Height), color.White, "")
	if st.Title != "" {
		c.text(float64(st.Width)/2, top/2, center, st.TextColor, st.Title)
	}

	y, err := r.YAxis(s)
	if errors.Is(err, ErrNoData) {
		r.logger().Debug("rendering empty series", zap.String("series", s.Name))
		c.text((left+right)/2, (top+bottom)/2, center, st.TextColor, "no data")
		return c.done()
	} else if err != nil {
		return err
	}
	r.logger().Debug("rendering series",
		zap.String("series", s.Name),
		zap.Stringer("kind", st.Kind),
		zap.Int("points", s.Len()),
		zap.Float64s("ticks", y.Ticks))

	ticks := ticksFormat{
		tickLen:     4,
		textSep:     4,
		tickColor:   st.TextColor,
		gridColor:   st.GridColor,
		labelColor:  st.TextColor,
		labelFormat: st.LabelFormat,
		fontSize:    st.FontSize,
	}
	ticks.vTicks(c, y, left, right)
	if s.Name != "" {
		caption := TextOpts{Anchor: AnchorStart, FontSize: st.FontSize}
		c.text(left, top-ticks.textSep, caption, st.TextColor, s.Name)
	}

	n := s.Len()
	x := scale.NewLinearMap(0, float64(n), left, right)
	mid := func(i int) float64 { return x(float64(i) + 0.5) }

	switch st.Kind {
	case KindBar:
		band := (right - left) / float64(n)
		base := bottom
		if !st.LogScale {
			base = y.Map(0)
		}
		for i, v := range s.Values {
			py := y.Map(v)
			tip := fmt.Sprintf("%s: %g", s.label(i), v)
			c.rect(mid(i)-band*0.35, math.Min(py, base), band*0.7, math.Abs(base-py), st.BarColor, tip)
		}
	default:
		c.polyline(scale.Points(s.Values, mid, y.Map), st.LineColor, 2)
	}

	ticks.hLabels(c, s, mid, bottom, (right-left)/float64(n))

	c.line(left, bottom, right, bottom, st.TextColor, 1)
	c.line(left, top, left, bottom, st.TextColor, 1)
	return c.done()
}

type ticksFormat struct {
	tickLen, textSep float64
	tickColor        color.Color
	gridColor        color.Color
	labelColor       color.Color
	labelFormat      string
	fontSize         float64
}

// vTicks draws the ticks of a vertical axis at x = left, with grid
// lines across to right.
func (f *ticksFormat) vTicks(c canvas, y Axis, left, right float64) {
	values, pixels := y.TickPixels()
	lOpts := TextOpts{Anchor: AnchorEnd, Baseline: BaselineMiddle, FontSize: f.fontSize}
	for i, py := range pixels {
		if f.gridColor != nil {
			c.line(left, py, right, py, f.gridColor, 1)
		}
		c.line(left-f.tickLen, py, left, py, f.tickColor, 1)
		if f.labelFormat != "" {
			l := fmt.Sprintf(f.labelFormat, values[i])
			c.text(left-f.tickLen-f.textSep, py, lOpts, f.labelColor, l)
		}
	}
}

// minLabelSpacing is the narrowest horizontal space, in pixels, given
// to one category label.
const minLabelSpacing = 48

// labelAngle is the rotation of category labels that are too dense
// to lay out horizontally.
const labelAngle = -45

// hLabels draws category labels below y = bottom. When the categories
// are too narrow for horizontal labels, the labels are slanted if c
// can rotate text, and labels are skipped evenly if they still do not
// fit.
func (f *ticksFormat) hLabels(c canvas, s Series, mid func(int) float64, bottom, band float64) {
	lOpts := TextOpts{Anchor: AnchorMiddle, FontSize: f.fontSize}
	ly := bottom + f.tickLen + f.textSep + f.fontSize
	spacing := float64(minLabelSpacing)
	if band < minLabelSpacing && c.rotates() {
		// Slanted labels only need about a line height each.
		lOpts = TextOpts{Anchor: AnchorEnd, Baseline: BaselineMiddle, Rotate: labelAngle, FontSize: f.fontSize}
		ly = bottom + f.tickLen + f.textSep
		spacing = f.fontSize * 1.5
	}
	every := 1
	if band > 0 && band < spacing {
		every = int(math.Ceil(spacing / band))
	}
	for i := 0; i < s.Len(); i += every {
		c.line(mid(i), bottom, mid(i), bottom+f.tickLen, f.tickColor, 1)
		c.text(mid(i), ly, lOpts, f.labelColor, s.label(i))
	}
}

type svgCanvas struct {
	svg *SVG
}

func (c *svgCanvas) line(x0, y0, x1, y1 float64, col color.Color, width float64) {
	c.svg.SetStroke(col)
	c.svg.SetLineWidth(width)
	c.svg.MoveTo(x0, y0).LineTo(x1, y1).Stroke()
}

func (c *svgCanvas) polyline(pts []scale.Point, col color.Color, width float64) {
	if len(pts) == 0 {
		return
	}
	c.svg.SetStroke(col)
	c.svg.SetLineWidth(width)
	c.svg.Polyline(pts).Stroke()
}

func (c *svgCanvas) rect(x, y, w, h float64, col color.Color, tip string) {
	c.svg.SetFill(col)
	c.svg.Rect(x, y, w, h).Fill()
	if tip != "" {
		c.svg.Rect(x, y, w, h).Tooltip(tip)
	}
}

func (c *svgCanvas) text(x, y float64, opts TextOpts, col color.Color, s string) {
	c.svg.SetFill(col)
	c.svg.Text(x, y, opts, s)
}

func (c *svgCanvas) rotates() bool {
	return true
}

func (c *svgCanvas) done() error {
	return c.svg.Done()
}
