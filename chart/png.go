// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/emerald-tower/charts/scale"
)

// pngCanvas rasterizes a chart into an image. Labels are drawn with
// the Go Regular font.
type pngCanvas struct {
	img  *image.NRGBA
	ctx  *freetype.Context
	face font.Face
	size float64
	err  error
}

func newPNGCanvas(st Style) (*pngCanvas, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}
	size := st.FontSize
	if size <= 0 {
		size = 12
	}

	img := image.NewNRGBA(image.Rect(0, 0, st.Width, st.Height))
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetDst(img)
	ctx.SetClip(img.Bounds())

	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
	return &pngCanvas{img: img, ctx: ctx, face: face, size: size}, nil
}

// dot fills a w×w square centered on (x, y).
func (c *pngCanvas) dot(x, y, w float64, col color.Color) {
	h := w / 2
	r := image.Rect(int(math.Floor(x-h+0.5)), int(math.Floor(y-h+0.5)), int(math.Floor(x+h+0.5)), int(math.Floor(y+h+0.5)))
	if r.Empty() {
		r = image.Rect(int(x), int(y), int(x)+1, int(y)+1)
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *pngCanvas) line(x0, y0, x1, y1 float64, col color.Color, width float64) {
	n := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if n == 0 {
		c.dot(x0, y0, width, col)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.dot(x0+(x1-x0)*t, y0+(y1-y0)*t, width, col)
	}
}

func (c *pngCanvas) polyline(pts []scale.Point, col color.Color, width float64) {
	for i := 1; i < len(pts); i++ {
		c.line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, col, width)
	}
	if len(pts) == 1 {
		c.dot(pts[0].X, pts[0].Y, width*2, col)
	}
}

func (c *pngCanvas) rect(x, y, w, h float64, col color.Color, tip string) {
	r := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+w)), int(math.Round(y+h)))
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *pngCanvas) text(x, y float64, opts TextOpts, col color.Color, s string) {
	if c.err != nil {
		return
	}
	width := float64(font.MeasureString(c.face, s)) / 64
	switch opts.Anchor {
	case AnchorMiddle:
		x -= width / 2
	case AnchorEnd:
		x -= width
	}
	if opts.Baseline == BaselineMiddle {
		y += c.size * 0.35
	}
	c.ctx.SetSrc(image.NewUniform(col))
	_, c.err = c.ctx.DrawString(s, freetype.Pt(int(math.Round(x)), int(math.Round(y))))
}

// rotates is false: freetype draws text horizontally only.
func (c *pngCanvas) rotates() bool {
	return false
}

func (c *pngCanvas) done() error {
	return c.err
}

func (c *pngCanvas) encode(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
