// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/emerald-tower/charts/scale"
)

// SVG writes an SVG document to an io.Writer.
//
// Drawing methods build up a path that Stroke, Fill or Tooltip
// emits. The first write error is retained and returned by Done; all
// drawing after an error is discarded.
type SVG struct {
	w   io.Writer
	err error

	fill, stroke string
	lineWidth    string

	path []string
}

// NewSVG starts an SVG document of the given pixel size.
func NewSVG(w io.Writer, width, height int) *SVG {
	s := &SVG{w: w}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" font-family=\"sans-serif\">\n", width, height)
	s.fprintf("<style>.hover { fill:rgba(0,0,0,0) } .hover:hover { stroke:#000 }</style>\n")
	s.NewPath()
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *SVG) escape(text string) {
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
}

// SetFill sets the fill color of paths and text. nil clears it.
func (s *SVG) SetFill(c color.Color) {
	if c == nil {
		s.fill = ""
	} else {
		s.fill = "fill:" + colorToCSS(c)
	}
}

// SetStroke sets the stroke color of paths. nil clears it.
func (s *SVG) SetStroke(c color.Color) {
	if c == nil {
		s.stroke = ""
	} else {
		s.stroke = "stroke:" + colorToCSS(c)
	}
}

func (s *SVG) SetLineWidth(lw float64) {
	s.lineWidth = fmt.Sprintf("stroke-width:%v", svglen(lw))
}

func (s *SVG) style(parts ...string) string {
	var nonEmpty []string
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}
	return " style=\"" + strings.Join(nonEmpty, ";") + "\""
}

// NewPath discards the current path.
func (s *SVG) NewPath() *SVG {
	s.path = s.path[:0]
	return s
}

func (s *SVG) MoveTo(x, y float64) *SVG {
	s.path = append(s.path, fmt.Sprintf("M%v %v", svglen(x), svglen(y)))
	return s
}

func (s *SVG) LineTo(x, y float64) *SVG {
	s.path = append(s.path, fmt.Sprintf("L%v %v", svglen(x), svglen(y)))
	return s
}

func (s *SVG) LineToRel(xd, yd float64) *SVG {
	var op string
	if xd == 0 {
		op = fmt.Sprintf("v%v", svglen(yd))
	} else if yd == 0 {
		op = fmt.Sprintf("h%v", svglen(xd))
	} else {
		op = fmt.Sprintf("l%v %v", svglen(xd), svglen(yd))
	}
	s.path = append(s.path, op)
	return s
}

// Polyline adds a connected run of line segments through pts.
func (s *SVG) Polyline(pts []scale.Point) *SVG {
	for i, p := range pts {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
		} else {
			s.LineTo(p.X, p.Y)
		}
	}
	return s
}

func (s *SVG) Rect(x, y, w, h float64) *SVG {
	return s.MoveTo(x, y).LineToRel(w, 0).LineToRel(0, h).LineToRel(-w, 0).ClosePath()
}

func (s *SVG) ClosePath() *SVG {
	s.path = append(s.path, "z")
	return s
}

func (s *SVG) pathData() string {
	return strings.Join(s.path, "")
}

func (s *SVG) Stroke() *SVG {
	s.fprintf("<path d=\"%s\" fill=\"none\"%s/>\n", s.pathData(), s.style(s.stroke, s.lineWidth))
	return s.NewPath()
}

func (s *SVG) Fill() *SVG {
	s.fprintf("<path d=\"%s\"%s/>\n", s.pathData(), s.style(s.fill))
	return s.NewPath()
}

// Tooltip emits the current path as an invisible region that shows
// text on hover and outlines itself.
func (s *SVG) Tooltip(text string) *SVG {
	s.fprintf("<path d=\"%s\" fill=\"rgba(0,0,0,0)\" class=\"hover\"><title>", s.pathData())
	s.escape(text)
	s.fprintf("</title></path>\n")
	return s.NewPath()
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

type Baseline int

const (
	BaselineAuto Baseline = iota
	BaselineMiddle
)

type TextOpts struct {
	Anchor   Anchor
	Baseline Baseline
	Rotate   float64
	FontSize float64
}

// Text draws text at (x, y) in the current fill color.
func (s *SVG) Text(x, y float64, opts TextOpts, text string) {
	astr := map[Anchor]string{
		AnchorStart:  "",
		AnchorMiddle: " text-anchor=\"middle\"",
		AnchorEnd:    " text-anchor=\"end\"",
	}[opts.Anchor]
	bstr := map[Baseline]string{
		BaselineAuto:   "",
		BaselineMiddle: " dominant-baseline=\"middle\"",
	}[opts.Baseline]
	rstr := ""
	if opts.Rotate != 0 {
		rstr = fmt.Sprintf(" transform=\"rotate(%v,%v,%v)\"", svglen(opts.Rotate), svglen(x), svglen(y))
	}
	fstr := ""
	if opts.FontSize != 0 {
		fstr = fmt.Sprintf(" font-size=\"%v\"", svglen(opts.FontSize))
	}
	s.fprintf("<text x=\"%v\" y=\"%v\"%s%s%s%s%s>", svglen(x), svglen(y), astr, bstr, rstr, fstr, s.style(s.fill))
	s.escape(text)
	s.fprintf("</text>\n")
}

// Done closes the document and returns the first error encountered
// while writing it.
func (s *SVG) Done() error {
	s.fprintf("</svg>\n")
	return s.err
}
