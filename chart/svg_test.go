// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emerald-tower/charts/scale"
)

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestSVGPath(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 100, 50)
	s.SetStroke(color.Black)
	s.SetLineWidth(2)
	s.Polyline([]scale.Point{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 2.5}}).Stroke()
	s.SetFill(color.NRGBA{255, 0, 0, 128})
	s.Rect(1, 2, 3, 4).Fill()
	assert.NoError(t, s.Done())

	out := buf.String()
	assert.Contains(t, out, `width="100" height="50"`)
	assert.Contains(t, out, `d="M0 0L10 5L20 2.5"`)
	assert.Contains(t, out, "stroke:rgb(0,0,0);stroke-width:2")
	assert.Contains(t, out, `d="M1 2h3v4h-3z"`)
	assert.Contains(t, out, "fill:rgba(255,0,0,")
}

func TestSVGTextEscaped(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 10, 10)
	s.Text(1, 2, TextOpts{Anchor: AnchorEnd, Baseline: BaselineMiddle}, "A&B <Tower>")
	s.Rect(0, 0, 1, 1).Tooltip("unit 4 & 5")
	assert.NoError(t, s.Done())

	out := buf.String()
	assert.Contains(t, out, `text-anchor="end"`)
	assert.Contains(t, out, `dominant-baseline="middle"`)
	assert.Contains(t, out, "A&amp;B &lt;Tower&gt;")
	assert.Contains(t, out, "<title>unit 4 &amp; 5</title>")
}

func TestSVGTextRotated(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 10, 10)
	s.Text(3, 4, TextOpts{Anchor: AnchorStart, Rotate: -45, FontSize: 9}, "Jan")
	assert.NoError(t, s.Done())

	out := buf.String()
	assert.Contains(t, out, `<text x="3" y="4" transform="rotate(-45,3,4)" font-size="9">Jan</text>`)
	assert.NotContains(t, out, "text-anchor")
}

func TestSVGStickyError(t *testing.T) {
	s := NewSVG(failWriter{}, 10, 10)
	s.Rect(0, 0, 1, 1).Fill()
	s.Text(0, 0, TextOpts{}, "x")
	assert.ErrorIs(t, s.Done(), errWrite)
}
