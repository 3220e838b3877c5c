// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads chart configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/emerald-tower/charts/chart"
	"github.com/emerald-tower/charts/scale"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid chart configuration")

// MaxTicks bounds the target tick count. The tick list, and the work
// to build it, grows with the target.
const MaxTicks = 1000

type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Margin Margin `yaml:"margin"`

	Kind  string `yaml:"kind"`
	Title string `yaml:"title"`

	Ticks      int     `yaml:"ticks"`
	MinStep    float64 `yaml:"min_step"`
	MultipleOf float64 `yaml:"multiple_of"`
	YScale     string  `yaml:"y_scale"`

	LabelFormat string  `yaml:"label_format"`
	FontSize    float64 `yaml:"font_size"`
	Colors      Colors  `yaml:"colors"`
}

type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Colors are CSS hex colors, "#rrggbb" or "#rgb".
type Colors struct {
	Line string `yaml:"line"`
	Bar  string `yaml:"bar"`
	Grid string `yaml:"grid"`
	Text string `yaml:"text"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Width:       840,
		Height:      360,
		Margin:      Margin{Top: 40, Right: 20, Bottom: 40, Left: 64},
		Kind:        "line",
		Ticks:       scale.DefaultTargetTicks,
		YScale:      "linear",
		LabelFormat: "%g",
		FontSize:    12,
		Colors: Colors{
			Line: "#1f77b4",
			Bar:  "#2ca02c",
			Grid: "#dddddd",
			Text: "#000000",
		},
	}
}

// Load reads the YAML file at path over Default and validates the
// result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	invalid := func(format string, a ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...))
	}
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("size %dx%d must be positive", c.Width, c.Height)
	}
	m := c.Margin
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return invalid("margins must not be negative")
	}
	if m.Left+m.Right >= float64(c.Width) || m.Top+m.Bottom >= float64(c.Height) {
		return invalid("margins leave no plot area in %dx%d", c.Width, c.Height)
	}
	if c.Ticks < 0 || c.Ticks > MaxTicks {
		return invalid("ticks %d must be between 0 and %d", c.Ticks, MaxTicks)
	}
	if c.MinStep < 0 || c.MultipleOf < 0 {
		return invalid("min_step and multiple_of must not be negative")
	}
	if _, err := parseKind(c.Kind); err != nil {
		return invalid("%v", err)
	}
	if c.YScale != "linear" && c.YScale != "log" {
		return invalid("unknown y_scale %q", c.YScale)
	}
	for name, s := range map[string]string{"line": c.Colors.Line, "bar": c.Colors.Bar, "grid": c.Colors.Grid, "text": c.Colors.Text} {
		if _, err := ParseColor(s); err != nil {
			return invalid("colors.%s: %v", name, err)
		}
	}
	return nil
}

// Options returns the tick step constraints of c.
func (c Config) Options() scale.Options {
	return scale.Options{MinStep: c.MinStep, MultipleOf: c.MultipleOf}
}

// Style converts c to a chart style.
func (c Config) Style() (chart.Style, error) {
	if err := c.Validate(); err != nil {
		return chart.Style{}, err
	}
	kind, _ := parseKind(c.Kind)
	col := func(s string) color.Color {
		cc, _ := ParseColor(s)
		return cc
	}
	return chart.Style{
		Width:       c.Width,
		Height:      c.Height,
		Margin:      chart.Margin(c.Margin),
		Kind:        kind,
		Title:       c.Title,
		Ticks:       c.Ticks,
		Options:     c.Options(),
		LogScale:    c.YScale == "log",
		LabelFormat: c.LabelFormat,
		FontSize:    c.FontSize,
		LineColor:   col(c.Colors.Line),
		BarColor:    col(c.Colors.Bar),
		GridColor:   col(c.Colors.Grid),
		TextColor:   col(c.Colors.Text),
	}, nil
}

func parseKind(s string) (chart.Kind, error) {
	switch s {
	case "line":
		return chart.KindLine, nil
	case "bar":
		return chart.KindBar, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// ParseColor parses a "#rrggbb" or "#rgb" color.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) || (len(hex) != 6 && len(hex) != 3) {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
