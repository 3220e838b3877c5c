// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emerald-tower/charts/chart"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		input, output string
		kind, title   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a label,value series as an SVG or PNG chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if kind != "" {
				cfg.Kind = kind
			}
			if title != "" {
				cfg.Title = title
			}
			style, err := cfg.Style()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			series, err := chart.ReadCSV(in)
			if err != nil {
				return err
			}
			if series.Name == "" && input != "" && input != "-" {
				series.Name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			}
			a.logger.Info("read series", zap.String("series", series.Name), zap.Int("points", series.Len()))

			r := chart.NewRenderer(style, a.logger)
			if output == "" || output == "-" {
				return r.RenderSVG(cmd.OutOrStdout(), series)
			}
			return writeFile(output, func(w io.Writer) error {
				if strings.EqualFold(filepath.Ext(output), ".png") {
					return r.RenderPNG(w, series)
				}
				return r.RenderSVG(w, series)
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "read series from `file` (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write chart to `file` (default stdout)")
	cmd.Flags().StringVar(&kind, "kind", "", "chart kind, line or bar (overrides config)")
	cmd.Flags().StringVar(&title, "title", "", "chart title (overrides config)")
	return cmd
}

// writeFile writes path with write, removing it if any step fails.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	fail := func(err error) error {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return fail(err)
	}
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
