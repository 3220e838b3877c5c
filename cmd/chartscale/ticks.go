// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emerald-tower/charts/internal/config"
	"github.com/emerald-tower/charts/scale"
)

func newTicksCmd(a *app) *cobra.Command {
	var (
		ticks      int
		minStep    float64
		multipleOf float64
	)
	cmd := &cobra.Command{
		Use:   "ticks MIN MAX",
		Short: "Print the nice axis domain and ticks covering MIN..MAX",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("bad MIN: %w", err)
			}
			max, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("bad MAX: %w", err)
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("ticks") {
				cfg.Ticks = ticks
			}
			if cmd.Flags().Changed("min-step") {
				cfg.MinStep = minStep
			}
			if cmd.Flags().Changed("multiple-of") {
				cfg.MultipleOf = multipleOf
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			d := scale.NiceDomain(min, max, cfg.Ticks, cfg.Options())
			a.logger.Debug("computed domain",
				zap.Float64("min", d.Min),
				zap.Float64("max", d.Max),
				zap.Float64("step", d.Step))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%g %g %g\n", d.Min, d.Max, d.Step)
			for _, t := range d.Ticks() {
				fmt.Fprintf(out, "%g\n", t)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", scale.DefaultTargetTicks, fmt.Sprintf("target number of tick intervals (at most %d)", config.MaxTicks))
	cmd.Flags().Float64Var(&minStep, "min-step", 1, "smallest tick step")
	cmd.Flags().Float64Var(&multipleOf, "multiple-of", 0, "force steps to be a multiple of this value")
	return cmd
}
