// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartscale computes nice axis ticks and renders chart
// series for the Emerald Tower dashboard reports.
//
// Usage
//
// To print the axis bounds and ticks for a range of values, run
//
//	chartscale ticks 0 980 --multiple-of 5
//
// which prints the nice domain as "min max step" followed by one tick
// per line.
//
// To render a series of label,value records as a chart, run
//
//	chartscale render -i invoices.csv -o invoices.svg
//
// The output format follows the extension of -o: ".png" writes a PNG
// image, anything else writes SVG. Without -i, the series is read
// from standard input; without -o, SVG is written to standard output.
// Chart layout is read from the YAML file named by --config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emerald-tower/charts/internal/config"
)

type app struct {
	verbose    bool
	configPath string

	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "chartscale",
		Short:         "Compute nice chart axes and render chart series",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "read chart configuration from YAML `file`")

	root.AddCommand(newTicksCmd(a), newRenderCmd(a))
	return root
}

// loadConfig returns the configuration named by --config, or the
// defaults if none was given.
func (a *app) loadConfig() (config.Config, error) {
	if a.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, err
	}
	a.logger.Debug("loaded config", zap.String("path", a.configPath))
	return cfg, nil
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chartscale:", err)
		os.Exit(1)
	}
}
