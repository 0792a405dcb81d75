// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlbench/bench"
	"github.com/katalvlaran/lvlbench/config"
	"github.com/katalvlaran/lvlbench/helper"
	"github.com/katalvlaran/lvlbench/promexport"
	"github.com/katalvlaran/lvlbench/sorts"
)

// Input element types accepted by --input.
const (
	inputInt     = "int"
	inputFloat   = "float64"
	inputString  = "string"
	stringLength = 12
)

var defaultSizes = []int{1000, 2000, 4000, 8000}

type runOptions struct {
	configPath string
	algorithm  string
	input      string
	sizes      []int
	runs       int
	seed       int64
	instrument bool
	inversions bool
	metrics    bool
	namespace  string
}

func newRunCmd(logConf *LogConfig) *cobra.Command {
	var o runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark one algorithm over a sweep of sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(*logConf)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runBench(cmd, o, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML configuration file")
	f.StringVarP(&o.algorithm, "algorithm", "a", sorts.NameMerge, "algorithm to benchmark (see 'lvlbench list')")
	f.StringVar(&o.input, "input", inputInt, "element type: int, float64 or string")
	f.IntSliceVar(&o.sizes, "sizes", nil, "problem sizes, overrides [benchmark].sizes")
	f.IntVar(&o.runs, "runs", config.DefaultRuns, "runs per size, overrides [benchmark].runs")
	f.Int64Var(&o.seed, "seed", config.DefaultSeed, "RNG seed, overrides [helper].seed")
	f.BoolVar(&o.instrument, "instrument", false, "count operations, overrides [helper].instrument")
	f.BoolVar(&o.inversions, "inversions", false, "record input inversions, overrides [helper].count_inversions")
	f.BoolVar(&o.metrics, "metrics", false, "print the reports in Prometheus text format after the sweep")
	f.StringVar(&o.namespace, "metrics-namespace", promexport.DefaultNamespace, "Prometheus metric namespace")

	return cmd
}

// resolveConfig loads the file (if any) and applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, o runOptions, logger *zap.Logger) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath, logger); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("sizes") {
		cfg.Sizes = append([]int(nil), o.sizes...)
	}
	if flags.Changed("runs") {
		cfg.Runs = o.runs
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("instrument") {
		cfg.Instrument = o.instrument
	}
	if flags.Changed("inversions") {
		cfg.CountInversions = o.inversions
	}
	if len(cfg.Sizes) == 0 {
		cfg.Sizes = append([]int(nil), defaultSizes...)
	}

	return cfg, cfg.Validate()
}

func runBench(cmd *cobra.Command, o runOptions, logger *zap.Logger) error {
	cfg, err := resolveConfig(cmd, o, logger)
	if err != nil {
		return err
	}
	logger.Info("starting sweep",
		zap.String("algorithm", o.algorithm),
		zap.String("input", o.input),
		zap.Ints("sizes", cfg.Sizes),
		zap.Int("runs", cfg.Runs),
		zap.Bool("instrument", cfg.Instrument))

	var reps []bench.Report
	switch o.input {
	case inputInt:
		reps, err = sweep(cfg, o.algorithm, helper.IntN(1<<30), logger)
	case inputFloat:
		reps, err = sweep(cfg, o.algorithm, helper.Float64s(), logger)
	case inputString:
		reps, err = sweep(cfg, o.algorithm, helper.Strings(stringLength), logger)
	default:
		return fmt.Errorf("unknown --input %q: want %s, %s or %s", o.input, inputInt, inputFloat, inputString)
	}

	collector := promexport.NewCollector(o.namespace)
	out := cmd.OutOrStdout()
	for _, rep := range reps {
		fmt.Fprintln(out, rep)
		collector.Add(rep)
	}
	if err != nil {
		return err
	}

	if !o.metrics {
		return nil
	}

	return writeMetrics(out, collector)
}

func sweep[X constraints.Ordered](cfg config.Config, algorithm string, gen helper.Generator[X], logger *zap.Logger) ([]bench.Report, error) {
	b, err := bench.New(algorithm, gen, cfg, bench.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	base := helper.NewOrdered[X](algorithm, 1, cfg)
	defer base.Close()

	return b.Sweep(base, nil)
}

// writeMetrics gathers c on a private registry and writes the text
// exposition format.
func writeMetrics(w io.Writer, c prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return fmt.Errorf("register collector: %w", err)
	}
	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
