// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlbench/config"
	"github.com/katalvlaran/lvlbench/helper"
	"github.com/katalvlaran/lvlbench/sorts"
	"github.com/katalvlaran/lvlbench/stats"
)

// TimeSeries is the Statistics name of the per-run wall time (ms).
const TimeSeries = "time"

// ErrNilHelper indicates Run or Sweep without a Helper.
var ErrNilHelper = errors.New("bench: helper is nil")

// Option configures a Benchmark.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	sorterOpts []sorts.Option
	clock      func() time.Time
}

// WithLogger sets the logger (nil ⇒ zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithSorterOptions forwards options to sorts.New (e.g. sorts.WithCutoff).
func WithSorterOptions(opts ...sorts.Option) Option {
	return func(o *options) { o.sorterOpts = append(o.sorterOpts, opts...) }
}

// WithClock replaces time.Now for timing runs.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bench: WithClock: now must not be nil")
	}

	return func(o *options) { o.clock = now }
}

// Benchmark measures one algorithm over generated inputs of type X.
type Benchmark[X any] struct {
	algorithm string
	gen       helper.Generator[X]
	cfg       config.Config
	opts      options
}

// New validates the algorithm name against the sorts registry and the
// normalizer names of cfg (config.ErrBadNormalizer).
func New[X any](algorithm string, gen helper.Generator[X], cfg config.Config, opts ...Option) (*Benchmark[X], error) {
	if gen == nil {
		return nil, fmt.Errorf("bench: New: %w", helper.ErrNilGenerator)
	}
	if !knownAlgorithm(algorithm) {
		return nil, fmt.Errorf("bench: New(%q): %w", algorithm, sorts.ErrUnknownAlgorithm)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench: New: %w", err)
	}

	o := options{logger: zap.NewNop(), clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Benchmark[X]{algorithm: algorithm, gen: gen, cfg: cfg.Clone(), opts: o}, nil
}

func knownAlgorithm(name string) bool {
	for _, n := range sorts.Names() {
		if n == name {
			return true
		}
	}

	return false
}

// Algorithm returns the benchmarked algorithm name.
func (b *Benchmark[X]) Algorithm() string { return b.algorithm }

// Run measures Config.Runs runs on h at h.N().
// Implementation:
//   - Stage 1: build the sorter over h.
//   - Stage 2: up to 1+MaxRetries attempts of measureOnce; stop at the first
//     attempt whose time series is within NoiseThreshold.
//   - Stage 3: wrap the last attempt into a Report.
//
// Errors:
//   - ErrNilHelper; helper errors (ErrInvalidSize, ErrNoComparator,
//     ErrNotSorted, …) abort immediately and are never retried.
func (b *Benchmark[X]) Run(h *helper.Helper[X]) (Report, error) {
	if h == nil {
		return Report{}, ErrNilHelper
	}
	sorter, err := sorts.New(b.algorithm, h, b.opts.sorterOpts...)
	if err != nil {
		return Report{}, err
	}

	log := b.opts.logger.With(
		zap.String("algorithm", b.algorithm),
		zap.String("description", h.Description()),
		zap.Int("n", h.N()),
	)

	var timing *stats.Statistics
	attempts := 0
	for attempts <= b.cfg.MaxRetries {
		attempts++
		timing, err = b.measureOnce(h, sorter)
		if err != nil {
			log.Error("benchmark run failed", zap.Int("attempt", attempts), zap.Error(err))
			return Report{}, err
		}
		cv := timing.CoefficientOfVariation()
		if cv <= b.cfg.NoiseThreshold {
			break
		}
		log.Warn("timing too noisy",
			zap.Int("attempt", attempts),
			zap.Float64("cv", cv),
			zap.Float64("threshold", b.cfg.NoiseThreshold))
	}

	rep := newReport(b.algorithm, h, timing, attempts, timing.CoefficientOfVariation() > b.cfg.NoiseThreshold)
	log.Info("benchmark complete",
		zap.String("id", rep.ID.String()),
		zap.Int("attempts", rep.Attempts),
		zap.Bool("noisy", rep.Noisy),
		zap.Float64("mean_ms", timing.Mean()),
		zap.Float64("normalized_time", timing.NormalizedMean()))

	return rep, nil
}

// measureOnce performs one full set of runs; each attempt starts from a
// fresh StatPack so discarded attempts leave no trace.
func (b *Benchmark[X]) measureOnce(h *helper.Helper[X], sorter sorts.Sorter[X]) (*stats.Statistics, error) {
	n, runs := h.N(), b.cfg.Runs
	if err := h.InitRuns(n, runs); err != nil {
		return nil, err
	}
	timing, err := stats.NewStatistics(TimeSeries, b.cfg.Normalizer(TimeSeries), runs, n)
	if err != nil {
		return nil, err
	}

	for r := 0; r < runs; r++ {
		xs, err := h.RandomN(b.gen)
		if err != nil {
			return nil, err
		}
		h.PreProcess(xs)

		start := b.opts.clock()
		err = sorter.Sort(xs)
		elapsed := b.opts.clock().Sub(start)
		if err != nil {
			return nil, fmt.Errorf("bench: run %d: %w", r, err)
		}

		if err := h.PostProcess(xs); err != nil {
			return nil, fmt.Errorf("bench: run %d: %w", r, err)
		}
		if err := timing.Add(float64(elapsed) / float64(time.Millisecond)); err != nil {
			return nil, err
		}
	}

	return timing, nil
}
