// SPDX-License-Identifier: MIT

// Package config holds the immutable configuration snapshot a Helper and the
// benchmark driver are built from, and loads it from TOML.
//
// Only a small, enumerated set of options is recognised. Absent options keep
// their documented defaults; unknown options are logged and ignored, never
// fatal. The snapshot is passed explicitly (there is no global config).
//
// File layout:
//
//	[helper]
//	instrument       = true     # counting vs. no-op instrumentation
//	count_inversions = false    # record inversions of each input
//	seed             = 0        # 0 ⇒ DefaultSeed
//
//	[benchmark]
//	runs            = 10
//	noise_threshold = 0.25      # max coefficient of variation of run time
//	max_retries     = 3
//	sizes           = [1000, 2000, 4000]
//	parallelism     = 1
//
//	[normalizers]               # quantity → "1" | "logn" | "n" | "nlogn" | "n^2" | "n^2/4"
//	compares = "nlogn"
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlbench/stats"
)

// Defaults (single source of truth).
const (
	DefaultInstrument      = false
	DefaultCountInversions = false
	DefaultSeed            = int64(1)
	DefaultRuns            = 10
	DefaultNoiseThreshold  = 0.25
	DefaultMaxRetries      = 3
	DefaultParallelism     = 1

	// DefaultNormalizer applies to any quantity without an explicit entry.
	DefaultNormalizer = stats.NameLinearithmic
)

// ErrBadNormalizer indicates a [normalizers] entry naming an unknown function.
// It is the one option error that is fatal: a wrong normalizer silently
// misclassifies complexity.
var ErrBadNormalizer = errors.New("config: unknown normalizer")

// Config is a value snapshot. A plain copy shares the Sizes slice and the
// Normalizers map; use Clone before mutating either.
type Config struct {
	Instrument      bool
	CountInversions bool
	Seed            int64

	Runs           int
	NoiseThreshold float64
	MaxRetries     int
	Sizes          []int
	Parallelism    int

	// Normalizers maps quantity names to canonical normalizer names.
	Normalizers map[string]string
}

// defaultNormalizers are the complexity classes of a comparison sort.
var defaultNormalizers = map[string]string{
	"compares":   stats.NameLinearithmic,
	"swaps":      stats.NameLinearithmic,
	"copies":     stats.NameLinearithmic,
	"hits":       stats.NameLinearithmic,
	"lookups":    stats.NameLinearithmic,
	"fixes":      stats.NameQuadraticQuarter,
	"inversions": stats.NameQuadraticQuarter,
	"time":       stats.NameLinearithmic,
}

// Default returns the documented defaults.
func Default() Config {
	norms := make(map[string]string, len(defaultNormalizers))
	for k, v := range defaultNormalizers {
		norms[k] = v
	}

	return Config{
		Instrument:      DefaultInstrument,
		CountInversions: DefaultCountInversions,
		Seed:            DefaultSeed,
		Runs:            DefaultRuns,
		NoiseThreshold:  DefaultNoiseThreshold,
		MaxRetries:      DefaultMaxRetries,
		Parallelism:     DefaultParallelism,
		Normalizers:     norms,
	}
}

// Instrumented returns a copy with Instrument=true.
func (c Config) Instrumented() Config {
	c = c.Clone()
	c.Instrument = true

	return c
}

// Clone deep-copies the slice and map fields.
func (c Config) Clone() Config {
	if c.Sizes != nil {
		c.Sizes = append([]int(nil), c.Sizes...)
	}
	if c.Normalizers != nil {
		norms := make(map[string]string, len(c.Normalizers))
		for k, v := range c.Normalizers {
			norms[k] = v
		}
		c.Normalizers = norms
	}

	return c
}

// Normalizer resolves the normalizer for quantity; missing or unknown
// entries fall back to DefaultNormalizer.
func (c Config) Normalizer(quantity string) stats.Normalizer {
	if name, ok := c.Normalizers[quantity]; ok {
		if f, err := stats.NormalizerByName(name); err == nil {
			return f
		}
	}
	f, _ := stats.NormalizerByName(DefaultNormalizer)

	return f
}

// NormalizersFor resolves the normalizer of every given quantity name.
func (c Config) NormalizersFor(quantities ...string) map[string]stats.Normalizer {
	out := make(map[string]stats.Normalizer, len(quantities))
	for _, q := range quantities {
		out[q] = c.Normalizer(q)
	}

	return out
}

// Validate checks the normalizer names; all other options are coerced to
// defaults at load time.
func (c Config) Validate() error {
	keys := make([]string, 0, len(c.Normalizers))
	for k := range c.Normalizers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := stats.NormalizerByName(c.Normalizers[k]); err != nil {
			return fmt.Errorf("config: normalizers.%s=%q: %w", k, c.Normalizers[k], ErrBadNormalizer)
		}
	}

	return nil
}
