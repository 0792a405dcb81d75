// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// fileConfig mirrors the TOML layout. Pointer fields distinguish "absent"
// from "explicit zero".
type fileConfig struct {
	Helper struct {
		Instrument      *bool  `toml:"instrument"`
		CountInversions *bool  `toml:"count_inversions"`
		Seed            *int64 `toml:"seed"`
	} `toml:"helper"`

	Benchmark struct {
		Runs           *int     `toml:"runs"`
		NoiseThreshold *float64 `toml:"noise_threshold"`
		MaxRetries     *int     `toml:"max_retries"`
		Sizes          []int    `toml:"sizes"`
		Parallelism    *int     `toml:"parallelism"`
	} `toml:"benchmark"`

	Normalizers map[string]string `toml:"normalizers"`
}

// Load reads a TOML file. A nil logger is replaced by zap.NewNop().
func Load(path string, logger *zap.Logger) (Config, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	return resolve(fc, md, nopIfNil(logger).With(zap.String("file", path)))
}

// Decode parses TOML text. A nil logger is replaced by zap.NewNop().
func Decode(text string, logger *zap.Logger) (Config, error) {
	var fc fileConfig
	md, err := toml.Decode(text, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return resolve(fc, md, nopIfNil(logger))
}

// resolve overlays the decoded file on Default().
// Implementation:
//   - Stage 1: warn about every undecoded (unknown) key.
//   - Stage 2: copy present options; coerce out-of-range values to defaults with a warning.
//   - Stage 3: merge normalizers over the defaults and validate their names.
func resolve(fc fileConfig, md toml.MetaData, logger *zap.Logger) (Config, error) {
	for _, key := range md.Undecoded() {
		logger.Warn("ignoring unknown config option", zap.String("key", key.String()))
	}

	cfg := Default()

	if v := fc.Helper.Instrument; v != nil {
		cfg.Instrument = *v
	}
	if v := fc.Helper.CountInversions; v != nil {
		cfg.CountInversions = *v
	}
	if v := fc.Helper.Seed; v != nil {
		if *v == 0 {
			cfg.Seed = DefaultSeed
		} else {
			cfg.Seed = *v
		}
	}

	if v := fc.Benchmark.Runs; v != nil {
		if *v < 1 {
			logger.Warn("runs must be positive, using default", zap.Int("runs", *v), zap.Int("default", DefaultRuns))
		} else {
			cfg.Runs = *v
		}
	}
	if v := fc.Benchmark.NoiseThreshold; v != nil {
		if *v <= 0 {
			logger.Warn("noise_threshold must be positive, using default",
				zap.Float64("noise_threshold", *v), zap.Float64("default", DefaultNoiseThreshold))
		} else {
			cfg.NoiseThreshold = *v
		}
	}
	if v := fc.Benchmark.MaxRetries; v != nil {
		if *v < 0 {
			logger.Warn("max_retries must be non-negative, using default", zap.Int("max_retries", *v))
		} else {
			cfg.MaxRetries = *v
		}
	}
	if v := fc.Benchmark.Parallelism; v != nil {
		if *v < 1 {
			logger.Warn("parallelism must be positive, using default", zap.Int("parallelism", *v))
		} else {
			cfg.Parallelism = *v
		}
	}
	for _, n := range fc.Benchmark.Sizes {
		if n < 1 {
			logger.Warn("dropping non-positive size", zap.Int("size", n))
			continue
		}
		cfg.Sizes = append(cfg.Sizes, n)
	}

	for k, v := range fc.Normalizers {
		cfg.Normalizers[k] = v
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
