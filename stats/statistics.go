// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
)

// Operation tags for error wrapping.
const (
	opNewStatistics = "NewStatistics"
	opAdd           = "Statistics.Add"
)

// Statistics is one named measurement series: one value per run, at most
// nRuns values, normalized against a fixed problem size N.
//
// The zero value is not usable; construct with NewStatistics.
type Statistics struct {
	name       string
	normalizer Normalizer
	nRuns      int
	n          int
	values     []float64
}

// NewStatistics creates an empty series.
// Implementation:
//   - Stage 1: validate nRuns ≥ 1, n ≥ 1 and normalizer != nil.
//   - Stage 2: preallocate the value buffer for exactly nRuns entries.
//
// Errors:
//   - ErrBadRuns, ErrBadSize, ErrNilNormalizer.
//
// Complexity:
//   - Time O(1), Space O(nRuns).
func NewStatistics(name string, normalizer Normalizer, nRuns, n int) (*Statistics, error) {
	if nRuns < 1 {
		return nil, statsErrorf(opNewStatistics, ErrBadRuns)
	}
	if n < 1 {
		return nil, statsErrorf(opNewStatistics, ErrBadSize)
	}
	if normalizer == nil {
		return nil, statsErrorf(opNewStatistics, ErrNilNormalizer)
	}

	return &Statistics{
		name:       name,
		normalizer: normalizer,
		nRuns:      nRuns,
		n:          n,
		values:     make([]float64, 0, nRuns),
	}, nil
}

// Add appends one measurement.
// Once Count() == Runs() the value is rejected with ErrRunBudgetExceeded and
// the series is unchanged.
func (s *Statistics) Add(v float64) error {
	if len(s.values) >= s.nRuns {
		return statsErrorf(opAdd, fmt.Errorf("%s: %w", s.name, ErrRunBudgetExceeded))
	}
	s.values = append(s.values, v)

	return nil
}

// Name returns the quantity name of the series.
func (s *Statistics) Name() string { return s.name }

// Count returns the number of recorded values.
func (s *Statistics) Count() int { return len(s.values) }

// Runs returns the configured run budget.
func (s *Statistics) Runs() int { return s.nRuns }

// N returns the problem size used for normalization.
func (s *Statistics) N() int { return s.n }

// Complete reports whether the series holds exactly Runs() values.
func (s *Statistics) Complete() bool { return len(s.values) == s.nRuns }

// Values returns a copy of the recorded values in insertion order.
func (s *Statistics) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// Reset discards all recorded values; name, N, nRuns and normalizer stay.
func (s *Statistics) Reset() {
	s.values = s.values[:0]
}

// Mean returns the arithmetic mean, or 0 for an empty series.
func (s *Statistics) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.values {
		sum += v
	}

	return sum / float64(len(s.values))
}

// StdDev returns the population standard deviation around Mean().
// Implementation:
//   - Stage 1: mean in a first pass.
//   - Stage 2: Σ(v−mean)² in a second pass, divided by count (not count−1).
//
// Returns 0 for an empty series; a constant series yields exactly 0.
//
// Complexity:
//   - Time O(count), Space O(1).
func (s *Statistics) StdDev() float64 {
	count := len(s.values)
	if count == 0 {
		return 0
	}
	mean := s.Mean()
	var sumSq, d float64
	for _, v := range s.values {
		d = v - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(count))
}

// NormalizedMean returns Mean() / normalizer(N).
func (s *Statistics) NormalizedMean() float64 {
	return s.Mean() / s.normalizer(s.n)
}

// NormalizedStdDev returns StdDev() / normalizer(N).
func (s *Statistics) NormalizedStdDev() float64 {
	return s.StdDev() / s.normalizer(s.n)
}

// CoefficientOfVariation returns StdDev()/|Mean()|, or 0 when the mean is 0.
// The benchmark driver compares it against its noise threshold.
func (s *Statistics) CoefficientOfVariation() float64 {
	mean := s.Mean()
	if mean == 0 {
		return 0
	}

	return s.StdDev() / math.Abs(mean)
}

// Min returns the smallest recorded value, or 0 for an empty series.
func (s *Statistics) Min() float64 {
	if len(s.values) == 0 {
		return 0
	}
	m := s.values[0]
	for _, v := range s.values[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// Max returns the largest recorded value, or 0 for an empty series.
func (s *Statistics) Max() float64 {
	if len(s.values) == 0 {
		return 0
	}
	m := s.values[0]
	for _, v := range s.values[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

// String renders a stable, fixed-precision summary:
//
//	<name>: count=<d>, mean=<.2f>, stdDev=<.2f>, normalizedMean=<.4f>
func (s *Statistics) String() string {
	return fmt.Sprintf("%s: count=%d, mean=%.2f, stdDev=%.2f, normalizedMean=%.4f",
		s.name, len(s.values), s.Mean(), s.StdDev(), s.NormalizedMean())
}
