// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"sort"
	"strings"
)

// Operation tags for error wrapping.
const (
	opNewStatPack = "NewStatPack"
	opGet         = "StatPack.Get"
	opGather      = "StatPack.Gather"
)

// StatPack maps quantity names ("compares", "swaps", …) to their series.
// Every series in one pack shares N and nRuns, and all series advance
// together: the i-th value of any two series belongs to the same run.
type StatPack struct {
	n      int
	nRuns  int
	count  int
	names  []string // sorted, fixed at construction
	series map[string]*Statistics
}

// NewStatPack registers one series per entry of normalizers.
// Implementation:
//   - Stage 1: validate n and nRuns (same rules as NewStatistics).
//   - Stage 2: create each series in name order.
//
// An empty normalizers map yields an empty pack (used as a placeholder by
// the no-op instrumenter).
//
// Errors:
//   - ErrBadSize, ErrBadRuns, ErrNilNormalizer (wrapped with the series name).
//
// Complexity:
//   - Time O(q log q), Space O(q·nRuns) for q series.
func NewStatPack(n, nRuns int, normalizers map[string]Normalizer) (*StatPack, error) {
	if n < 1 {
		return nil, statsErrorf(opNewStatPack, ErrBadSize)
	}
	if nRuns < 1 {
		return nil, statsErrorf(opNewStatPack, ErrBadRuns)
	}

	names := make([]string, 0, len(normalizers))
	for name := range normalizers {
		names = append(names, name)
	}
	sort.Strings(names)

	p := &StatPack{
		n:      n,
		nRuns:  nRuns,
		names:  names,
		series: make(map[string]*Statistics, len(names)),
	}
	for _, name := range names {
		s, err := NewStatistics(name, normalizers[name], nRuns, n)
		if err != nil {
			return nil, statsErrorf(opNewStatPack, fmt.Errorf("%s: %w", name, err))
		}
		p.series[name] = s
	}

	return p, nil
}

// Get returns the series registered under name. The series is live: an
// Add or Reset on it puts it out of step and makes the next Gather fail
// with ErrSeriesOutOfStep.
// Unregistered names fail with ErrUnknownQuantity rather than returning an
// empty series, so that typos in instrumentation code surface immediately.
func (p *StatPack) Get(name string) (*Statistics, error) {
	s, ok := p.series[name]
	if !ok {
		return nil, statsErrorf(opGet, fmt.Errorf("%q: %w", name, ErrUnknownQuantity))
	}

	return s, nil
}

// Gather appends one run to every registered series.
// Implementation:
//   - Stage 1: reject a full pack (ErrRunBudgetExceeded).
//   - Stage 2: reject a series whose own count differs from the pack's
//     (ErrSeriesOutOfStep).
//   - Stage 3: reject snapshot keys that are not registered (ErrUnknownQuantity).
//   - Stage 4: append; registered names missing from snapshot record 0.
//
// All checks run before any series is touched, so a failed Gather leaves
// the pack exactly as it was.
//
// Complexity:
//   - Time O(q + len(snapshot)), Space O(1) amortized.
func (p *StatPack) Gather(snapshot map[string]float64) error {
	if p.count >= p.nRuns {
		return statsErrorf(opGather, ErrRunBudgetExceeded)
	}
	for _, name := range p.names {
		if c := p.series[name].Count(); c != p.count {
			return statsErrorf(opGather, fmt.Errorf("%q has %d values, pack has %d: %w", name, c, p.count, ErrSeriesOutOfStep))
		}
	}
	for name := range snapshot {
		if _, ok := p.series[name]; !ok {
			return statsErrorf(opGather, fmt.Errorf("%q: %w", name, ErrUnknownQuantity))
		}
	}

	for _, name := range p.names {
		if err := p.series[name].Add(snapshot[name]); err != nil {
			return statsErrorf(opGather, fmt.Errorf("%q: %w", name, err))
		}
	}
	p.count++

	return nil
}

// Names returns the registered quantity names in ascending order.
func (p *StatPack) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}

// Has reports whether name is registered.
func (p *StatPack) Has(name string) bool {
	_, ok := p.series[name]

	return ok
}

// N returns the shared problem size.
func (p *StatPack) N() int { return p.n }

// Runs returns the shared run budget.
func (p *StatPack) Runs() int { return p.nRuns }

// Count returns the number of gathered runs.
func (p *StatPack) Count() int { return p.count }

// Complete reports whether Count() == Runs().
func (p *StatPack) Complete() bool { return p.count == p.nRuns }

// Empty reports whether the pack has no registered series.
func (p *StatPack) Empty() bool { return len(p.names) == 0 }

// String renders a header line followed by one Statistics line per series
// in name order.
func (p *StatPack) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "StatPack{N=%d, runs=%d/%d}", p.n, p.count, p.nRuns)
	for _, name := range p.names {
		sb.WriteString("\n  ")
		sb.WriteString(p.series[name].String())
	}

	return sb.String()
}
