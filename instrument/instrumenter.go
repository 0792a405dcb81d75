// SPDX-License-Identifier: MIT

package instrument

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlbench/stats"
)

// ErrNotInitialized indicates GatherStatistic on a Counting instrumenter
// whose StatPack was never prepared with Init.
var ErrNotInitialized = errors.New("instrument: statistics not initialized (call Init with a run count)")

// Instrumenter is the counting strategy behind a Helper.
type Instrumenter interface {
	// Instrumented reports whether increments are actually recorded.
	Instrumented() bool

	// Increment adds delta to the counter for q.
	Increment(q Quantity, delta int64)

	// Observe records a derived per-run value (e.g. Inversions) to be
	// gathered with the counters of the current run.
	Observe(name string, v float64)

	// Counts returns a snapshot of the live counters.
	Counts() Counts

	// Reset discards the current run's counters and observations.
	Reset()

	// Init prepares a fresh StatPack of nRuns runs at size n with one series
	// per entry of normalizers, and resets the counters.
	Init(n, nRuns int, normalizers map[string]stats.Normalizer) error

	// GatherStatistic appends the current run to the StatPack and starts a
	// new run with fresh counters.
	GatherStatistic() error

	// StatPack returns the pack being filled. Never nil.
	StatPack() *stats.StatPack

	// Clone returns an instrumenter of the same variant with no counters
	// and no pack. Nothing is shared with the receiver.
	Clone() Instrumenter
}

// New selects the variant: Counting when instrumented, Noop otherwise.
func New(instrumented bool) Instrumenter {
	if instrumented {
		return NewCounting()
	}

	return Noop{}
}

// emptyPack is the placeholder returned when nothing is being measured.
func emptyPack() *stats.StatPack {
	// n=1, nRuns=1 are always valid.
	p, _ := stats.NewStatPack(1, 1, nil)

	return p
}

// ---------- Noop ----------

// Noop discards everything. Its zero value is ready to use.
type Noop struct{}

var _ Instrumenter = Noop{}

func (Noop) Instrumented() bool                               { return false }
func (Noop) Increment(Quantity, int64)                        {}
func (Noop) Observe(string, float64)                          {}
func (Noop) Counts() Counts                                   { return Counts{} }
func (Noop) Reset()                                           {}
func (Noop) Init(int, int, map[string]stats.Normalizer) error { return nil }
func (Noop) GatherStatistic() error                           { return nil }
func (Noop) StatPack() *stats.StatPack                        { return emptyPack() }
func (Noop) Clone() Instrumenter                              { return Noop{} }

// ---------- Counting ----------

// Counting keeps one monotonically increasing counter per Quantity for the
// current run.
type Counting struct {
	counts   Counts
	observed map[string]float64
	pack     *stats.StatPack
}

var _ Instrumenter = (*Counting)(nil)

// NewCounting returns a Counting instrumenter with zero counters and no pack.
func NewCounting() *Counting {
	return &Counting{}
}

// Instrumented is always true.
func (c *Counting) Instrumented() bool { return true }

// Increment adds delta to q. Invalid quantities are ignored.
func (c *Counting) Increment(q Quantity, delta int64) {
	if q.Valid() {
		c.counts[q] += delta
	}
}

// Observe stores v under name for the current run; a later Observe of the
// same name in the same run overwrites it.
func (c *Counting) Observe(name string, v float64) {
	if c.observed == nil {
		c.observed = make(map[string]float64, 1)
	}
	c.observed[name] = v
}

// Counts returns a copy of the live counters.
func (c *Counting) Counts() Counts { return c.counts }

// Reset replaces the counters and drops observations.
func (c *Counting) Reset() {
	c.counts = Counts{}
	c.observed = nil
}

// Init builds a new StatPack and resets the run.
func (c *Counting) Init(n, nRuns int, normalizers map[string]stats.Normalizer) error {
	pack, err := stats.NewStatPack(n, nRuns, normalizers)
	if err != nil {
		return fmt.Errorf("Counting.Init: %w", err)
	}
	c.pack = pack
	c.Reset()

	return nil
}

// GatherStatistic snapshots the counters of every registered quantity plus
// the run's observations into the pack, then starts a fresh run.
// Implementation:
//   - Stage 1: require a pack (ErrNotInitialized).
//   - Stage 2: build the snapshot; counters whose name is not registered in
//     the pack are skipped, observations are passed through unfiltered so a
//     misspelt Observe name fails with stats.ErrUnknownQuantity.
//   - Stage 3: Gather; on success replace counters with a new zero array.
//
// On a Gather error the counters are kept so the caller may inspect them.
func (c *Counting) GatherStatistic() error {
	if c.pack == nil {
		return fmt.Errorf("Counting.GatherStatistic: %w", ErrNotInitialized)
	}

	snapshot := make(map[string]float64, int(numQuantities)+len(c.observed))
	for i, v := range c.counts {
		name := quantityNames[i]
		if c.pack.Has(name) {
			snapshot[name] = float64(v)
		}
	}
	for name, v := range c.observed {
		snapshot[name] = v
	}

	if err := c.pack.Gather(snapshot); err != nil {
		return fmt.Errorf("Counting.GatherStatistic: %w", err)
	}
	c.Reset()

	return nil
}

// StatPack returns the active pack, or an empty placeholder before Init.
func (c *Counting) StatPack() *stats.StatPack {
	if c.pack == nil {
		return emptyPack()
	}

	return c.pack
}

// Clone returns a new Counting with zero counters and no pack.
func (c *Counting) Clone() Instrumenter { return NewCounting() }
