// SPDX-License-Identifier: MIT

package helper

import (
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlbench/config"
	"github.com/katalvlaran/lvlbench/instrument"
	"github.com/katalvlaran/lvlbench/stats"
)

// SwapCopies is the number of element copies charged per Swap. Go's tuple
// assignment exchanges two slots without a caller-visible temporary, so a
// swap is charged 2 copies (and 4 hits: two reads, two writes). The value
// is fixed so statistics stay comparable across algorithm variants.
const SwapCopies = 2

// Method tags for error wrapping.
const (
	methodRandom          = "Random"
	methodRandomN         = "RandomN"
	methodInitRuns        = "InitRuns"
	methodGatherStatistic = "GatherStatistic"
	methodPostProcess     = "PostProcess"
)

// Helper intercepts and (optionally) counts the primitive operations of an
// algorithm over elements of type X.
type Helper[X any] struct {
	description string
	n           int
	cfg         config.Config

	cmp         Comparator[X]
	cmpResolved bool

	seed   int64
	rng    *rand.Rand
	clones uint64 // stream ids handed to clones

	inst instrument.Instrumenter

	scratch []X
	err     error
	closed  bool
}

// New builds a Helper for problem size n. cmp may be nil (see package doc).
// The instrumentation variant is fixed here from cfg.Instrument.
//
// Complexity: O(1).
func New[X any](description string, n int, cmp Comparator[X], cfg config.Config) *Helper[X] {
	seed := normalizeSeed(cfg.Seed)

	return &Helper[X]{
		description: description,
		n:           n,
		cfg:         cfg.Clone(),
		cmp:         cmp,
		cmpResolved: cmp != nil,
		seed:        seed,
		rng:         rngFromSeed(seed),
		inst:        instrument.New(cfg.Instrument),
	}
}

// NewOrdered builds a Helper using the natural order of X.
func NewOrdered[X constraints.Ordered](description string, n int, cfg config.Config) *Helper[X] {
	return New(description, n, OrderedComparator[X](), cfg)
}

// ---------- Comparisons ----------

// comparator returns the effective comparator, resolving the natural order
// on first use. A missing order is recorded once as the sticky error.
func (h *Helper[X]) comparator() Comparator[X] {
	if !h.cmpResolved {
		h.cmp = naturalComparator[X]()
		h.cmpResolved = true
	}
	if h.cmp == nil {
		h.fail(ErrNoComparator)
	}

	return h.cmp
}

// Compare returns -1, 0 or +1 and counts exactly one compare, whatever the
// outcome. Without any ordering it returns 0 and records ErrNoComparator.
func (h *Helper[X]) Compare(a, b X) int {
	h.inst.Increment(instrument.Compares, 1)
	cmp := h.comparator()
	if cmp == nil {
		return 0
	}

	return sign(cmp(a, b))
}

// Less reports a < b (one compare).
func (h *Helper[X]) Less(a, b X) bool {
	return h.Compare(a, b) < 0
}

// CompareAt compares xs[i] with xs[j] (one compare, two hits).
func (h *Helper[X]) CompareAt(xs []X, i, j int) int {
	h.inst.Increment(instrument.Hits, 2)

	return h.Compare(xs[i], xs[j])
}

// ---------- Moves ----------

// Swap exchanges xs[i] and xs[j]: one swap, SwapCopies copies, four hits.
// i == j is still charged; algorithms should not swap in place needlessly.
func (h *Helper[X]) Swap(xs []X, i, j int) {
	h.inst.Increment(instrument.Swaps, 1)
	h.inst.Increment(instrument.Copies, SwapCopies)
	h.inst.Increment(instrument.Hits, 4)
	xs[i], xs[j] = xs[j], xs[i]
}

// SwapConditional swaps xs[i] and xs[j] when xs[i] > xs[j] (i < j assumed)
// and reports whether it did. An adjacent pair (j == i+1) swapped this way
// also counts one fix, since it removes exactly one inversion.
func (h *Helper[X]) SwapConditional(xs []X, i, j int) bool {
	if h.CompareAt(xs, i, j) <= 0 {
		return false
	}
	h.Swap(xs, i, j)
	if j == i+1 {
		h.inst.Increment(instrument.Fixes, 1)
	}

	return true
}

// SwapStableConditional swaps xs[i-1] and xs[i] when strictly out of order,
// counting one fix. Equal elements are never exchanged (stability).
func (h *Helper[X]) SwapStableConditional(xs []X, i int) bool {
	return h.SwapConditional(xs, i-1, i)
}

// Copy sets dst[j] = src[i]: one copy, two hits.
func (h *Helper[X]) Copy(src []X, i int, dst []X, j int) {
	h.inst.Increment(instrument.Copies, 1)
	h.inst.Increment(instrument.Hits, 2)
	dst[j] = src[i]
}

// IncrementHits charges extra array accesses not covered by other methods.
func (h *Helper[X]) IncrementHits(k int) { h.inst.Increment(instrument.Hits, int64(k)) }

// IncrementCopies charges extra element moves.
func (h *Helper[X]) IncrementCopies(k int) { h.inst.Increment(instrument.Copies, int64(k)) }

// IncrementFixes charges inversions removed by a non-swap move (e.g. a
// shifting insertion).
func (h *Helper[X]) IncrementFixes(k int) { h.inst.Increment(instrument.Fixes, int64(k)) }

// IncrementLookups charges symbol-table style probes.
func (h *Helper[X]) IncrementLookups(k int) { h.inst.Increment(instrument.Lookups, int64(k)) }

// ---------- Input generation ----------

// Random returns size freshly generated elements drawn from the Helper's
// RNG stream.
//
// Errors:
//   - ErrInvalidSize when size ≤ 0 (nothing is generated, no empty slice).
//   - ErrNilGenerator, ErrClosed.
//
// Complexity: O(size) time and space.
func (h *Helper[X]) Random(size int, gen Generator[X]) ([]X, error) {
	if h.closed {
		return nil, helperErrorf(methodRandom, ErrClosed)
	}
	if size <= 0 {
		return nil, helperErrorf(methodRandom, fmt.Errorf("size=%d: %w", size, ErrInvalidSize))
	}
	if gen == nil {
		return nil, helperErrorf(methodRandom, ErrNilGenerator)
	}

	xs := make([]X, size)
	for i := range xs {
		xs[i] = gen(h.rng)
	}

	return xs, nil
}

// RandomN is Random with the Helper's own size. ErrNotInitialized when the
// Helper was built or initialized with n ≤ 0.
func (h *Helper[X]) RandomN(gen Generator[X]) ([]X, error) {
	if h.n <= 0 {
		return nil, helperErrorf(methodRandomN, ErrNotInitialized)
	}

	return h.Random(h.n, gen)
}

// Scratch returns an auxiliary buffer of length size, reused between calls
// while its capacity suffices. Contents are unspecified.
func (h *Helper[X]) Scratch(size int) []X {
	if cap(h.scratch) < size {
		h.scratch = make([]X, size)
	}

	return h.scratch[:size]
}

// ---------- Lifecycle ----------

// Init (re)sets the expected problem size and restarts the current run's
// counters. The StatPack, if any, is kept.
func (h *Helper[X]) Init(n int) {
	h.n = n
	h.inst.Reset()
}

// InitRuns sets the problem size and prepares a fresh StatPack for nRuns
// runs. Registered series: every instrument.Quantity, plus
// instrument.Inversions when Config.CountInversions, each with the
// normalizer the Config assigns it.
//
// Errors: ErrInvalidSize, ErrBadRuns, ErrClosed, config.ErrBadNormalizer.
func (h *Helper[X]) InitRuns(n, nRuns int) error {
	if h.closed {
		return helperErrorf(methodInitRuns, ErrClosed)
	}
	if n <= 0 {
		return helperErrorf(methodInitRuns, fmt.Errorf("n=%d: %w", n, ErrInvalidSize))
	}
	if nRuns <= 0 {
		return helperErrorf(methodInitRuns, fmt.Errorf("nRuns=%d: %w", nRuns, ErrBadRuns))
	}
	if err := h.cfg.Validate(); err != nil {
		return helperErrorf(methodInitRuns, err)
	}

	h.n = n
	if err := h.inst.Init(n, nRuns, h.cfg.NormalizersFor(h.quantityNames()...)); err != nil {
		return helperErrorf(methodInitRuns, err)
	}

	return nil
}

func (h *Helper[X]) quantityNames() []string {
	qs := instrument.Quantities()
	names := make([]string, 0, len(qs)+1)
	for _, q := range qs {
		names = append(names, q.String())
	}
	if h.cfg.CountInversions {
		names = append(names, instrument.Inversions)
	}

	return names
}

// GatherStatistic appends the current run's counts to the StatPack and
// zeroes the counters. A no-op for an uninstrumented Helper.
//
// Errors:
//   - ErrNotInitialized (also matching instrument.ErrNotInitialized) when
//     InitRuns was never called.
//   - stats.ErrRunBudgetExceeded once nRuns runs have been gathered.
func (h *Helper[X]) GatherStatistic() error {
	if err := h.inst.GatherStatistic(); err != nil {
		if errors.Is(err, instrument.ErrNotInitialized) {
			return helperErrorf(methodGatherStatistic, fmt.Errorf("%w: %w", ErrNotInitialized, err))
		}

		return helperErrorf(methodGatherStatistic, err)
	}

	return nil
}

// PreProcess records the inversion count of the unsorted input when the
// Helper is instrumented and Config.CountInversions is set. The count is
// taken without instrumentation.
func (h *Helper[X]) PreProcess(xs []X) {
	if h.inst.Instrumented() && h.cfg.CountInversions {
		h.inst.Observe(instrument.Inversions, float64(h.Inversions(xs)))
	}
}

// PostProcess checks that xs is sorted, then ends the run with
// GatherStatistic. A sticky comparator error takes precedence.
func (h *Helper[X]) PostProcess(xs []X) error {
	sorted := h.Sorted(xs)
	if h.err != nil {
		return helperErrorf(methodPostProcess, h.err)
	}
	if !sorted {
		return helperErrorf(methodPostProcess, ErrNotSorted)
	}

	return h.GatherStatistic()
}

// Clone returns an independent Helper with the same comparator and
// configuration, a fresh instrumenter (no counters, no StatPack), a derived
// RNG stream, and the given description and size.
// Clone advances h's stream counter, so it must not be called concurrently
// on one Helper; clone first, then hand the clones to goroutines.
func (h *Helper[X]) Clone(description string, n int) *Helper[X] {
	return h.CloneWith(description, h.cmp, n)
}

// CloneWith is Clone with a replacement comparator (nil ⇒ natural order).
func (h *Helper[X]) CloneWith(description string, cmp Comparator[X], n int) *Helper[X] {
	seed := deriveSeed(h.seed, h.clones)
	h.clones++

	return &Helper[X]{
		description: description,
		n:           n,
		cfg:         h.cfg.Clone(),
		cmp:         cmp,
		cmpResolved: cmp != nil,
		seed:        seed,
		rng:         rngFromSeed(seed),
		inst:        h.inst.Clone(),
	}
}

// Close releases held buffers. Counters and the StatPack stay readable.
// Calling Close more than once has no further effect.
func (h *Helper[X]) Close() {
	if h.closed {
		return
	}
	h.scratch = nil
	h.closed = true
}

// ---------- Accessors ----------

// Description returns the label given at construction or clone time.
func (h *Helper[X]) Description() string { return h.description }

// N returns the current problem size.
func (h *Helper[X]) N() int { return h.n }

// Seed returns the effective RNG seed of this Helper.
func (h *Helper[X]) Seed() int64 { return h.seed }

// Config returns a copy of the configuration snapshot.
func (h *Helper[X]) Config() config.Config { return h.cfg.Clone() }

// Instrumented reports whether operations are being counted.
func (h *Helper[X]) Instrumented() bool { return h.inst.Instrumented() }

// Counts returns a snapshot of the current run's counters.
func (h *Helper[X]) Counts() instrument.Counts { return h.inst.Counts() }

// StatPack returns the pack being filled (an empty placeholder when not
// instrumented or before InitRuns).
func (h *Helper[X]) StatPack() *stats.StatPack { return h.inst.StatPack() }

// Closed reports whether Close was called.
func (h *Helper[X]) Closed() bool { return h.closed }

// Err returns the first sticky error (currently only ErrNoComparator).
func (h *Helper[X]) Err() error { return h.err }

func (h *Helper[X]) fail(err error) {
	if h.err == nil {
		h.err = err
	}
}

func (h *Helper[X]) String() string {
	mode := "plain"
	if h.Instrumented() {
		mode = "instrumented"
	}

	return fmt.Sprintf("Helper{%s, n=%d, %s}", h.description, h.n, mode)
}
