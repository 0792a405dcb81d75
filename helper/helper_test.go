package helper_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlbench/config"
	"github.com/katalvlaran/lvlbench/helper"
	"github.com/katalvlaran/lvlbench/instrument"
	"github.com/katalvlaran/lvlbench/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point has no natural order.
type point struct{ x, y int }

// version orders itself through Comparable.
type version struct{ major, minor int }

func (v version) Compare(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}

	return v.minor - o.minor
}

func instrumented() config.Config { return config.Default().Instrumented() }

// TestCompare_CountsOncePerCall verifies one compare per call, any outcome.
func TestCompare_CountsOncePerCall(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 10, instrumented())

	assert.Equal(t, -1, h.Compare(1, 2))
	assert.Equal(t, 0, h.Compare(2, 2))
	assert.Equal(t, 1, h.Compare(3, 2))
	assert.True(t, h.Less(1, 5))

	assert.Equal(t, int64(4), h.Counts().Get(instrument.Compares))
	assert.Zero(t, h.Counts().Get(instrument.Hits))
}

// TestCompare_NaturalOrderResolvedLazily covers builtin and Comparable types.
func TestCompare_NaturalOrderResolvedLazily(t *testing.T) {
	hs := helper.New[string]("strings", 3, nil, config.Default())
	assert.Equal(t, -1, hs.Compare("apple", "banana"))
	assert.NoError(t, hs.Err())

	hv := helper.New[version]("versions", 3, nil, config.Default())
	assert.Equal(t, 1, hv.Compare(version{2, 0}, version{1, 9}))
	assert.Equal(t, -1, hv.Compare(version{1, 1}, version{1, 7}), "result is clamped to -1")
	assert.NoError(t, hv.Err())
}

// TestCompare_NoComparator surfaces a configuration error at first use, not construction.
func TestCompare_NoComparator(t *testing.T) {
	h := helper.New[point]("points", 2, nil, instrumented())
	require.NoError(t, h.Err(), "construction must not fail")

	assert.Equal(t, 0, h.Compare(point{1, 2}, point{3, 4}))
	assert.ErrorIs(t, h.Err(), helper.ErrNoComparator)
	assert.Equal(t, int64(1), h.Counts().Get(instrument.Compares))

	withCmp := h.CloneWith("points by x", func(a, b point) int { return a.x - b.x }, 2)
	assert.Equal(t, -1, withCmp.Compare(point{1, 9}, point{2, 0}))
	assert.NoError(t, withCmp.Err())
}

// TestSwapAndCopy_Charges pins the fixed per-operation costs.
func TestSwapAndCopy_Charges(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 4, instrumented())
	xs := []int{4, 3, 2, 1}

	h.Swap(xs, 0, 3)
	assert.Equal(t, []int{1, 3, 2, 4}, xs)
	c := h.Counts()
	assert.Equal(t, int64(1), c.Get(instrument.Swaps))
	assert.Equal(t, int64(helper.SwapCopies), c.Get(instrument.Copies))
	assert.Equal(t, int64(4), c.Get(instrument.Hits))

	dst := make([]int, 4)
	h.Copy(xs, 1, dst, 2)
	assert.Equal(t, 3, dst[2])
	c = h.Counts()
	assert.Equal(t, int64(helper.SwapCopies+1), c.Get(instrument.Copies))
	assert.Equal(t, int64(6), c.Get(instrument.Hits))
}

// TestSwapConditional counts fixes for adjacent inversions only.
func TestSwapConditional(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 4, instrumented())
	xs := []int{2, 1, 3, 0}

	assert.True(t, h.SwapStableConditional(xs, 1))
	assert.Equal(t, []int{1, 2, 3, 0}, xs)
	assert.False(t, h.SwapStableConditional(xs, 2), "in order: no swap")
	assert.True(t, h.SwapConditional(xs, 0, 3), "non-adjacent swap")
	assert.Equal(t, []int{0, 2, 3, 1}, xs)

	c := h.Counts()
	assert.Equal(t, int64(3), c.Get(instrument.Compares))
	assert.Equal(t, int64(2), c.Get(instrument.Swaps))
	assert.Equal(t, int64(1), c.Get(instrument.Fixes))

	eq := []int{5, 5}
	assert.False(t, h.SwapStableConditional(eq, 1), "equal elements stay put")
}

// TestPlainHelper_CountsNothing: the Noop path records nothing.
func TestPlainHelper_CountsNothing(t *testing.T) {
	h := helper.NewOrdered[int]("plain", 3, config.Default())
	xs := []int{3, 2, 1}
	h.Swap(xs, 0, 2)
	h.Compare(1, 2)
	h.IncrementLookups(5)

	assert.False(t, h.Instrumented())
	assert.True(t, h.Counts().IsZero())
	require.NoError(t, h.InitRuns(3, 2))
	require.NoError(t, h.GatherStatistic())
	assert.True(t, h.StatPack().Empty())
}

// TestRandom_InvalidSize rejects size ≤ 0 rather than returning an empty slice.
func TestRandom_InvalidSize(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 0, config.Default())

	xs, err := h.Random(0, helper.IntN(10))
	assert.Nil(t, xs)
	assert.ErrorIs(t, err, helper.ErrInvalidSize)

	_, err = h.Random(-1, helper.IntN(10))
	assert.ErrorIs(t, err, helper.ErrInvalidSize)

	_, err = h.RandomN(helper.IntN(10))
	assert.ErrorIs(t, err, helper.ErrNotInitialized)

	_, err = h.Random(3, nil)
	assert.ErrorIs(t, err, helper.ErrNilGenerator)
}

// TestRandom_Deterministic: equal seeds give equal inputs, different seeds differ.
func TestRandom_Deterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42
	a, err := helper.NewOrdered[int]("a", 50, cfg).RandomN(helper.IntN(1_000_000))
	require.NoError(t, err)
	b, err := helper.NewOrdered[int]("b", 50, cfg).RandomN(helper.IntN(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg.Seed = 43
	c, err := helper.NewOrdered[int]("c", 50, cfg).RandomN(helper.IntN(1_000_000))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestRandom_Generators exercises the stock generators.
func TestRandom_Generators(t *testing.T) {
	fs, err := helper.NewOrdered[float64]("f", 20, config.Default()).RandomN(helper.Float64s())
	require.NoError(t, err)
	for _, f := range fs {
		assert.True(t, f >= 0 && f < 1)
	}

	ss, err := helper.NewOrdered[string]("s", 5, config.Default()).RandomN(helper.Strings(4))
	require.NoError(t, err)
	for _, s := range ss {
		assert.Len(t, s, 4)
		assert.Equal(t, strings.ToLower(s), s)
	}

	ls, err := helper.NewOrdered[int64]("l", 5, config.Default()).RandomN(helper.Int64s())
	require.NoError(t, err)
	assert.Len(t, ls, 5)

	assert.Panics(t, func() { helper.IntN(0) })
	assert.Panics(t, func() { helper.Strings(0) })
}

// TestInitRuns_Validation checks size, run count and closed state.
func TestInitRuns_Validation(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 10, instrumented())

	assert.ErrorIs(t, h.InitRuns(0, 1), helper.ErrInvalidSize)
	assert.ErrorIs(t, h.InitRuns(10, 0), helper.ErrBadRuns)

	h.Close()
	assert.ErrorIs(t, h.InitRuns(10, 1), helper.ErrClosed)
}

// TestInitRuns_RejectsUnknownNormalizer: a Config built in code with a bad
// normalizer name fails instead of falling back silently.
func TestInitRuns_RejectsUnknownNormalizer(t *testing.T) {
	cfg := instrumented()
	cfg.Normalizers["compares"] = "n^3"
	h := helper.NewOrdered[int]("ints", 100, cfg)

	err := h.InitRuns(100, 2)
	assert.ErrorIs(t, err, config.ErrBadNormalizer)
	assert.True(t, h.StatPack().Empty(), "no pack is prepared")

	plain := cfg.Clone()
	plain.Instrument = false
	assert.ErrorIs(t, helper.NewOrdered[int]("plain", 100, plain).InitRuns(100, 2), config.ErrBadNormalizer)
}

// TestGatherStatistic_BeforeInit is a configuration error.
func TestGatherStatistic_BeforeInit(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 10, instrumented())
	h.Compare(1, 2)

	err := h.GatherStatistic()
	assert.ErrorIs(t, err, helper.ErrNotInitialized)
	assert.ErrorIs(t, err, instrument.ErrNotInitialized)
}

// TestGatherStatistic_FillsPack: nRuns gathers fill every series exactly.
func TestGatherStatistic_FillsPack(t *testing.T) {
	const n, runs = 16, 3
	h := helper.NewOrdered[int]("ints", n, instrumented())
	require.NoError(t, h.InitRuns(n, runs))

	for r := 0; r < runs; r++ {
		for i := 0; i <= r; i++ {
			h.Compare(i, r)
		}
		require.NoError(t, h.GatherStatistic())
		assert.True(t, h.Counts().IsZero())
	}

	pack := h.StatPack()
	assert.True(t, pack.Complete())
	assert.Equal(t, n, pack.N())
	for _, name := range pack.Names() {
		s, err := pack.Get(name)
		require.NoError(t, err)
		assert.Equal(t, runs, s.Count(), name)
	}
	compares, err := pack.Get("compares")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, compares.Values())
	assert.InDelta(t, 2/stats.Linearithmic(n), compares.NormalizedMean(), 1e-12)

	assert.ErrorIs(t, h.GatherStatistic(), stats.ErrRunBudgetExceeded)
}

// TestPrePostProcess records inversions and rejects unsorted output.
func TestPrePostProcess(t *testing.T) {
	cfg := instrumented()
	cfg.CountInversions = true
	h := helper.NewOrdered[int]("ints", 4, cfg)
	require.NoError(t, h.InitRuns(4, 2))

	xs := []int{4, 3, 2, 1}
	h.PreProcess(xs)
	assert.ErrorIs(t, h.PostProcess(xs), helper.ErrNotSorted)

	require.NoError(t, h.PostProcess([]int{1, 2, 3, 4}))
	inv, err := h.StatPack().Get(instrument.Inversions)
	require.NoError(t, err)
	assert.Equal(t, []float64{6}, inv.Values())
}

// TestPostProcess_StickyComparatorError takes precedence over sortedness.
func TestPostProcess_StickyComparatorError(t *testing.T) {
	h := helper.New[point]("points", 2, nil, instrumented())
	require.NoError(t, h.InitRuns(2, 1))

	err := h.PostProcess([]point{{1, 1}, {0, 0}})
	assert.ErrorIs(t, err, helper.ErrNoComparator)
}

// TestClone_Independence: running a clone never touches the origin.
func TestClone_Independence(t *testing.T) {
	origin := helper.NewOrdered[int]("origin", 8, instrumented())
	require.NoError(t, origin.InitRuns(8, 2))
	origin.Compare(1, 2)
	before := origin.Counts()

	clone := origin.Clone("clone", 32)
	assert.Equal(t, "clone", clone.Description())
	assert.Equal(t, 32, clone.N())
	assert.True(t, clone.Instrumented())
	assert.True(t, clone.Counts().IsZero(), "fresh counters")
	assert.True(t, clone.StatPack().Empty(), "fresh pack")

	require.NoError(t, clone.InitRuns(32, 1))
	xs, err := clone.RandomN(helper.IntN(100))
	require.NoError(t, err)
	clone.Swap(xs, 0, 1)
	clone.Compare(xs[0], xs[1])
	require.NoError(t, clone.GatherStatistic())

	assert.Equal(t, before, origin.Counts())
	assert.Zero(t, origin.StatPack().Count())
	assert.Equal(t, 8, origin.StatPack().N())
}

// TestClone_DerivedStreams: clones are reproducible but distinct from each other.
func TestClone_DerivedStreams(t *testing.T) {
	a := helper.NewOrdered[int]("a", 10, config.Default())
	b := helper.NewOrdered[int]("b", 10, config.Default())

	a1, a2 := a.Clone("a1", 10), a.Clone("a2", 10)
	b1 := b.Clone("b1", 10)

	assert.Equal(t, a1.Seed(), b1.Seed(), "same parent seed and stream ⇒ same child")
	assert.NotEqual(t, a1.Seed(), a2.Seed())
	assert.NotEqual(t, a.Seed(), a1.Seed())

	// the stream index is parent state advanced by every Clone call
	b2 := b.Clone("b2", 10)
	assert.Equal(t, a2.Seed(), b2.Seed())
	assert.Equal(t, a.Seed(), b.Seed(), "the parent's own seed never changes")
}

// TestClose_Idempotent: Close twice is harmless; stats stay readable.
func TestClose_Idempotent(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 4, instrumented())
	require.NoError(t, h.InitRuns(4, 1))
	_ = h.Scratch(4)

	assert.NotPanics(t, func() {
		h.Close()
		h.Close()
	})
	assert.True(t, h.Closed())
	assert.Equal(t, 4, h.StatPack().N())

	_, err := h.Random(4, helper.IntN(3))
	assert.ErrorIs(t, err, helper.ErrClosed)
}

// TestScratch_Reuse returns the same backing array while capacity suffices.
func TestScratch_Reuse(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 4, config.Default())
	a := h.Scratch(8)
	b := h.Scratch(4)
	assert.Len(t, b, 4)
	assert.Same(t, &a[0], &b[0])
}

// TestInit_ResetsRun keeps the pack but restarts counters.
func TestInit_ResetsRun(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 4, instrumented())
	require.NoError(t, h.InitRuns(4, 1))
	h.Compare(1, 2)

	h.Init(6)
	assert.Equal(t, 6, h.N())
	assert.True(t, h.Counts().IsZero())
	assert.Equal(t, 4, h.StatPack().N())
}

// TestString describes the helper.
func TestString(t *testing.T) {
	assert.Equal(t, "Helper{ints, n=4, instrumented}", helper.NewOrdered[int]("ints", 4, instrumented()).String())
	assert.Equal(t, "Helper{ints, n=4, plain}", helper.NewOrdered[int]("ints", 4, config.Default()).String())
}
