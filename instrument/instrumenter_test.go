package instrument_test

import (
	"testing"

	"github.com/katalvlaran/lvlbench/instrument"
	"github.com/katalvlaran/lvlbench/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allQuantities registers every counted quantity with a constant normalizer.
func allQuantities() map[string]stats.Normalizer {
	m := make(map[string]stats.Normalizer)
	for _, q := range instrument.Quantities() {
		m[q.String()] = stats.Constant
	}

	return m
}

// TestNew_SelectsVariant checks the strategy switch.
func TestNew_SelectsVariant(t *testing.T) {
	assert.IsType(t, instrument.Noop{}, instrument.New(false))
	assert.IsType(t, &instrument.Counting{}, instrument.New(true))
}

// TestCounting_GatherScenario: 3 compares and 2 swaps in one run land in the
// pack as one entry each, and the counters restart from zero.
func TestCounting_GatherScenario(t *testing.T) {
	c := instrument.NewCounting()
	require.NoError(t, c.Init(10, 2, allQuantities()))

	c.Increment(instrument.Compares, 1)
	c.Increment(instrument.Compares, 1)
	c.Increment(instrument.Compares, 1)
	c.Increment(instrument.Swaps, 2)
	require.Equal(t, int64(3), c.Counts().Get(instrument.Compares))

	require.NoError(t, c.GatherStatistic())

	compares, err := c.StatPack().Get("compares")
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, compares.Values())

	swaps, err := c.StatPack().Get("swaps")
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, swaps.Values())

	assert.True(t, c.Counts().IsZero(), "counters restart after gather")
}

// TestCounting_GatherWithoutInit reports ErrNotInitialized.
func TestCounting_GatherWithoutInit(t *testing.T) {
	c := instrument.NewCounting()
	c.Increment(instrument.Compares, 1)

	err := c.GatherStatistic()
	assert.ErrorIs(t, err, instrument.ErrNotInitialized)
	assert.Equal(t, int64(1), c.Counts().Get(instrument.Compares), "counters kept on failure")
	assert.True(t, c.StatPack().Empty())
}

// TestCounting_RunsFillPack: after nRuns gathers every series has nRuns entries.
func TestCounting_RunsFillPack(t *testing.T) {
	const runs = 4
	c := instrument.NewCounting()
	require.NoError(t, c.Init(100, runs, allQuantities()))

	for r := 0; r < runs; r++ {
		c.Increment(instrument.Hits, int64(r))
		require.NoError(t, c.GatherStatistic())
	}
	for _, name := range c.StatPack().Names() {
		s, err := c.StatPack().Get(name)
		require.NoError(t, err)
		assert.Equal(t, runs, s.Count(), name)
	}

	err := c.GatherStatistic()
	assert.ErrorIs(t, err, stats.ErrRunBudgetExceeded)
}

// TestCounting_UnregisteredCountersSkipped: only registered quantities are gathered.
func TestCounting_UnregisteredCountersSkipped(t *testing.T) {
	c := instrument.NewCounting()
	require.NoError(t, c.Init(5, 1, map[string]stats.Normalizer{"compares": stats.Linear}))

	c.Increment(instrument.Compares, 7)
	c.Increment(instrument.Lookups, 9)
	require.NoError(t, c.GatherStatistic())

	assert.Equal(t, []string{"compares"}, c.StatPack().Names())
}

// TestCounting_Observe records derived values and rejects unknown names.
func TestCounting_Observe(t *testing.T) {
	qs := allQuantities()
	qs[instrument.Inversions] = stats.QuadraticQuarter
	c := instrument.NewCounting()
	require.NoError(t, c.Init(8, 2, qs))

	c.Observe(instrument.Inversions, 14)
	require.NoError(t, c.GatherStatistic())
	inv, err := c.StatPack().Get(instrument.Inversions)
	require.NoError(t, err)
	assert.Equal(t, []float64{14}, inv.Values())

	c.Observe("inversionz", 1)
	err = c.GatherStatistic()
	assert.ErrorIs(t, err, stats.ErrUnknownQuantity)
	assert.Equal(t, 1, c.StatPack().Count(), "failed gather must not advance the pack")
}

// TestCounting_CloneIsIndependent: clones share no counters or pack.
func TestCounting_CloneIsIndependent(t *testing.T) {
	c := instrument.NewCounting()
	require.NoError(t, c.Init(10, 1, allQuantities()))
	c.Increment(instrument.Swaps, 5)

	cl := c.Clone()
	assert.True(t, cl.Instrumented())
	assert.True(t, cl.Counts().IsZero())
	assert.True(t, cl.StatPack().Empty())

	cl.Increment(instrument.Swaps, 1)
	assert.Equal(t, int64(5), c.Counts().Get(instrument.Swaps))
}

// TestNoop_IsInert verifies every Noop call is a no-op.
func TestNoop_IsInert(t *testing.T) {
	var n instrument.Noop
	n.Increment(instrument.Compares, 10)
	n.Observe(instrument.Inversions, 3)

	assert.False(t, n.Instrumented())
	assert.True(t, n.Counts().IsZero())
	assert.NoError(t, n.Init(10, 10, allQuantities()))
	assert.NoError(t, n.GatherStatistic())
	assert.True(t, n.StatPack().Empty())
	assert.Equal(t, instrument.Noop{}, n.Clone())
}

// TestQuantity_Names covers String/Parse round trips on the enum.
func TestQuantity_Names(t *testing.T) {
	assert.Equal(t, "compares", instrument.Compares.String())
	assert.Equal(t, "lookups", instrument.Lookups.String())
	assert.Equal(t, "Quantity(42)", instrument.Quantity(42).String())

	q, ok := instrument.ParseQuantity("fixes")
	assert.True(t, ok)
	assert.Equal(t, instrument.Fixes, q)

	_, ok = instrument.ParseQuantity("inversions")
	assert.False(t, ok, "inversions is derived, not counted")
}

// TestCounts_Map exposes every quantity by name.
func TestCounts_Map(t *testing.T) {
	var c instrument.Counts
	c[instrument.Copies] = 4
	m := c.Map()

	assert.Len(t, m, len(instrument.Quantities()))
	assert.Equal(t, 4.0, m["copies"])
	assert.Equal(t, "compares=0 swaps=0 copies=4 hits=0 fixes=0 lookups=0", c.String())
}
