package helper_test

import (
	"testing"

	"github.com/katalvlaran/lvlbench/config"
	"github.com/katalvlaran/lvlbench/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteInversions is the O(n²) reference.
func bruteInversions(xs []int) int64 {
	var c int64
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] > xs[j] {
				c++
			}
		}
	}

	return c
}

// TestInversions_MatchesBruteForce compares against the quadratic definition.
func TestInversions_MatchesBruteForce(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 0, config.Default())
	for _, n := range []int{1, 2, 3, 7, 64, 257} {
		xs, err := h.Random(n, helper.IntN(50))
		require.NoError(t, err)
		orig := append([]int(nil), xs...)

		assert.Equal(t, bruteInversions(xs), h.Inversions(xs), "n=%d", n)
		assert.Equal(t, orig, xs, "input must not be modified")
	}
}

// TestInversions_Extremes covers sorted and reversed inputs.
func TestInversions_Extremes(t *testing.T) {
	h := helper.NewOrdered[int]("ints", 0, config.Default().Instrumented())

	assert.Zero(t, h.Inversions([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, int64(10), h.Inversions([]int{5, 4, 3, 2, 1}))
	assert.Zero(t, h.Inversions(nil))
	assert.True(t, h.Counts().IsZero(), "counting inversions is not instrumented")
}

// TestSorted covers the uninstrumented order check.
func TestSorted(t *testing.T) {
	h := helper.NewOrdered[string]("s", 0, config.Default())

	assert.True(t, h.Sorted(nil))
	assert.True(t, h.Sorted([]string{"a", "a", "b"}))
	assert.False(t, h.Sorted([]string{"b", "a"}))
}
