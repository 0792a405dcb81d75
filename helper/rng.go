// SPDX-License-Identifier: MIT

package helper

import (
	"math/rand"

	"github.com/katalvlaran/lvlbench/config"
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ config.DefaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(normalizeSeed(seed)))
}

func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return config.DefaultSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream id into a child seed with the
// SplitMix64 finalizer, so clone k of a Helper gets a stream uncorrelated
// with its parent and its siblings.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return normalizeSeed(int64(x))
}

// Generator produces one fresh element from r.
type Generator[X any] func(r *rand.Rand) X

// IntN returns a Generator of ints uniform in [0, n). n must be positive.
func IntN(n int) Generator[int] {
	if n <= 0 {
		panic("helper: IntN: n must be positive")
	}

	return func(r *rand.Rand) int { return r.Intn(n) }
}

// Int64s returns a Generator of non-negative int64 values.
func Int64s() Generator[int64] {
	return func(r *rand.Rand) int64 { return r.Int63() }
}

// Float64s returns a Generator of float64 values uniform in [0, 1).
func Float64s() Generator[float64] {
	return func(r *rand.Rand) float64 { return r.Float64() }
}

// Strings returns a Generator of lowercase ASCII strings of length n.
func Strings(n int) Generator[string] {
	if n <= 0 {
		panic("helper: Strings: n must be positive")
	}

	return func(r *rand.Rand) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('a' + r.Intn(26))
		}

		return string(b)
	}
}
