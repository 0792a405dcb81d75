// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"
)

// Normalizer maps a problem size N to the expected operation count of a
// complexity class. It must be pure: same N, same result, no side effects.
type Normalizer func(n int) float64

// Canonical normalizer names, as accepted by NormalizerByName and by the
// TOML configuration.
const (
	NameConstant         = "1"
	NameLogarithmic      = "logn"
	NameLinear           = "n"
	NameLinearithmic     = "nlogn"
	NameQuadratic        = "n^2"
	NameQuadraticQuarter = "n^2/4"
)

// Constant is f(N) = 1.
func Constant(int) float64 { return 1 }

// Linear is f(N) = N.
func Linear(n int) float64 { return float64(n) }

// Linearithmic is f(N) = N·ln N for N ≥ 2.
// f(1) is defined as 1 so that ln(1) = 0 never turns into a division by zero.
func Linearithmic(n int) float64 {
	if n < 2 {
		return 1
	}
	x := float64(n)

	return x * math.Log(x)
}

// Quadratic is f(N) = N².
func Quadratic(n int) float64 {
	x := float64(n)

	return x * x
}

// Logarithmic is f(N) = ln N for N ≥ 2 and 1 otherwise.
func Logarithmic(n int) float64 {
	if n < 2 {
		return 1
	}

	return math.Log(float64(n))
}

// QuadraticQuarter is f(N) = N²/4, the expected inversion count of a
// uniformly random permutation (≈ N(N−1)/4).
func QuadraticQuarter(n int) float64 {
	x := float64(n)

	return x * x / 4
}

var normalizersByName = map[string]Normalizer{
	NameConstant:         Constant,
	NameLogarithmic:      Logarithmic,
	NameLinear:           Linear,
	NameLinearithmic:     Linearithmic,
	NameQuadratic:        Quadratic,
	NameQuadraticQuarter: QuadraticQuarter,
}

// NormalizerByName resolves one of the canonical names (NameConstant, …).
// Unknown names yield ErrUnknownNormalizer.
func NormalizerByName(name string) (Normalizer, error) {
	f, ok := normalizersByName[name]
	if !ok {
		return nil, statsErrorf("NormalizerByName", fmt.Errorf("%q: %w", name, ErrUnknownNormalizer))
	}

	return f, nil
}

// NormalizerNames lists the accepted names in ascending order.
func NormalizerNames() []string {
	names := make([]string, 0, len(normalizersByName))
	for name := range normalizersByName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
