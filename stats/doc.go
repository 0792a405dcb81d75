// SPDX-License-Identifier: MIT

// Package stats aggregates repeated-run measurements into empirical
// complexity estimates.
//
// Three pieces live here:
//
//	Normalizer — pure N → expected-operation-count divisor (1, N, N·ln N, N², …)
//	Statistics — one named series of per-run values with mean/stdDev/normalized mean
//	StatPack   — a set of Statistics sharing one problem size N and run budget
//
// A benchmark driver records one value per run into each series; after all
// runs the normalized mean (mean / normalizer(N)) exposes the per-operation
// cost. Comparing it across several N confirms or refutes a complexity
// class: an N·log N sort keeps a roughly flat linearithmic normalized mean
// as N grows, a quadratic sort does not.
//
// Conventions:
//   - Standard deviation is the POPULATION deviation (÷count, not ÷(count−1)).
//   - Mean, StdDev and friends return 0 on an empty series.
//   - Adding beyond the configured run budget is rejected with
//     ErrRunBudgetExceeded; the series is left untouched.
//   - StatPack lookups of unregistered names fail with ErrUnknownQuantity.
//
// Concurrency:
//   - Neither Statistics nor StatPack is safe for concurrent mutation.
//     One pack belongs to one Helper, which belongs to one goroutine.
//
// Example:
//
//	pack, _ := stats.NewStatPack(1000, 10, map[string]stats.Normalizer{
//		"compares": stats.Linearithmic,
//	})
//	_ = pack.Gather(map[string]float64{"compares": 11_500})
//	s, _ := pack.Get("compares")
//	fmt.Println(s.NormalizedMean())
package stats
