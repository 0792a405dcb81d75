// SPDX-License-Identifier: MIT

// Package helper is the façade a sorting (or searching) algorithm performs
// its primitive operations through: compare, swap, copy, plus reproducible
// random input generation and the per-run statistics lifecycle.
//
// 🚀 What Helper does
//
//	Compare / Less / CompareAt      → counts "compares" (and "hits" for indexed forms)
//	Swap / SwapConditional / …      → counts "swaps", SwapCopies "copies", "hits", "fixes"
//	Copy                            → counts "copies", "hits"
//	Random / RandomN                → seeded input generation (math/rand, per-Helper stream)
//	InitRuns / PreProcess / PostProcess / GatherStatistic → per-run StatPack lifecycle
//	Clone / CloneWith               → independent Helper for another size or description
//
// Counting is delegated to an instrument.Instrumenter picked once from
// config.Config.Instrument when the Helper is built: instrument.Noop for
// plain use, instrument.Counting for benchmarks. Algorithms are written once
// against *Helper[X] and cost only an empty method call when not measured.
//
// Comparators:
//   - New takes an explicit Comparator (may be nil).
//   - NewOrdered supplies the natural order of a constraints.Ordered type.
//   - With a nil Comparator, the natural order is resolved lazily at the
//     first Compare: X implementing Comparable[X], or X being a builtin
//     ordered kind. When neither applies Compare returns 0 and records
//     ErrNoComparator, reported by Err(). Construction never fails for it,
//     so Helpers can be built generically before the need is known.
//
// Run lifecycle (caller obligation, not enforced):
//
//	h.InitRuns(n, runs)
//	for r := 0; r < runs; r++ {
//		xs, _ := h.RandomN(gen)
//		h.PreProcess(xs)         // inversions, when configured
//		sorter.Sort(xs)          // calls h.Compare/h.Swap/…
//		h.PostProcess(xs)        // verifies order, then GatherStatistic
//	}
//	fmt.Println(h.StatPack())
//
// Concurrency:
//   - A Helper is single-goroutine. Parallel sweeps Clone one Helper per size;
//     clones share the comparator and configuration, never counters, packs,
//     buffers or RNG state.
//
// Determinism:
//   - The RNG is seeded from Config.Seed; clone streams are derived from the
//     parent seed with a SplitMix64 mix, so a sweep is reproducible.
package helper
