// Package lvlbench measures how sorting algorithms actually behave: how many
// comparisons, swaps, copies and array accesses they perform, and how long
// they take, as the input grows.
//
// 🚀 What is lvlbench?
//
//	A small toolkit for empirical complexity analysis:
//		• stats/      – Statistics series, StatPacks, complexity normalizers
//		• instrument/ – counting vs. no-op operation counters
//		• config/     – immutable configuration snapshot, TOML loading
//		• helper/     – Helper[X]: instrumented compare/swap/copy, inputs, verification
//		• sorts/      – insertion, selection, shell, merge, quick on a Helper
//		• parsort/    – fork-join parallel merge sort (uninstrumented)
//		• bench/      – repeated runs, noise retries, size sweeps, Reports
//		• promexport/ – Reports as Prometheus gauges
//		• cmd/lvlbench – the command-line driver
//
// ✨ How a measurement works
//
//	A Helper owns the comparator, the RNG and an Instrumenter. An algorithm
//	performs every element operation through the Helper, so the counters see
//	exactly what the algorithm did. After each run the counters become one
//	value of each Statistics series; dividing the mean by the expected
//	complexity (n log n, n², …) gives a normalized mean that stays flat when
//	the guess is right.
//
// Quick example:
//
//	cfg := config.Default().Instrumented()
//	h := helper.NewOrdered[int]("ints", 1000, cfg)
//	b, _ := bench.New(sorts.NameMerge, helper.IntN(1<<20), cfg)
//	rep, _ := b.Run(h)
//	fmt.Println(rep)
//
// Installation:
//
//	go install github.com/katalvlaran/lvlbench/cmd/lvlbench@latest
package lvlbench
