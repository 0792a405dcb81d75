// SPDX-License-Identifier: MIT

// Package bench drives repeated, instrumented runs of a sorting algorithm
// and turns them into Reports.
//
// One Run on one Helper:
//
//	InitRuns(n, runs) → for each run:
//	    RandomN → PreProcess → Sort (timed) → PostProcess (verify + gather)
//
// The wall time of each run (milliseconds) goes into a separate "time"
// Statistics series. When its coefficient of variation exceeds
// Config.NoiseThreshold the whole measurement is repeated, at most
// Config.MaxRetries times; the last attempt is reported with Noisy=true if
// it is still above the threshold.
//
// Sweep repeats Run over several sizes, each on its own Clone of the base
// Helper so that no size contaminates another's counters or StatPack. With
// Config.Parallelism > 1 the sizes are dispatched on an ants worker pool.
//
// Logging goes through an injected *zap.Logger (zap.NewNop by default).
package bench
