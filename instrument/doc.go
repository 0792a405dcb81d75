// SPDX-License-Identifier: MIT

// Package instrument counts the primitive operations an algorithm performs
// and drains those counts into a stats.StatPack once per run.
//
// Two strategies implement Instrumenter:
//
//	Noop     — zero-size, every call is a constant-time no-op; StatPack() is an
//	           empty placeholder. Used when the same algorithm runs outside a
//	           benchmark.
//	Counting — one int64 counter per Quantity; GatherStatistic snapshots them
//	           into the pack and replaces the counter array with a fresh one.
//
// The strategy is chosen once, when the owning Helper is built, and is never
// switched mid-run: mixing counted and uncounted runs would silently corrupt
// the comparability of a series.
//
// Run cycle (no error state):
//
//	Idle ──Increment──▶ Counting ──GatherStatistic──▶ Gathered ──▶ Idle
//
// Callers must gather exactly once per logical run. Skipping or doubling a
// gather skews the per-run values without any error being reported.
//
// Concurrency:
//   - Not goroutine-safe. One Instrumenter per Helper per goroutine; parallel
//     sweeps clone the Helper, which clones a fresh Instrumenter.
package instrument
