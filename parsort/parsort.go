// SPDX-License-Identifier: MIT

// Package parsort is a fork-join parallel merge sort.
//
// The slice is halved recursively; each half is sorted on its own goroutine
// (golang.org/x/sync/errgroup) until either the subarray is no longer than
// the cutoff or the recursion depth bound is reached, at which point a
// sequential stable sort finishes it. Sorted halves are merged through an
// auxiliary buffer allocated once per call.
//
// This package is independent of helper/stats: it is not instrumented.
//
// Concurrency:
//   - At most 2^maxDepth goroutines run leaf sorts concurrently.
//   - xs must not be touched by the caller until Sort returns.
//   - Cancellation of ctx is observed before each fork; a cancelled sort
//     leaves xs permuted but not necessarily ordered and returns ctx.Err().
package parsort

import (
	"context"
	"errors"
	"math/bits"
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Defaults.
const (
	// DefaultCutoff is the subarray length at or below which no fork happens.
	DefaultCutoff = 1 << 13
)

// ErrNilLess indicates SortFunc was given a nil ordering.
var ErrNilLess = errors.New("parsort: less function is nil")

const (
	panicCutoffInvalid   = "parsort: WithCutoff: cutoff must be positive"
	panicMaxDepthInvalid = "parsort: WithMaxDepth: depth must be non-negative"
)

// Option configures Sort and SortFunc.
type Option func(*options)

type options struct {
	cutoff   int
	maxDepth int
}

// WithCutoff sets the sequential threshold (> 0).
func WithCutoff(n int) Option {
	if n <= 0 {
		panic(panicCutoffInvalid)
	}

	return func(o *options) { o.cutoff = n }
}

// WithMaxDepth bounds the fork depth (0 ⇒ fully sequential).
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(panicMaxDepthInvalid)
	}

	return func(o *options) { o.maxDepth = d }
}

// defaultMaxDepth forks until there are about twice as many leaves as Ps.
func defaultMaxDepth() int {
	return bits.Len(uint(runtime.GOMAXPROCS(0))) + 1
}

func gatherOptions(opts []Option) options {
	o := options{cutoff: DefaultCutoff, maxDepth: defaultMaxDepth()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Sort orders xs ascending by the natural order of X.
func Sort[X constraints.Ordered](ctx context.Context, xs []X, opts ...Option) error {
	return SortFunc(ctx, xs, func(a, b X) bool { return a < b }, opts...)
}

// SortFunc orders xs by less; the sort is stable.
// Implementation:
//   - Stage 1: resolve options, allocate one auxiliary buffer of len(xs).
//   - Stage 2: fork-join recursion (sortRec).
//
// Complexity:
//   - Work O(n log n), span O(n) (the top-level merge is sequential), Space O(n).
func SortFunc[X any](ctx context.Context, xs []X, less func(a, b X) bool, opts ...Option) error {
	if less == nil {
		return ErrNilLess
	}
	if len(xs) < 2 {
		return ctx.Err()
	}
	o := gatherOptions(opts)
	aux := make([]X, len(xs))

	return sortRec(ctx, xs, aux, 0, o, less)
}

func sortRec[X any](ctx context.Context, xs, aux []X, depth int, o options, less func(a, b X) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(xs) <= o.cutoff || depth >= o.maxDepth {
		slices.SortStableFunc(xs, less)
		return nil
	}

	mid := len(xs) / 2
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sortRec(gctx, xs[:mid], aux[:mid], depth+1, o, less) })
	g.Go(func() error { return sortRec(gctx, xs[mid:], aux[mid:], depth+1, o, less) })
	if err := g.Wait(); err != nil {
		return err
	}

	merge(xs, aux, mid, less)

	return nil
}

// merge combines sorted xs[:mid] and xs[mid:]; ties take the left element.
func merge[X any](xs, aux []X, mid int, less func(a, b X) bool) {
	if !less(xs[mid], xs[mid-1]) {
		return
	}
	copy(aux, xs)
	i, j := 0, mid
	for k := range xs {
		switch {
		case i >= mid:
			xs[k] = aux[j]
			j++
		case j >= len(xs):
			xs[k] = aux[i]
			i++
		case less(aux[j], aux[i]):
			xs[k] = aux[j]
			j++
		default:
			xs[k] = aux[i]
			i++
		}
	}
}
