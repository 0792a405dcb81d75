// SPDX-License-Identifier: MIT

// Package sorts provides comparison sorts written against *helper.Helper, so
// that every comparison, swap and copy they perform can be counted.
//
// Algorithms:
//
//	Insertion — O(n²) compares/swaps on random input, O(n) on sorted input.
//	Selection — Θ(n²) compares, O(n) swaps.
//	Shell     — 3x+1 gap sequence, ~O(n^1.5).
//	Merge     — top-down, insertion cutoff for small runs, O(n log n); uses Helper.Scratch.
//	Quick     — 3-way partitioning, median-of-three pivot, insertion cutoff, O(n log n) expected.
//
// Every Sort returns the Helper's sticky error (ErrNoComparator when the
// element type has no order). Sorts never panic on valid slices.
//
// Options:
//
//	WithCutoff(k) — subarrays of at most k elements are finished by insertion
//	                sort (Merge, Quick). Panics when k < 0.
package sorts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlbench/helper"
)

// ErrUnknownAlgorithm indicates a name not known to New.
var ErrUnknownAlgorithm = errors.New("sorts: unknown algorithm")

// Sorter sorts a slice in place through its Helper.
type Sorter[X any] interface {
	// Sort orders xs ascending and returns the Helper's sticky error.
	Sort(xs []X) error
	// Name is the registry name ("insertion", "merge", …).
	Name() string
	// Helper returns the Helper the sorter performs its operations through.
	Helper() *helper.Helper[X]
}

// Algorithm names accepted by New.
const (
	NameInsertion = "insertion"
	NameSelection = "selection"
	NameShell     = "shell"
	NameMerge     = "merge"
	NameQuick     = "quick"
)

// Default cutoffs below which Merge and Quick switch to insertion sort.
const (
	DefaultMergeCutoff = 12
	DefaultQuickCutoff = 10
)

const panicCutoffInvalid = "sorts: WithCutoff: k must be non-negative"

// Option configures Merge and Quick.
type Option func(*options)

type options struct {
	cutoff int
}

// WithCutoff sets the insertion-sort cutoff. k = 0 disables it.
func WithCutoff(k int) Option {
	if k < 0 {
		panic(panicCutoffInvalid)
	}

	return func(o *options) { o.cutoff = k }
}

func gatherOptions(defaultCutoff int, opts []Option) options {
	o := options{cutoff: defaultCutoff}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// New builds the sorter registered under name around h.
func New[X any](name string, h *helper.Helper[X], opts ...Option) (Sorter[X], error) {
	switch name {
	case NameInsertion:
		return NewInsertion(h), nil
	case NameSelection:
		return NewSelection(h), nil
	case NameShell:
		return NewShell(h), nil
	case NameMerge:
		return NewMerge(h, opts...), nil
	case NameQuick:
		return NewQuick(h, opts...), nil
	}

	return nil, fmt.Errorf("sorts: New(%q): %w", name, ErrUnknownAlgorithm)
}

// Names lists the registered algorithm names in ascending order.
func Names() []string {
	names := []string{NameInsertion, NameSelection, NameShell, NameMerge, NameQuick}
	sort.Strings(names)

	return names
}

// insertionRange sorts xs[lo:hi] by adjacent conditional swaps.
func insertionRange[X any](h *helper.Helper[X], xs []X, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && h.SwapStableConditional(xs, j); j-- {
		}
	}
}
