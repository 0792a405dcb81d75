// SPDX-License-Identifier: MIT

package sorts

import "github.com/katalvlaran/lvlbench/helper"

// Insertion is straight insertion sort by adjacent swaps.
type Insertion[X any] struct{ h *helper.Helper[X] }

// NewInsertion returns an insertion sorter over h.
func NewInsertion[X any](h *helper.Helper[X]) *Insertion[X] { return &Insertion[X]{h: h} }

func (s *Insertion[X]) Name() string              { return NameInsertion }
func (s *Insertion[X]) Helper() *helper.Helper[X] { return s.h }

// Sort is stable. Each swap removes exactly one inversion, so on an
// instrumented Helper fixes == swaps == inversions of the input.
func (s *Insertion[X]) Sort(xs []X) error {
	insertionRange(s.h, xs, 0, len(xs))

	return s.h.Err()
}

// Selection is selection sort: n−1 passes, one swap per pass at most.
type Selection[X any] struct{ h *helper.Helper[X] }

// NewSelection returns a selection sorter over h.
func NewSelection[X any](h *helper.Helper[X]) *Selection[X] { return &Selection[X]{h: h} }

func (s *Selection[X]) Name() string              { return NameSelection }
func (s *Selection[X]) Helper() *helper.Helper[X] { return s.h }

// Sort performs exactly n(n−1)/2 compares whatever the input.
func (s *Selection[X]) Sort(xs []X) error {
	n := len(xs)
	for i := 0; i < n-1; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if s.h.CompareAt(xs, j, m) < 0 {
				m = j
			}
		}
		if m != i {
			s.h.Swap(xs, i, m)
		}
	}

	return s.h.Err()
}

// Shell is Shellsort with Knuth's 3x+1 gaps.
type Shell[X any] struct{ h *helper.Helper[X] }

// NewShell returns a shell sorter over h.
func NewShell[X any](h *helper.Helper[X]) *Shell[X] { return &Shell[X]{h: h} }

func (s *Shell[X]) Name() string              { return NameShell }
func (s *Shell[X]) Helper() *helper.Helper[X] { return s.h }

// Sort runs gap-insertion passes for gaps …, 40, 13, 4, 1.
func (s *Shell[X]) Sort(xs []X) error {
	n := len(xs)
	gap := 1
	for gap < n/3 {
		gap = 3*gap + 1
	}
	for ; gap >= 1; gap /= 3 {
		for i := gap; i < n; i++ {
			for j := i; j >= gap && s.h.SwapConditional(xs, j-gap, j); j -= gap {
			}
		}
	}

	return s.h.Err()
}
