// SPDX-License-Identifier: MIT

package sorts

import "github.com/katalvlaran/lvlbench/helper"

// Quick is 3-way (Dijkstra) quicksort with a median-of-three pivot and an
// insertion cutoff. Recursion goes into the smaller side first and loops on
// the larger, bounding stack depth to O(log n).
type Quick[X any] struct {
	h    *helper.Helper[X]
	opts options
}

// NewQuick returns a quick sorter over h (default cutoff DefaultQuickCutoff).
func NewQuick[X any](h *helper.Helper[X], opts ...Option) *Quick[X] {
	return &Quick[X]{h: h, opts: gatherOptions(DefaultQuickCutoff, opts)}
}

func (s *Quick[X]) Name() string              { return NameQuick }
func (s *Quick[X]) Helper() *helper.Helper[X] { return s.h }

// Sort is not stable. Inputs with many equal keys are handled in linear
// time per distinct key thanks to 3-way partitioning.
func (s *Quick[X]) Sort(xs []X) error {
	s.sort(xs, 0, len(xs)-1)

	return s.h.Err()
}

// sort orders the inclusive range xs[lo..hi].
func (s *Quick[X]) sort(xs []X, lo, hi int) {
	for hi > lo {
		if hi-lo+1 <= s.opts.cutoff {
			insertionRange(s.h, xs, lo, hi+1)
			return
		}
		lt, gt := s.partition(xs, lo, hi)
		if lt-lo < hi-gt {
			s.sort(xs, lo, lt-1)
			lo = gt + 1
		} else {
			s.sort(xs, gt+1, hi)
			hi = lt - 1
		}
	}
}

// partition moves the median of xs[lo], xs[mid], xs[hi] to lo and splits
// the range into < pivot | == pivot | > pivot, returning the bounds of the
// middle block.
func (s *Quick[X]) partition(xs []X, lo, hi int) (lt, gt int) {
	s.medianToFront(xs, lo, lo+(hi-lo)/2, hi)
	pivot := xs[lo]
	s.h.IncrementHits(1)

	lt, gt = lo, hi
	i := lo + 1
	for i <= gt {
		s.h.IncrementHits(1)
		switch c := s.h.Compare(xs[i], pivot); {
		case c < 0:
			s.h.Swap(xs, lt, i)
			lt++
			i++
		case c > 0:
			s.h.Swap(xs, i, gt)
			gt--
		default:
			i++
		}
	}

	return lt, gt
}

// medianToFront orders xs[a], xs[b], xs[c] and swaps the median into a.
func (s *Quick[X]) medianToFront(xs []X, a, b, c int) {
	if s.h.CompareAt(xs, b, a) < 0 {
		s.h.Swap(xs, a, b)
	}
	if s.h.CompareAt(xs, c, b) < 0 {
		s.h.Swap(xs, b, c)
		if s.h.CompareAt(xs, b, a) < 0 {
			s.h.Swap(xs, a, b)
		}
	}
	// xs[a] ≤ xs[b] ≤ xs[c]; the median moves to the pivot slot.
	s.h.Swap(xs, a, b)
}
