// SPDX-License-Identifier: MIT

package sorts

import "github.com/katalvlaran/lvlbench/helper"

// Merge is top-down merge sort with an insertion cutoff and a skip of the
// merge step when the two halves are already in order.
type Merge[X any] struct {
	h    *helper.Helper[X]
	opts options
}

// NewMerge returns a merge sorter over h (default cutoff DefaultMergeCutoff).
func NewMerge[X any](h *helper.Helper[X], opts ...Option) *Merge[X] {
	return &Merge[X]{h: h, opts: gatherOptions(DefaultMergeCutoff, opts)}
}

func (s *Merge[X]) Name() string              { return NameMerge }
func (s *Merge[X]) Helper() *helper.Helper[X] { return s.h }

// Sort is stable.
// Implementation:
//   - Stage 1: borrow an auxiliary buffer of len(xs) from Helper.Scratch.
//   - Stage 2: recursive halving; runs of at most cutoff elements use insertion.
//   - Stage 3: merge through the buffer, every move charged as a Copy.
//
// Complexity:
//   - Time O(n log n), Space O(n) (the scratch buffer, reused across runs).
func (s *Merge[X]) Sort(xs []X) error {
	if len(xs) < 2 {
		return s.h.Err()
	}
	aux := s.h.Scratch(len(xs))
	s.sort(xs, aux, 0, len(xs))

	return s.h.Err()
}

func (s *Merge[X]) sort(xs, aux []X, lo, hi int) {
	if hi-lo <= s.opts.cutoff {
		insertionRange(s.h, xs, lo, hi)
		return
	}
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	s.sort(xs, aux, lo, mid)
	s.sort(xs, aux, mid, hi)
	if s.h.CompareAt(xs, mid-1, mid) <= 0 {
		return
	}
	s.merge(xs, aux, lo, mid, hi)
}

// merge combines sorted xs[lo:mid] and xs[mid:hi].
func (s *Merge[X]) merge(xs, aux []X, lo, mid, hi int) {
	for k := lo; k < hi; k++ {
		s.h.Copy(xs, k, aux, k)
	}
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			s.h.Copy(aux, j, xs, k)
			j++
		case j >= hi:
			s.h.Copy(aux, i, xs, k)
			i++
		case s.h.CompareAt(aux, j, i) < 0:
			s.h.Copy(aux, j, xs, k)
			j++
		default:
			s.h.Copy(aux, i, xs, k)
			i++
		}
	}
}
