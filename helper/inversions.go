// SPDX-License-Identifier: MIT

package helper

// Sorted reports whether xs is in non-decreasing order. The check is not
// instrumented. Without an ordering it returns false and records
// ErrNoComparator.
//
// Complexity: O(n).
func (h *Helper[X]) Sorted(xs []X) bool {
	cmp := h.comparator()
	if cmp == nil {
		return false
	}
	for i := 1; i < len(xs); i++ {
		if cmp(xs[i-1], xs[i]) > 0 {
			return false
		}
	}

	return true
}

// Inversions counts the pairs i < j with xs[i] > xs[j]. xs is not modified
// and nothing is instrumented.
// Implementation:
//   - Stage 1: copy xs into a work buffer.
//   - Stage 2: bottom-up merge sort; each element taken from the right run
//     while the left run still holds k elements contributes k inversions.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func (h *Helper[X]) Inversions(xs []X) int64 {
	cmp := h.comparator()
	if cmp == nil || len(xs) < 2 {
		return 0
	}

	n := len(xs)
	src := make([]X, n)
	copy(src, xs)
	dst := make([]X, n)

	var count int64
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			i, j, k := lo, mid, lo
			for i < mid && j < hi {
				if cmp(src[j], src[i]) < 0 {
					dst[k] = src[j]
					count += int64(mid - i)
					j++
				} else {
					dst[k] = src[i]
					i++
				}
				k++
			}
			k += copy(dst[k:], src[i:mid])
			copy(dst[k:], src[j:hi])
		}
		src, dst = dst, src
	}

	return count
}
