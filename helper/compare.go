// SPDX-License-Identifier: MIT

package helper

import "golang.org/x/exp/constraints"

// Comparator returns a negative number when a < b, zero when a == b and a
// positive number when a > b. Only the sign is used.
type Comparator[X any] func(a, b X) int

// Comparable is the natural-order capability of a user type:
// a.Compare(b) < 0 ⇔ a < b.
type Comparable[X any] interface {
	Compare(other X) int
}

// compareOrdered is a three-way comparison for ordered builtins.
// NaN compares equal to everything, which keeps sorts total.
func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// OrderedComparator returns the natural order of T.
func OrderedComparator[T constraints.Ordered]() Comparator[T] {
	return compareOrdered[T]
}

// orderedVia adapts the order of builtin T to X, where X is known to be T.
func orderedVia[T constraints.Ordered, X any]() Comparator[X] {
	return func(a, b X) int {
		return compareOrdered(any(a).(T), any(b).(T))
	}
}

// naturalComparator resolves the natural order of X, or nil when X has none.
// Implementation:
//   - Stage 1: X implements Comparable[X] → delegate to its Compare.
//   - Stage 2: X is a builtin ordered type → compare through orderedVia.
//
// Named types over builtins (type Score int) are not matched by Stage 2;
// they need Comparable or an explicit Comparator.
//
// Complexity: O(1) to resolve; resolved once per Helper.
func naturalComparator[X any]() Comparator[X] {
	var zero X
	if _, ok := any(zero).(Comparable[X]); ok {
		return func(a, b X) int { return any(a).(Comparable[X]).Compare(b) }
	}

	switch any(zero).(type) {
	case int:
		return orderedVia[int, X]()
	case int8:
		return orderedVia[int8, X]()
	case int16:
		return orderedVia[int16, X]()
	case int32:
		return orderedVia[int32, X]()
	case int64:
		return orderedVia[int64, X]()
	case uint:
		return orderedVia[uint, X]()
	case uint8:
		return orderedVia[uint8, X]()
	case uint16:
		return orderedVia[uint16, X]()
	case uint32:
		return orderedVia[uint32, X]()
	case uint64:
		return orderedVia[uint64, X]()
	case uintptr:
		return orderedVia[uintptr, X]()
	case float32:
		return orderedVia[float32, X]()
	case float64:
		return orderedVia[float64, X]()
	case string:
		return orderedVia[string, X]()
	}

	return nil
}

// sign clamps a comparator result to -1, 0, +1.
func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}
