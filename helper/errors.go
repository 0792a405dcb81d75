// SPDX-License-Identifier: MIT

package helper

import (
	"errors"
	"fmt"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrNoComparator indicates that Compare was called on an element type
	// with neither an explicit Comparator nor a natural order.
	// Classification: configuration error.
	ErrNoComparator = errors.New("helper: no comparator and no natural ordering for element type")

	// ErrNotInitialized indicates use before Init/InitRuns: RandomN with n ≤ 0,
	// or GatherStatistic on a counting Helper without a StatPack.
	// Classification: configuration error.
	ErrNotInitialized = errors.New("helper: not initialized")

	// ErrInvalidSize indicates a non-positive size for Random or InitRuns.
	// Classification: invalid argument.
	ErrInvalidSize = errors.New("helper: size must be positive")

	// ErrBadRuns indicates a non-positive run count for InitRuns.
	ErrBadRuns = errors.New("helper: run count must be positive")

	// ErrNilGenerator indicates a nil element generator passed to Random.
	ErrNilGenerator = errors.New("helper: generator is nil")

	// ErrNotSorted indicates PostProcess on a sequence that is out of order.
	ErrNotSorted = errors.New("helper: sequence is not sorted")

	// ErrClosed indicates Random or InitRuns after Close.
	ErrClosed = errors.New("helper: closed")
)

// helperErrorf attaches the method tag to err, preserving it for errors.Is.
func helperErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
