// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch with errors.Is; messages are stable.
var (
	// ErrBadRuns indicates a run budget (nRuns) smaller than 1.
	ErrBadRuns = errors.New("stats: run budget must be positive")

	// ErrBadSize indicates a problem size N smaller than 1.
	ErrBadSize = errors.New("stats: problem size must be positive")

	// ErrNilNormalizer indicates that a series was declared without a normalizer.
	ErrNilNormalizer = errors.New("stats: normalizer is nil")

	// ErrRunBudgetExceeded indicates an Add/Gather beyond the configured nRuns.
	// The series (or the whole pack) is left unchanged.
	ErrRunBudgetExceeded = errors.New("stats: run budget exceeded")

	// ErrUnknownQuantity indicates a lookup or snapshot entry for a quantity
	// name that was never registered in the pack.
	ErrUnknownQuantity = errors.New("stats: unknown quantity")

	// ErrSeriesOutOfStep indicates a series of a pack whose count no longer
	// matches the pack's (it was mutated directly through Get).
	ErrSeriesOutOfStep = errors.New("stats: series out of step with pack")

	// ErrUnknownNormalizer indicates an unrecognised normalizer name.
	ErrUnknownNormalizer = errors.New("stats: unknown normalizer")
)

// statsErrorf prefixes err with the operation tag, keeping err for errors.Is.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
