// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlbench/helper"
)

// ErrNoSizes indicates a Sweep with neither explicit sizes nor Config.Sizes.
var ErrNoSizes = errors.New("bench: no sizes to sweep")

// Sweep runs the benchmark once per size, each on a fresh Clone of base.
// sizes == nil falls back to Config.Sizes.
// Implementation:
//   - Stage 1: clone base once per size, sequentially, so the derived seeds
//     depend only on the order of sizes.
//   - Stage 2: Run every clone, inline or on an ants pool of
//     Config.Parallelism workers.
//   - Stage 3: reports are returned in the order of sizes; failed sizes are
//     skipped and their errors combined.
//
// base itself is never measured and stays usable afterwards.
func (b *Benchmark[X]) Sweep(base *helper.Helper[X], sizes []int) ([]Report, error) {
	if base == nil {
		return nil, ErrNilHelper
	}
	if sizes == nil {
		sizes = b.cfg.Sizes
	}
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}

	clones := make([]*helper.Helper[X], len(sizes))
	for i, n := range sizes {
		clones[i] = base.Clone(fmt.Sprintf("%s/n=%d", base.Description(), n), n)
	}
	defer func() {
		for _, c := range clones {
			c.Close()
		}
	}()

	reports := make([]Report, len(sizes))
	errs := make([]error, len(sizes))
	run := func(i int) {
		reports[i], errs[i] = b.Run(clones[i])
	}

	if b.cfg.Parallelism > 1 && len(sizes) > 1 {
		if err := b.runPooled(len(sizes), run); err != nil {
			return nil, err
		}
	} else {
		for i := range sizes {
			run(i)
		}
	}

	var (
		out    = make([]Report, 0, len(sizes))
		errAll error
	)
	for i := range sizes {
		if errs[i] != nil {
			errAll = multierr.Append(errAll, fmt.Errorf("n=%d: %w", sizes[i], errs[i]))
			continue
		}
		out = append(out, reports[i])
	}
	if errAll != nil {
		b.opts.logger.Warn("sweep finished with failures",
			zap.String("algorithm", b.algorithm),
			zap.Int("failed", len(multierr.Errors(errAll))),
			zap.Int("succeeded", len(out)))
	}

	return out, errAll
}

// runPooled executes task(0..count-1) on a bounded ants pool and waits.
func (b *Benchmark[X]) runPooled(count int, task func(i int)) error {
	pool, err := ants.NewPool(b.cfg.Parallelism)
	if err != nil {
		return fmt.Errorf("bench: worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			task(i)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("bench: submit size #%d: %w", i, err)
		}
	}
	wg.Wait()

	return nil
}
