// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

import (
	"context"
	"sync"

	"github.com/modprod/modprod-go/internal/state"
)

// computeCounterSignal launches one worker per segment and blocks on a
// one-shot completion latch, with no polling. A worker that finds a zero
// fires the latch immediately and never touches the shared counter. A worker
// with a non-zero partial increments the counter; the increment and the
// comparison against the worker count form a single critical section, so
// exactly one worker can observe itself as last and fire the latch. Extra
// fires from additional zero-finding workers are harmless no-ops.
//
// After the single latch wait, the controller inspects the published partials
// for a zero, cancels any workers still mid-scan, and joins everyone before
// aggregating.
func (r *Round) computeCounterSignal(parent context.Context) (int, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cells := newCells(len(r.segments))
	var (
		counter state.Counter
		wg      sync.WaitGroup
	)
	completed := state.NewLatch()
	workers := len(r.segments)

	for i := range r.segments {
		seg := r.segments[i]
		c := &cells[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.runWorker(ctx, seg, c, func(zero bool) {
				if zero {
					completed.Fire()
					return
				}
				if counter.IncrementAndCheck(workers) {
					completed.Fire()
				}
			})
		}()
	}

	// Exactly one wait. The latch fires when either all workers have
	// reported non-zero completion or any worker has reported a zero.
	if err := completed.Wait(ctx); err != nil {
		wg.Wait()
		return 0, err
	}

	foundZero := false
	for i := range cells {
		c := &cells[i]
		if c.done.Load() && c.prod.Load() == 0 {
			foundZero = true
			break
		}
	}
	if foundZero {
		cancel()
	}
	wg.Wait()
	return total(cells, foundZero), nil
}
