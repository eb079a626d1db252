// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

import (
	"context"
	"runtime"
	"sync"
)

// computeBusyWait launches one worker per segment and then spins, sweeping
// every cell until either a zero partial product is observed or all workers
// report done. On observing a zero it breaks out immediately, without waiting
// for the other workers, requests cooperative cancellation, and joins every
// worker before aggregating.
//
// The sweep reads only atomics: a worker's prod store happens before its done
// store, so a cell whose done flag reads true holds the published partial,
// and a prod that reads zero is definitive the moment it is seen, done or
// not. Detection is eventual, not bounded-time; the polling deliberately
// burns CPU, which is this strategy's known weakness.
func (r *Round) computeBusyWait(parent context.Context) (int, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cells := newCells(len(r.segments))
	var wg sync.WaitGroup
	for i := range r.segments {
		seg := r.segments[i]
		c := &cells[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.runWorker(ctx, seg, c, nil)
		}()
	}

	foundZero := false
sweep:
	for parent.Err() == nil {
		allDone := true
		for i := range cells {
			c := &cells[i]
			if !c.done.Load() {
				allDone = false
			}
			if c.prod.Load() == 0 {
				foundZero = true
				break sweep
			}
		}
		if allDone {
			break
		}
		runtime.Gosched()
	}

	if foundZero {
		// Cooperative: workers check the context between multiplications and
		// abandon without publishing.
		cancel()
	}
	wg.Wait()

	if !foundZero {
		if err := parent.Err(); err != nil {
			return 0, err
		}
	}
	return total(cells, foundZero), nil
}
