// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

import "context"

// computeJoinBarrier launches one worker per segment and blocks on each
// worker's termination handle in turn until every worker has finished,
// whether it found a zero or not. There is no cancellation path of its own:
// the aggregate is deterministic regardless of which worker finds a zero.
func (r *Round) computeJoinBarrier(ctx context.Context) (int, error) {
	cells := newCells(len(r.segments))

	exited := make([]chan struct{}, len(r.segments))
	for i := range r.segments {
		ch := make(chan struct{})
		exited[i] = ch
		seg := r.segments[i]
		c := &cells[i]
		go func() {
			defer close(ch)
			r.runWorker(ctx, seg, c, nil)
		}()
	}

	// Join every worker, in index order, unconditionally.
	for _, ch := range exited {
		<-ch
	}

	// Workers only leave cells unpublished when the caller's context was
	// canceled; the round cannot report a product without all workers
	// accounted for.
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return total(cells, false), nil
}
