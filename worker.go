// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

import (
	"context"
	"sync/atomic"
)

// A cell is a worker-owned result slot. The product is initialized to the
// multiplicative identity before the round and written exactly once by its
// owning worker; done is the worker's final store for the slot. A controller
// may read prod freely (it is atomic and either 1, the published partial, or
// 0 the instant a zero is found) but must observe done as true before
// treating the value as a published partial result.
type cell struct {
	prod atomic.Int64
	done atomic.Bool
}

func newCells(n int) []cell {
	cells := make([]cell, n)
	for i := range cells {
		cells[i].prod.Store(1)
	}
	return cells
}

// runWorker computes the modular product of one segment and publishes it into
// the worker's cell. On encountering a zero element the scan short-circuits:
// the zero is stored immediately so that a polling controller can observe it
// before (or regardless of) the done flag.
//
// Cancellation is checked between multiplications. A worker cancelled
// mid-scan abandons without publishing: its done flag stays false and its
// cell is excluded from aggregation rather than mistaken for a partial of 1.
//
// finished, if non-nil, is invoked after publication with the zero outcome;
// it is never invoked for an abandoned scan.
func (r *Round) runWorker(ctx context.Context, seg Segment, c *cell, finished func(zero bool)) {
	local := int64(1)
	for i := seg.Start; i < seg.End; i++ {
		if ctx.Err() != nil {
			return
		}
		if r.probe != nil {
			r.probe(seg.Index, i)
		}
		v := r.data[i]
		if v == 0 {
			local = 0
			break
		}
		local = mulmod(local, v)
	}
	c.prod.Store(local)
	c.done.Store(true)
	if finished != nil {
		finished(local == 0)
	}
}
