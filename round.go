// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

import (
	"context"
	"fmt"
	"slices"
)

// A ProbeFunc observes every element visit a worker makes, identified by the
// worker index and the array index about to be multiplied. Probes are called
// on worker goroutines and must be thread-safe. They exist for instrumentation
// (the bench harness and tests use them to count scanned elements and to make
// segments artificially slow); a nil probe costs nothing.
type ProbeFunc = func(worker, index int)

// A Round binds an input array to a fixed set of contiguous segments, one per
// worker. The array is read-only for the lifetime of the round and is read
// concurrently by all workers; it must not be mutated while a computation is
// in flight.
//
// Each call to [Round.Compute] runs an independent coordination round: worker
// goroutines and their result cells are created fresh per call and torn down
// before it returns, so a Round may be reused, including concurrently.
type Round struct {
	data     []int
	segments []Segment
	probe    ProbeFunc
}

// NewRound validates the configuration and partitions the array. It returns
// [ErrEmptyInput], [ErrTooLarge], or [ErrWorkerCount] if the input length or
// worker count is out of range; a round is only ever constructed with
// 1 <= workers <= min(len(data), [MaxWorkers]).
func NewRound(data []int, workers int) (*Round, error) {
	switch {
	case len(data) == 0:
		return nil, ErrEmptyInput
	case len(data) > MaxSize:
		return nil, ErrTooLarge
	case workers < 1 || workers > MaxWorkers || workers > len(data):
		return nil, ErrWorkerCount
	}
	return &Round{
		data:     data,
		segments: Partition(len(data), workers),
	}, nil
}

// SetProbe installs a per-element instrumentation hook. It must not be called
// while a computation is in flight.
func (r *Round) SetProbe(probe ProbeFunc) {
	r.probe = probe
}

// Workers returns the number of workers the round was configured with.
func (r *Round) Workers() int {
	return len(r.segments)
}

// Segments returns a copy of the round's segment table.
func (r *Round) Segments() []Segment {
	return slices.Clone(r.segments)
}

// Compute runs one coordination round under the given strategy and returns
// the modular product of the array, a value in [0, [Modulus]). The result is
// zero if and only if the array contains a zero element, regardless of
// strategy.
//
// The context cancels the round cooperatively: workers abandon their scans at
// the next element boundary and Compute returns the context's error. Even
// then, Compute does not return until every launched worker has terminated.
func (r *Round) Compute(ctx context.Context, strategy Strategy) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	switch strategy {
	case Sequential:
		return SequentialProduct(r.data), nil
	case JoinBarrier:
		return r.computeJoinBarrier(ctx)
	case BusyWait:
		return r.computeBusyWait(ctx)
	case CounterSignal:
		return r.computeCounterSignal(ctx)
	default:
		panic(fmt.Sprintf("unknown strategy %d", strategy))
	}
}
