// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

import "context"

// A Strategy selects the coordination discipline used by [Round.Compute].
type Strategy int

const (
	// Sequential computes the product on the calling goroutine with no
	// workers at all. It is the correctness and latency baseline.
	Sequential Strategy = iota

	// JoinBarrier launches all workers and blocks on each worker's
	// termination handle in turn, unconditionally. No cancellation, no early
	// exit; the simplest and slowest-to-react strategy, with zero risk of
	// lost wake-ups or races on the termination condition.
	JoinBarrier

	// BusyWait launches all workers and polls their completion flags in a
	// spin loop, cancelling the round as soon as any zero partial product is
	// observed. It trades CPU for lower latency to detect a zero; detection
	// is eventual, not bounded-time.
	BusyWait

	// CounterSignal launches all workers and blocks on a one-shot completion
	// latch. A zero-finding worker fires the latch immediately; otherwise the
	// worker whose non-zero completion brings the shared counter to the
	// worker count fires it. Signal-driven wakeup with no polling.
	CounterSignal
)

// Strategies lists every computation mode in a stable order, for callers that
// iterate all of them.
var Strategies = []Strategy{Sequential, JoinBarrier, BusyWait, CounterSignal}

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case JoinBarrier:
		return "join-barrier"
	case BusyWait:
		return "busy-wait"
	case CounterSignal:
		return "counter-signal"
	default:
		return "unknown"
	}
}

// Product computes the modular product of data under the given strategy using
// the given number of workers. It is a convenience wrapper around [NewRound]
// and [Round.Compute] for single-shot use.
func Product(ctx context.Context, data []int, workers int, strategy Strategy) (int, error) {
	r, err := NewRound(data, workers)
	if err != nil {
		return 0, err
	}
	return r.Compute(ctx, strategy)
}
