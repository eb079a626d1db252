// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package state

import "context"

// Latch is a one-shot completion event: any number of goroutines may fire it,
// and a single waiter is released once it has fired. The notification channel
// has a buffer of one and Fire sends without blocking, so firing is
// idempotent within a coordination round; extra fires are no-ops rather than
// lost or duplicated wake-ups.
type Latch struct {
	ch chan struct{}
}

// NewLatch returns an unfired latch.
func NewLatch() *Latch {
	return &Latch{ch: make(chan struct{}, 1)}
}

// Fire releases the waiter. Safe to call from multiple goroutines and more
// than once.
func (l *Latch) Fire() {
	select {
	case l.ch <- struct{}{}:
	default:
		// Already fired and not yet consumed.
	}
}

// Wait blocks until the latch fires or the context is done, consuming the
// notification. Returns the context's error if it ended the wait.
func (l *Latch) Wait(ctx context.Context) error {
	select {
	case <-l.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
