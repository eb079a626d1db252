// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package state

import "sync"

// Counter counts workers that have reported a non-zero completion. The zero
// value is ready to use.
type Counter struct {
	mu sync.Mutex
	n  int
}

// IncrementAndCheck increments the counter and reports whether the increment
// brought it exactly to target. The increment and the comparison form a
// single critical section, so at most one caller ever observes itself as the
// one that reached the target and no update can be lost.
//
// Panics if the counter exceeds target: each worker reports completion at
// most once, so exceeding the worker count is a programming defect, not an
// operational error.
func (c *Counter) IncrementAndCheck(target int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	if c.n > target {
		panic("completion counter exceeded worker count")
	}
	return c.n == target
}

// Value returns the current count.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
