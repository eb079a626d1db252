// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package state_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modprod/modprod-go/internal/state"
)

func TestCounterExactlyOneLast(t *testing.T) {
	chk := require.New(t)
	var c state.Counter

	const target = 64
	var lastObservations atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < target; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.IncrementAndCheck(target) {
				lastObservations.Add(1)
			}
		}()
	}
	wg.Wait()

	chk.EqualValues(1, lastObservations.Load())
	chk.Equal(target, c.Value())
}

func TestCounterExceedingTargetPanics(t *testing.T) {
	chk := require.New(t)
	var c state.Counter
	chk.True(c.IncrementAndCheck(1))
	chk.Panics(func() {
		c.IncrementAndCheck(1)
	})
}
