// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package bench

import (
	"cmp"
	"time"

	"github.com/addrummond/heap"

	"github.com/modprod/modprod-go"
)

type rankEntry struct {
	strategy modprod.Strategy
	best     time.Duration
}

func (a *rankEntry) Cmp(b *rankEntry) int {
	if c := cmp.Compare(a.best, b.best); c != 0 {
		return c
	}
	// Ties resolve in declaration order so ranking stays deterministic.
	return cmp.Compare(a.strategy, b.strategy)
}

// rank orders strategies from fastest to slowest by best elapsed time.
func rank(summaries []Summary) []modprod.Strategy {
	var h heap.Heap[rankEntry, heap.Min]
	for _, s := range summaries {
		heap.PushOrderable(&h, rankEntry{strategy: s.Strategy, best: s.Best})
	}
	ranked := make([]modprod.Strategy, 0, len(summaries))
	for {
		e, ok := heap.PopOrderable(&h)
		if !ok {
			break
		}
		ranked = append(ranked, e.strategy)
	}
	return ranked
}
