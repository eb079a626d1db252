// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

// A Segment is the half-open range [Start, End) of the input array assigned
// to the worker with the given index.
type Segment struct {
	Index int
	Start int
	End   int
}

// Len returns the number of elements in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Partition splits [0, n) into workers contiguous, non-overlapping segments
// that cover the range exactly once, ordered by index. Each segment receives
// n/workers elements; the first n%workers segments receive one extra, so
// segment lengths differ by at most one. Partition is deterministic: the same
// (n, workers) pair always yields the same boundaries.
//
// Callers must ensure 1 <= workers <= n; [NewRound] validates this.
func Partition(n, workers int) []Segment {
	size := n / workers
	remainder := n % workers
	segments := make([]Segment, workers)
	start := 0
	for i := range segments {
		end := start + size
		if i < remainder {
			end++
		}
		segments[i] = Segment{Index: i, Start: start, End: end}
		start = end
	}
	return segments
}
