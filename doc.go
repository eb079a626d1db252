// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

// Package modprod computes the modular product of a large integer array using
// several competing coordination strategies, so that their latency and
// synchronization behavior can be compared on the same input.
//
// The product of all elements is reduced modulo [Modulus] after every
// multiplication, bounding magnitude and keeping the arithmetic in fixed-width
// integers. A zero element forces the total product to zero and permits early
// abandonment of any work still in flight; the strategies differ in how
// quickly and by what discipline the controller learns about it.
//
// A [Round] partitions the array across a fixed set of workers, one contiguous
// segment per worker. [Round.Compute] then runs one coordination round under a
// chosen [Strategy]:
//
//   - [Sequential] is the single-threaded baseline.
//   - [JoinBarrier] launches all workers and joins each termination handle in
//     turn, with no early exit.
//   - [BusyWait] polls per-worker completion flags in a spin loop and cancels
//     the round as soon as any zero partial product is observed.
//   - [CounterSignal] blocks on a one-shot completion latch fired either by a
//     zero-finding worker or by the last worker to report a non-zero partial.
//
// Every strategy joins every launched worker before reporting, so no worker
// survives past its round regardless of which coordination path was taken.
package modprod
