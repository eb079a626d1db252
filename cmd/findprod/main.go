// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

// Command findprod computes the modular product of a generated integer array
// under every coordination strategy and prints a timing report.
//
// Usage:
//
//	findprod -size 1000000 -workers 4 -zero -1 -reps 3
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/modprod/modprod-go/internal/bench"
)

func main() {
	size := flag.Int("size", 1_000_000, "input array size")
	workers := flag.Int("workers", 4, "worker count for the parallel strategies")
	zero := flag.Int("zero", -1, "index at which to force a zero element, -1 for none")
	reps := flag.Int("reps", 1, "repetitions per strategy")
	flag.Parse()

	report, err := bench.Run(context.Background(), bench.Spec{
		Size:        *size,
		Workers:     *workers,
		ZeroIndex:   *zero,
		Repetitions: *reps,
	})
	if err != nil {
		log.Fatalf("findprod: %v", err)
	}
	if err := report.WriteText(os.Stdout); err != nil {
		log.Fatalf("findprod: %v", err)
	}
}
