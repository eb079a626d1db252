// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

// Package bench measures the computation modes of modprod against each other:
// it generates a deterministic input, runs every strategy for a configured
// number of repetitions, and reports per-strategy products and wall-clock
// timings together with a ranking.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gammazero/deque"

	"github.com/modprod/modprod-go"
)

var errRepetitions = errors.New("repetitions must be at least 1")

// Spec configures a measurement run.
type Spec struct {
	// Size is the input array length, 1 <= Size <= modprod.MaxSize.
	Size int

	// Workers is the worker count for the parallel strategies,
	// 1 <= Workers <= min(Size, modprod.MaxWorkers).
	Workers int

	// ZeroIndex, if in [0, Size), forces a zero element at that position of
	// the generated input. -1 leaves the input free of zeros.
	ZeroIndex int

	// Repetitions is how many times each strategy is run. The reported
	// elapsed time per strategy is the best across repetitions.
	Repetitions int
}

func (s Spec) validate() error {
	switch {
	case s.Size < 1:
		return modprod.ErrEmptyInput
	case s.Size > modprod.MaxSize:
		return modprod.ErrTooLarge
	case s.Workers < 1 || s.Workers > modprod.MaxWorkers || s.Workers > s.Size:
		return modprod.ErrWorkerCount
	case s.ZeroIndex < -1 || s.ZeroIndex >= s.Size:
		return modprod.ErrZeroIndex
	case s.Repetitions < 1:
		return errRepetitions
	}
	return nil
}

// Summary is the per-strategy outcome of a run.
type Summary struct {
	Strategy modprod.Strategy
	Product  int
	Elapsed  []time.Duration
	Best     time.Duration
}

// Report is the outcome of [Run]: one summary per strategy in the order of
// [modprod.Strategies], plus a ranking from fastest to slowest by best
// elapsed time.
type Report struct {
	Spec      Spec
	Host      HostInfo
	Summaries []Summary
	Ranked    []modprod.Strategy
}

type trial struct {
	strategy modprod.Strategy
}

// Run validates the spec, generates the input, and executes every strategy
// Repetitions times. Trials are queued up front and executed strictly in FIFO
// order, interleaving strategies across repetitions so that no strategy
// benefits from a warmer cache than its rivals on the same repetition.
//
// All strategies run against the same Round, so every trial of the same spec
// must produce the same product; Run fails if one does not.
func Run(ctx context.Context, spec Spec) (*Report, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	data := modprod.Generate(spec.Size, spec.ZeroIndex)
	round, err := modprod.NewRound(data, spec.Workers)
	if err != nil {
		return nil, err
	}

	var trials deque.Deque[trial]
	for i := 0; i < spec.Repetitions; i++ {
		for _, s := range modprod.Strategies {
			trials.PushBack(trial{strategy: s})
		}
	}

	byStrategy := make(map[modprod.Strategy]*Summary, len(modprod.Strategies))
	for trials.Len() > 0 {
		tr := trials.PopFront()
		start := time.Now()
		product, err := round.Compute(ctx, tr.strategy)
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("strategy %v: %w", tr.strategy, err)
		}

		s := byStrategy[tr.strategy]
		if s == nil {
			s = &Summary{Strategy: tr.strategy, Product: product, Best: elapsed}
			byStrategy[tr.strategy] = s
		} else if s.Product != product {
			return nil, fmt.Errorf("strategy %v: product changed between repetitions: %d then %d",
				tr.strategy, s.Product, product)
		}
		s.Elapsed = append(s.Elapsed, elapsed)
		if elapsed < s.Best {
			s.Best = elapsed
		}
	}

	report := &Report{
		Spec: spec,
		Host: hostInfo(),
	}
	for _, s := range modprod.Strategies {
		report.Summaries = append(report.Summaries, *byStrategy[s])
	}
	report.Ranked = rank(report.Summaries)
	return report, nil
}
