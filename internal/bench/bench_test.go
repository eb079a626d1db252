// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package bench_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/modprod/modprod-go"
	"github.com/modprod/modprod-go/internal/bench"
)

func TestRunMatchesSequential(t *testing.T) {
	chk := require.New(t)
	report, err := bench.Run(context.Background(), bench.Spec{
		Size:        500,
		Workers:     4,
		ZeroIndex:   -1,
		Repetitions: 2,
	})
	chk.NoError(err)

	want := modprod.SequentialProduct(modprod.Generate(500, -1))
	chk.Len(report.Summaries, len(modprod.Strategies))
	for _, s := range report.Summaries {
		chk.Equal(want, s.Product, "strategy %v", s.Strategy)
		chk.Len(s.Elapsed, 2, "strategy %v", s.Strategy)
		chk.GreaterOrEqual(s.Best, time.Duration(0))
	}
	chk.ElementsMatch(modprod.Strategies, report.Ranked)
}

func TestRunZeroInjected(t *testing.T) {
	chk := require.New(t)
	report, err := bench.Run(context.Background(), bench.Spec{
		Size:        500,
		Workers:     4,
		ZeroIndex:   250,
		Repetitions: 1,
	})
	chk.NoError(err)
	for _, s := range report.Summaries {
		chk.Zero(s.Product, "strategy %v", s.Strategy)
	}
}

func TestRunValidation(t *testing.T) {
	chk := require.New(t)
	ctx := context.Background()

	_, err := bench.Run(ctx, bench.Spec{Size: 0, Workers: 1, ZeroIndex: -1, Repetitions: 1})
	chk.ErrorIs(err, modprod.ErrEmptyInput)

	_, err = bench.Run(ctx, bench.Spec{Size: 100, Workers: 0, ZeroIndex: -1, Repetitions: 1})
	chk.ErrorIs(err, modprod.ErrWorkerCount)

	_, err = bench.Run(ctx, bench.Spec{Size: 100, Workers: modprod.MaxWorkers + 1, ZeroIndex: -1, Repetitions: 1})
	chk.ErrorIs(err, modprod.ErrWorkerCount)

	_, err = bench.Run(ctx, bench.Spec{Size: 100, Workers: 4, ZeroIndex: 100, Repetitions: 1})
	chk.ErrorIs(err, modprod.ErrZeroIndex)

	_, err = bench.Run(ctx, bench.Spec{Size: 100, Workers: 4, ZeroIndex: -2, Repetitions: 1})
	chk.ErrorIs(err, modprod.ErrZeroIndex)

	_, err = bench.Run(ctx, bench.Spec{Size: 100, Workers: 4, ZeroIndex: -1, Repetitions: 0})
	chk.Error(err)
}

func TestReportWriteText(t *testing.T) {
	chk := require.New(t)
	report, err := bench.Run(context.Background(), bench.Spec{
		Size:        100,
		Workers:     2,
		ZeroIndex:   -1,
		Repetitions: 1,
	})
	chk.NoError(err)

	var sb strings.Builder
	chk.NoError(report.WriteText(&sb))
	out := sb.String()
	for _, s := range modprod.Strategies {
		chk.Contains(out, s.String())
	}
	chk.Contains(out, "Product =")
	chk.Contains(out, "fastest:")
}
