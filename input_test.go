// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modprod/modprod-go"
)

func TestGenerateDeterministic(t *testing.T) {
	chk := require.New(t)
	chk.Equal(modprod.Generate(1000, -1), modprod.Generate(1000, -1))
}

func TestGenerateRange(t *testing.T) {
	chk := require.New(t)
	for _, v := range modprod.Generate(10_000, -1) {
		chk.GreaterOrEqual(v, 1)
		chk.LessOrEqual(v, 3000)
	}
}

func TestGenerateZeroInjection(t *testing.T) {
	chk := require.New(t)
	data := modprod.Generate(100, 42)
	chk.Zero(data[42])

	// Only the forced element differs from the zero-free fill.
	clean := modprod.Generate(100, -1)
	for i := range data {
		if i == 42 {
			continue
		}
		chk.Equal(clean[i], data[i])
	}
}
