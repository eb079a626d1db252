// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/modprod/modprod-go"
)

func TestSequentialProductKnownArray(t *testing.T) {
	chk := require.New(t)
	// 7*3*5*2*9*4*6*8*1*5 = 453600; 453600 mod 9973 = 2430.
	chk.Equal(2430, modprod.SequentialProduct([]int{7, 3, 5, 2, 9, 4, 6, 8, 1, 5}))
}

func TestSequentialProductZero(t *testing.T) {
	chk := require.New(t)
	chk.Zero(modprod.SequentialProduct([]int{7, 3, 0, 2, 9}))
	chk.Zero(modprod.SequentialProduct([]int{0}))
}

func TestSequentialProductEmpty(t *testing.T) {
	// The empty product is the multiplicative identity.
	require.Equal(t, 1, modprod.SequentialProduct(nil))
}

// Reducing after every multiplication must agree with reducing once at the
// end; math/big provides the exact end-reduced reference.
func TestSequentialProductMatchesBigInt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		chk := require.New(t)
		data := rapid.SliceOfN(rapid.IntRange(1, 3000), 1, 200).Draw(t, "data")

		want := big.NewInt(1)
		for _, v := range data {
			want.Mul(want, big.NewInt(int64(v)))
		}
		want.Mod(want, big.NewInt(modprod.Modulus))

		chk.EqualValues(want.Int64(), modprod.SequentialProduct(data))
	})
}
