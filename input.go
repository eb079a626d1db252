// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

import "math/rand"

const (
	generatorSeed  = 7649
	maxRandomValue = 3000
)

// Generate produces a deterministic pseudo-random input array of length n
// with values in [1, maxRandomValue]. If zeroIndex is a valid index in
// [0, n), the element at that position is forced to zero; any other value
// (conventionally -1) leaves the array free of zeros. The generator is seeded
// with a fixed constant so identical arguments always yield identical arrays.
func Generate(n, zeroIndex int) []int {
	rng := rand.New(rand.NewSource(generatorSeed))
	data := make([]int, n)
	for i := range data {
		data[i] = 1 + rng.Intn(maxRandomValue)
	}
	if zeroIndex >= 0 && zeroIndex < n {
		data[zeroIndex] = 0
	}
	return data
}
