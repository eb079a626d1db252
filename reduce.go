// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

// Modulus is the fixed modulus applied after every multiplication. All
// products reported by this package are values in [0, Modulus).
const Modulus = 9973

// MaxSize is the largest supported input array length.
const MaxSize = 100_000_000

// MaxWorkers is the largest supported worker count for a round.
const MaxWorkers = 16

// mulmod multiplies a running product by an element and reduces immediately.
// Reducing after every step keeps intermediate values within Modulus*element,
// which fits comfortably in an int64.
func mulmod(product int64, element int) int64 {
	return product * int64(element) % Modulus
}

// SequentialProduct is the single-threaded baseline: the modular product of
// all elements, scanning left to right and reducing after every
// multiplication. It returns 0 as soon as a zero element is encountered,
// without scanning the remainder.
func SequentialProduct(data []int) int {
	product := int64(1)
	for _, v := range data {
		if v == 0 {
			return 0
		}
		product = mulmod(product, v)
	}
	return int(product)
}
