// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

// total folds the published partial products into the final modular product,
// reducing after each multiplication. Modular multiplication is commutative
// and associative, so the fold order does not matter.
//
// foundZero short-circuits the fold: once any worker is known to have seen a
// zero, the total is zero no matter which other partials were published.
// Cells whose done flag is false belong to workers cancelled mid-scan; their
// contents are unknown and are excluded, never treated as 1 or 0. Cancellation
// only ever follows a zero observation, so exclusion cannot change a non-zero
// total.
func total(cells []cell, foundZero bool) int {
	if foundZero {
		return 0
	}
	product := int64(1)
	for i := range cells {
		c := &cells[i]
		if !c.done.Load() {
			continue
		}
		v := c.prod.Load()
		if v == 0 {
			return 0
		}
		product = product * v % Modulus
	}
	return int(product)
}
