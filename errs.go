// Copyright (c) The modprod Authors. All rights reserved.
// Licensed under the MIT License.

package modprod

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrEmptyInput = constError("input array must not be empty")
const ErrTooLarge = constError("input array exceeds maximum size")
const ErrWorkerCount = constError("worker count out of range")
const ErrZeroIndex = constError("zero index out of range")
