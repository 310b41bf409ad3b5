package bvtree

import "errors"

var (
	// ErrOutOfRange is returned by Insert/Delete when the requested
	// position falls outside the valid range for that operation.
	ErrOutOfRange = errors.New("bvtree: index out of range")

	// ErrSelectOutOfRange is returned by Select when there is no k-th
	// occurrence of the requested bit value.
	ErrSelectOutOfRange = errors.New("bvtree: select out of range")
)

// NotFound is the sentinel position returned alongside ErrSelectOutOfRange.
const NotFound = ^uint32(0)
