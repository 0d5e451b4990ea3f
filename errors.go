// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

import "errors"

var (
	// ErrVertexRange indicates a vertex id outside [0, n) was passed to
	// a public Graph operation.
	ErrVertexRange = errors.New("fibksp: vertex id out of range")

	// ErrNegativeWeight indicates AddArc was called with a weight below
	// zero. The algorithms in this package have no correctness guarantee
	// for negative weights, so they are rejected rather than accepted
	// and silently mishandled.
	ErrNegativeWeight = errors.New("fibksp: arc weight must be non-negative")

	// ErrDecreaseKeyIncreases indicates DecreasePriority was called with
	// a value that is not strictly less than the node's current
	// priority — a precondition violation rather than a recoverable
	// input error.
	ErrDecreaseKeyIncreases = errors.New("fibksp: decrease-priority value does not decrease priority")
)
