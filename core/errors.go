// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
//
// Every package in this module returns these sentinels directly, or wraps
// them with fmt.Errorf("%s: %w", ...) at a call boundary that needs to name
// the operation. Callers match with errors.Is; sentinels are never wrapped
// a second time internally.
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operand shapes violate an operation's
	// dimension contract (inner dimensions of mxm, mask shape vs. output, ...).
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrIndexOutOfBounds indicates an index used to get/set a vector or
	// matrix element lies outside the container's declared bounds.
	ErrIndexOutOfBounds = errors.New("core: index out of bounds")

	// ErrNoValue indicates ExtractElement was called at a position with no
	// stored entry. Distinct from ErrIndexOutOfBounds: the position is
	// in-bounds but simply has nothing stored there.
	ErrNoValue = errors.New("core: no value at index")
)

// InvariantViolation is a fatal, internal error: a malformed algebraic
// object (a monoid whose claimed identity fails the identity law) or an
// internal postcondition breach. It is raised via panic, never returned,
// because no caller-side recovery is meaningful for either case.
type InvariantViolation struct {
	Op      string
	Message string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("core: invariant violation in %s: %s", e.Op, e.Message)
}

// PanicInvariant panics with an *InvariantViolation carrying op and message.
// Kernels call this instead of a bare panic so every invariant breach in
// the module produces the same error shape and can be recovered uniformly
// in tests via a type assertion.
func PanicInvariant(op, message string) {
	panic(&InvariantViolation{Op: op, Message: message})
}
