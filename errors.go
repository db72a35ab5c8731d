package ringslab

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull is returned by a push when the queue has no free slot.
//
// It is a control-flow signal, not a failure: callers choose their own
// retry discipline (spin, yield, back off). It wraps [iox.ErrWouldBlock]
// so callers already written against the ecosystem's semantic-error
// helpers classify it correctly.
var ErrFull = fmt.Errorf("ringslab: queue is full: %w", iox.ErrWouldBlock)

// ErrEmpty is returned by a pop when the queue has no published slot.
//
// Like [ErrFull], it is a non-error flow-control signal wrapping
// [iox.ErrWouldBlock].
var ErrEmpty = fmt.Errorf("ringslab: queue is empty: %w", iox.ErrWouldBlock)

// ErrInvalidArgument is returned when a call violates a documented
// precondition: a nil allocator, a zero slot size, a non-power-of-two
// capacity, or a Push source buffer larger than the slot. Pop does not
// return it: a destination buffer of any length receives
// min(len(dst), SlotSize()) bytes.
var ErrInvalidArgument = fmt.Errorf("ringslab: invalid argument")

// ErrOutOfMemory is returned by New* when the allocator cannot satisfy
// the slab allocation. The queue is left unconstructed.
var ErrOutOfMemory = fmt.Errorf("ringslab: allocator could not satisfy the slab allocation")

// IsWouldBlock reports whether err is a non-blocking flow-control signal
// (ErrFull or ErrEmpty, or anything else wrapping [iox.ErrWouldBlock]).
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// genuine failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition:
// nil, ErrFull, or ErrEmpty. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
