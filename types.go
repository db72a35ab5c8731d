package ringslab

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Token is the position returned by a successful claim. It must be
// passed back to the matching Publish/Release exactly once; presenting
// a stale or foreign Token is a programmer error (see assertions_debug.go).
type Token uint32

// Queue is the common claim/publish surface all four topologies (SPSC,
// MPSC, SPMC, MPMC) satisfy. Selecting a topology is a build-time
// (construction-time) choice; all honor the same external contract, per spec.md §6.
type Queue interface {
	// PushClaim reserves the next slot for writing and returns a
	// pointer to its payload area and the token to publish with.
	// Returns ErrFull if the queue has no free slot.
	PushClaim() (unsafe.Pointer, Token, error)
	// PushPublish makes a claimed slot visible to consumers. Must
	// follow a successful PushClaim exactly once.
	PushPublish(tok Token)
	// PopClaim reserves the next filled slot for reading and returns a
	// pointer to its payload area and the token to release with.
	// Returns ErrEmpty if the queue has no filled slot.
	PopClaim() (unsafe.Pointer, Token, error)
	// PopRelease returns a claimed slot to the producer pool. Must
	// follow a successful PopClaim exactly once.
	PopRelease(tok Token)
	// Push copies src into a claimed slot and publishes it. len(src)
	// must be <= SlotSize; trailing bytes are unspecified.
	Push(src []byte) error
	// Pop copies up to len(dst) bytes out of the next filled slot into
	// dst and releases it. Returns the number of bytes copied.
	Pop(dst []byte) (int, error)
	// Cap returns the fixed slot capacity.
	Cap() int
	// SlotSize returns the fixed payload width in bytes.
	SlotSize() int
	// Close releases the slot slab through the allocator it was built
	// with. The queue must not be used afterward.
	Close()
}

// pad is cache-line padding used to separate hot fields (head/tail)
// that would otherwise share a cache line and cause false sharing
// between producer- and consumer-side traffic.
type pad [64]byte

// slotHeader is the per-slot generation counter overlaid onto the raw
// slab via unsafe.Pointer arithmetic; the slotSize bytes of payload
// immediately follow it in memory.
type slotHeader struct {
	seq atomix.Uint32
}

const slotHeaderSize = unsafe.Sizeof(slotHeader{})
const slotHeaderAlign = unsafe.Alignof(slotHeader{})

// isPowerOfTwo reports whether n is a power of two and at least 2, the
// smallest legal capacity (spec.md §8 boundary behavior).
func isPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// alignUp rounds v up to the next multiple of align, where align is a
// power of two.
func alignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}
