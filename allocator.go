package ringslab

import (
	"code.hybscloud.com/atomix"
)

// Allocator is the memory provider a queue allocates its slot slab from.
//
// It is the minimum surface a queue consumes: Alloc for the one slab
// allocation made at construction time, Free for the one release made at
// Close. A queue never calls either again in between — the hot path
// (claim/publish/release) never touches the allocator.
//
// Two realizations are provided: [HeapAllocator], backed by the Go
// runtime allocator, and [ArenaAllocator], a bump allocator over a
// caller-supplied region that never frees individual blocks.
type Allocator interface {
	// Alloc returns a zeroed block of at least size bytes, or an error
	// if the allocator cannot satisfy the request.
	Alloc(size int) ([]byte, error)
	// Free releases a block previously returned by Alloc. Allocators
	// that cannot free individual blocks (arenas) may implement Free
	// as a no-op; the queue tolerates that by simply not relying on it
	// for correctness.
	Free(buf []byte)
}

// HeapAllocator allocates slabs from the Go runtime heap. Free is a
// no-op; the backing array is reclaimed by the garbage collector once
// the queue drops its reference, mirroring the reference C library's
// malloc_allocator realization.
type HeapAllocator struct{}

// NewHeapAllocator returns the system-heap allocator.
func NewHeapAllocator() HeapAllocator { return HeapAllocator{} }

// Alloc returns a freshly made, zeroed byte slice of the requested size.
func (HeapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidArgument
	}
	return make([]byte, size), nil
}

// Free is a no-op for the heap allocator.
func (HeapAllocator) Free([]byte) {}

// ArenaAllocator bump-allocates fixed regions out of a single
// caller-supplied backing buffer. It never frees individual blocks;
// the whole arena is reclaimed at once by discarding the ArenaAllocator
// itself. Safe for concurrent Alloc calls sharing one arena, though a
// single queue only ever calls Alloc once at construction.
type ArenaAllocator struct {
	region []byte
	offset atomix.Uint64
}

// NewArenaAllocator wraps region as a bump allocator. region's capacity
// bounds the total bytes that can ever be handed out.
func NewArenaAllocator(region []byte) *ArenaAllocator {
	return &ArenaAllocator{region: region}
}

// Alloc carves size bytes off the front of the remaining arena.
// Returns ErrOutOfMemory if the arena is exhausted.
func (a *ArenaAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidArgument
	}
	for {
		cur := a.offset.LoadAcquire()
		next := cur + uint64(size)
		if next > uint64(len(a.region)) {
			return nil, ErrOutOfMemory
		}
		if a.offset.CompareAndSwapAcqRel(cur, next) {
			block := a.region[cur:next]
			clear(block)
			return block, nil
		}
	}
}

// Free is a no-op: arenas release memory only as a whole.
func (a *ArenaAllocator) Free([]byte) {}

// Reset rewinds the arena so its whole region can be reused. Callers
// must ensure no queue still references a block from the arena before
// calling Reset.
func (a *ArenaAllocator) Reset() {
	a.offset.StoreRelease(0)
}
