package ringslab

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// SPSC is a single-producer single-consumer bounded ring queue of
// fixed-size opaque byte records.
//
// Exactly one goroutine may call the push side and exactly one goroutine
// may call the pop side; calling either side from more than one
// goroutine is undefined behavior (see assertions_debug.go for a
// debug-build check). Because there is never contention on either
// cursor, claim never needs a CAS loop — only the per-slot acquire/
// release pair that also gates MPMC — matching spec.md §4.3.
type SPSC struct {
	_        pad
	head     atomix.Uint32 // producer cursor, touched only by the producer
	_        pad
	tail     atomix.Uint32 // consumer cursor, touched only by the consumer
	_        pad
	slab     []byte
	stride   uintptr
	mask     uint64
	capacity uint64
	slotSize int
	alloc    Allocator
}

// NewSPSC constructs a capacity-slot SPSC queue of slotSize-byte
// records. capacity must be a power of two >= 2; slotSize must be > 0.
// The slab is allocated through alloc, which is retained for Close.
func NewSPSC(capacity, slotSize int, alloc Allocator) (*SPSC, error) {
	if !isPowerOfTwo(capacity) || slotSize <= 0 || alloc == nil {
		return nil, ErrInvalidArgument
	}

	stride := computeStride(slotSize)
	slab, err := alloc.Alloc(capacity * int(stride))
	if err != nil {
		return nil, ErrOutOfMemory
	}

	q := &SPSC{
		slab:     slab,
		stride:   stride,
		mask:     uint64(capacity - 1),
		capacity: uint64(capacity),
		slotSize: slotSize,
		alloc:    alloc,
	}
	for i := uint64(0); i < q.capacity; i++ {
		slotAt(q.slab, q.stride, q.mask, i).seq.StoreRelaxed(uint32(i))
	}
	return q, nil
}

// PushClaim reserves the next slot for the producer. Returns ErrFull if
// the consumer has not yet released the slot at this position.
func (q *SPSC) PushClaim() (unsafe.Pointer, Token, error) {
	pos := q.head.LoadRelaxed()
	slot := slotAt(q.slab, q.stride, q.mask, uint64(pos))

	seq := slot.seq.LoadAcquire()
	if seq != pos {
		return nil, 0, ErrFull
	}

	q.head.StoreRelaxed(pos + 1)
	return payloadAt(q.slab, q.stride, q.mask, uint64(pos)), Token(pos), nil
}

// PushPublish makes the slot claimed as tok visible to the consumer.
func (q *SPSC) PushPublish(tok Token) {
	pos := uint64(tok)
	slot := slotAt(q.slab, q.stride, q.mask, pos)
	if debugAssertsEnabled {
		debugAssert(slot.seq.LoadAcquire() == uint32(tok), "PushPublish(%d) without a matching PushClaim", tok)
	}
	slot.seq.StoreRelease(uint32(tok) + 1)
}

// PopClaim reserves the next filled slot for the consumer. Returns
// ErrEmpty if the producer has not yet published a slot at this
// position.
func (q *SPSC) PopClaim() (unsafe.Pointer, Token, error) {
	pos := q.tail.LoadRelaxed()
	slot := slotAt(q.slab, q.stride, q.mask, uint64(pos))

	seq := slot.seq.LoadAcquire()
	if seq != pos+1 {
		return nil, 0, ErrEmpty
	}

	q.tail.StoreRelaxed(pos + 1)
	return payloadAt(q.slab, q.stride, q.mask, uint64(pos)), Token(pos), nil
}

// PopRelease returns the slot claimed as tok to the producer, tagged
// for the next lap around the ring (pos + capacity).
func (q *SPSC) PopRelease(tok Token) {
	pos := uint64(tok)
	slot := slotAt(q.slab, q.stride, q.mask, pos)
	if debugAssertsEnabled {
		debugAssert(slot.seq.LoadAcquire() == uint32(tok)+1, "PopRelease(%d) without a matching PopClaim", tok)
	}
	slot.seq.StoreRelease(uint32(pos + q.capacity))
}

// Push copies src into the next free slot and publishes it. len(src)
// must be <= SlotSize(); the tail bytes of a shorter src are left
// unspecified. Returns ErrInvalidArgument if src is too large, ErrFull
// if the queue has no free slot.
func (q *SPSC) Push(src []byte) error {
	if len(src) > q.slotSize {
		return ErrInvalidArgument
	}
	_, tok, err := q.PushClaim()
	if err != nil {
		return err
	}
	copy(payloadBytes(q.slab, q.stride, q.mask, uint64(tok), q.slotSize), src)
	q.PushPublish(tok)
	return nil
}

// Pop copies the next filled slot's payload into dst and releases the
// slot. Copies min(len(dst), SlotSize()) bytes and returns that count.
// Returns ErrEmpty if the queue has no filled slot.
func (q *SPSC) Pop(dst []byte) (int, error) {
	_, tok, err := q.PopClaim()
	if err != nil {
		return 0, err
	}
	n := copy(dst, payloadBytes(q.slab, q.stride, q.mask, uint64(tok), q.slotSize))
	q.PopRelease(tok)
	return n, nil
}

// Cap returns the fixed slot capacity.
func (q *SPSC) Cap() int { return int(q.capacity) }

// SlotSize returns the fixed payload width in bytes.
func (q *SPSC) SlotSize() int { return q.slotSize }

// Close releases the slab through the allocator the queue was built
// with. The queue must not be used afterward.
func (q *SPSC) Close() {
	if q.slab == nil {
		return
	}
	q.alloc.Free(q.slab)
	q.slab = nil
}
