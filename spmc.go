package ringslab

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SPMC is a single-producer multi-consumer bounded ring queue of
// fixed-size opaque byte records: the single producer advances head
// without contention, consumers CAS the shared tail cursor.
//
// Exactly one goroutine may call the push side; calling it from more
// than one goroutine is undefined behavior.
type SPMC struct {
	_        pad
	head     atomix.Uint32 // producer cursor, touched only by the producer
	_        pad
	tail     atomix.Uint32 // consumer cursor, CAS'd by consumers
	_        pad
	slab     []byte
	stride   uintptr
	mask     uint64
	capacity uint64
	slotSize int
	alloc    Allocator
}

// NewSPMC constructs a capacity-slot SPMC queue of slotSize-byte
// records. capacity must be a power of two >= 2; slotSize must be > 0.
func NewSPMC(capacity, slotSize int, alloc Allocator) (*SPMC, error) {
	if !isPowerOfTwo(capacity) || slotSize <= 0 || alloc == nil {
		return nil, ErrInvalidArgument
	}

	stride := computeStride(slotSize)
	slab, err := alloc.Alloc(capacity * int(stride))
	if err != nil {
		return nil, ErrOutOfMemory
	}

	q := &SPMC{
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

// PushClaim reserves the next slot for the single producer. Returns
// ErrFull if no consumer has freed a slot for this position. Must be
// called from a single goroutine.
func (q *SPMC) PushClaim() (unsafe.Pointer, Token, error) {
	pos := q.head.LoadRelaxed()
	slot := slotAt(q.slab, q.stride, q.mask, uint64(pos))

	seq := slot.seq.LoadAcquire()
	if seq != pos {
		return nil, 0, ErrFull
	}

	q.head.StoreRelaxed(pos + 1)
	return payloadAt(q.slab, q.stride, q.mask, uint64(pos)), Token(pos), nil
}

// PushPublish makes the slot claimed as tok visible to consumers.
func (q *SPMC) PushPublish(tok Token) {
	pos := uint64(tok)
	slot := slotAt(q.slab, q.stride, q.mask, pos)
	if debugAssertsEnabled {
		debugAssert(slot.seq.LoadAcquire() == uint32(tok), "PushPublish(%d) without a matching PushClaim", tok)
	}
	slot.seq.StoreRelease(uint32(tok) + 1)
}

// PopClaim reserves the next filled slot for the calling consumer
// (multiple consumers safe). Returns ErrEmpty if no slot has been
// published for this position.
func (q *SPMC) PopClaim() (unsafe.Pointer, Token, error) {
	sw := spin.Wait{}
	for {
		pos := q.tail.LoadRelaxed()
		slot := slotAt(q.slab, q.stride, q.mask, uint64(pos))

		seq := slot.seq.LoadAcquire()
		diff := int32(seq) - int32(pos+1)

		switch {
		case diff == 0:
			if q.tail.CompareAndSwapRelaxed(pos, pos+1) {
				return payloadAt(q.slab, q.stride, q.mask, uint64(pos)), Token(pos), nil
			}
		case diff < 0:
			return nil, 0, ErrEmpty
		}
		sw.Once()
	}
}

// PopRelease returns the slot claimed as tok to the producer pool.
func (q *SPMC) PopRelease(tok Token) {
	pos := uint64(tok)
	slot := slotAt(q.slab, q.stride, q.mask, pos)
	if debugAssertsEnabled {
		debugAssert(slot.seq.LoadAcquire() == uint32(tok)+1, "PopRelease(%d) without a matching PopClaim", tok)
	}
	slot.seq.StoreRelease(uint32(pos + q.capacity))
}

// Push copies src into the next free slot and publishes it. len(src)
// must be <= SlotSize(). Must be called from a single producer
// goroutine.
func (q *SPMC) Push(src []byte) error {
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
// slot. Safe to call from any number of consumer goroutines.
func (q *SPMC) Pop(dst []byte) (int, error) {
	_, tok, err := q.PopClaim()
	if err != nil {
		return 0, err
	}
	n := copy(dst, payloadBytes(q.slab, q.stride, q.mask, uint64(tok), q.slotSize))
	q.PopRelease(tok)
	return n, nil
}

// Cap returns the fixed slot capacity.
func (q *SPMC) Cap() int { return int(q.capacity) }

// SlotSize returns the fixed payload width in bytes.
func (q *SPMC) SlotSize() int { return q.slotSize }

// Close releases the slab through the allocator the queue was built
// with. The queue must not be used afterward.
func (q *SPMC) Close() {
	if q.slab == nil {
		return
	}
	q.alloc.Free(q.slab)
	q.slab = nil
}
