package ringslab

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPSC is a multi-producer single-consumer bounded ring queue of
// fixed-size opaque byte records: producers CAS the shared head
// cursor, the single consumer advances tail without contention.
//
// Exactly one goroutine may call the pop side; calling it from more
// than one goroutine is undefined behavior.
type MPSC struct {
	_        pad
	head     atomix.Uint32 // producer cursor, CAS'd by producers
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

// NewMPSC constructs a capacity-slot MPSC queue of slotSize-byte
// records. capacity must be a power of two >= 2; slotSize must be > 0.
func NewMPSC(capacity, slotSize int, alloc Allocator) (*MPSC, error) {
	if !isPowerOfTwo(capacity) || slotSize <= 0 || alloc == nil {
		return nil, ErrInvalidArgument
	}

	stride := computeStride(slotSize)
	slab, err := alloc.Alloc(capacity * int(stride))
	if err != nil {
		return nil, ErrOutOfMemory
	}

	q := &MPSC{
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

// PushClaim reserves the next slot for the calling producer (multiple
// producers safe). Returns ErrFull if the consumer has not yet freed a
// slot for this position.
func (q *MPSC) PushClaim() (unsafe.Pointer, Token, error) {
	sw := spin.Wait{}
	for {
		pos := q.head.LoadRelaxed()
		slot := slotAt(q.slab, q.stride, q.mask, uint64(pos))

		seq := slot.seq.LoadAcquire()
		diff := int32(seq) - int32(pos)

		switch {
		case diff == 0:
			if q.head.CompareAndSwapRelaxed(pos, pos+1) {
				return payloadAt(q.slab, q.stride, q.mask, uint64(pos)), Token(pos), nil
			}
		case diff < 0:
			return nil, 0, ErrFull
		}
		sw.Once()
	}
}

// PushPublish makes the slot claimed as tok visible to the consumer.
func (q *MPSC) PushPublish(tok Token) {
	pos := uint64(tok)
	slot := slotAt(q.slab, q.stride, q.mask, pos)
	if debugAssertsEnabled {
		debugAssert(slot.seq.LoadAcquire() == uint32(tok), "PushPublish(%d) without a matching PushClaim", tok)
	}
	slot.seq.StoreRelease(uint32(tok) + 1)
}

// PopClaim reserves the next filled slot for the single consumer.
// Returns ErrEmpty if no producer has published a slot for this
// position. Must be called from a single goroutine.
func (q *MPSC) PopClaim() (unsafe.Pointer, Token, error) {
	pos := q.tail.LoadRelaxed()
	slot := slotAt(q.slab, q.stride, q.mask, uint64(pos))

	seq := slot.seq.LoadAcquire()
	if seq != pos+1 {
		return nil, 0, ErrEmpty
	}

	q.tail.StoreRelaxed(pos + 1)
	return payloadAt(q.slab, q.stride, q.mask, uint64(pos)), Token(pos), nil
}

// PopRelease returns the slot claimed as tok to the producer pool.
func (q *MPSC) PopRelease(tok Token) {
	pos := uint64(tok)
	slot := slotAt(q.slab, q.stride, q.mask, pos)
	if debugAssertsEnabled {
		debugAssert(slot.seq.LoadAcquire() == uint32(tok)+1, "PopRelease(%d) without a matching PopClaim", tok)
	}
	slot.seq.StoreRelease(uint32(pos + q.capacity))
}

// Push copies src into the next free slot and publishes it. len(src)
// must be <= SlotSize(). Safe to call from any number of producer
// goroutines.
func (q *MPSC) Push(src []byte) error {
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
// slot. Must be called from a single consumer goroutine.
func (q *MPSC) Pop(dst []byte) (int, error) {
	_, tok, err := q.PopClaim()
	if err != nil {
		return 0, err
	}
	n := copy(dst, payloadBytes(q.slab, q.stride, q.mask, uint64(tok), q.slotSize))
	q.PopRelease(tok)
	return n, nil
}

// Cap returns the fixed slot capacity.
func (q *MPSC) Cap() int { return int(q.capacity) }

// SlotSize returns the fixed payload width in bytes.
func (q *MPSC) SlotSize() int { return q.slotSize }

// Close releases the slab through the allocator the queue was built
// with. The queue must not be used afterward.
func (q *MPSC) Close() {
	if q.slab == nil {
		return
	}
	q.alloc.Free(q.slab)
	q.slab = nil
}
