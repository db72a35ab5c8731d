package ringslab

import "unsafe"

// computeStride returns the payload-inclusive footprint of one slot:
// the header size plus slotSize, aligned up so consecutive slots stay
// naturally aligned for the header's atomic field.
func computeStride(slotSize int) uintptr {
	return alignUp(slotHeaderSize+uintptr(slotSize), slotHeaderAlign)
}

// slotAt overlays a *slotHeader onto the slab at logical position pos,
// folded to a physical index via mask. The slotSize bytes immediately
// following the header are the payload area.
func slotAt(slab []byte, stride uintptr, mask uint64, pos uint64) *slotHeader {
	idx := pos & mask
	off := uintptr(idx) * stride
	return (*slotHeader)(unsafe.Pointer(&slab[off]))
}

// payloadAt returns a pointer to the slotSize-byte payload area that
// follows the header at logical position pos.
func payloadAt(slab []byte, stride uintptr, mask uint64, pos uint64) unsafe.Pointer {
	idx := pos & mask
	off := uintptr(idx)*stride + slotHeaderSize
	return unsafe.Pointer(&slab[off])
}

// payloadBytes views the slotSize-byte payload area at logical position
// pos as a []byte, for the copy-in/copy-out convenience API.
func payloadBytes(slab []byte, stride uintptr, mask uint64, pos uint64, slotSize int) []byte {
	ptr := payloadAt(slab, stride, mask, pos)
	return unsafe.Slice((*byte)(ptr), slotSize)
}
