package ringslab_test

import (
	"encoding/binary"
	"testing"

	"github.com/ringslab/ringslab"
)

func encode(v int) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return buf[:]
}

func decode(buf []byte) int {
	return int(binary.LittleEndian.Uint64(buf))
}

// TestSPSCBasic exercises push-to-full then pop-to-empty in FIFO order.
func TestSPSCBasic(t *testing.T) {
	q, err := ringslab.NewSPSC(4, 8, ringslab.NewHeapAllocator())
	if err != nil {
		t.Fatalf("NewSPSC: %v", err)
	}
	defer q.Close()

	if q.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", q.Cap())
	}

	for i := range 4 {
		if err := q.Push(encode(i + 100)); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	if err := q.Push(encode(999)); !ringslab.IsWouldBlock(err) {
		t.Fatalf("Push on full: got %v, want would-block", err)
	}

	var buf [8]byte
	for i := range 4 {
		n, err := q.Pop(buf[:])
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if n != 8 {
			t.Fatalf("Pop(%d): got %d bytes, want 8", i, n)
		}
		if got := decode(buf[:]); got != i+100 {
			t.Fatalf("Pop(%d): got %d, want %d", i, got, i+100)
		}
	}

	if _, err := q.Pop(buf[:]); !ringslab.IsWouldBlock(err) {
		t.Fatalf("Pop on empty: got %v, want would-block", err)
	}
}

func TestMPSCBasic(t *testing.T) {
	q, err := ringslab.NewMPSC(4, 8, ringslab.NewHeapAllocator())
	if err != nil {
		t.Fatalf("NewMPSC: %v", err)
	}
	defer q.Close()

	for i := range 4 {
		if err := q.Push(encode(i + 100)); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if err := q.Push(encode(999)); !ringslab.IsWouldBlock(err) {
		t.Fatalf("Push on full: got %v, want would-block", err)
	}

	var buf [8]byte
	for i := range 4 {
		if _, err := q.Pop(buf[:]); err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if got := decode(buf[:]); got != i+100 {
			t.Fatalf("Pop(%d): got %d, want %d", i, got, i+100)
		}
	}
}

func TestSPMCBasic(t *testing.T) {
	q, err := ringslab.NewSPMC(4, 8, ringslab.NewHeapAllocator())
	if err != nil {
		t.Fatalf("NewSPMC: %v", err)
	}
	defer q.Close()

	for i := range 4 {
		if err := q.Push(encode(i + 100)); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	var buf [8]byte
	for i := range 4 {
		if _, err := q.Pop(buf[:]); err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if got := decode(buf[:]); got != i+100 {
			t.Fatalf("Pop(%d): got %d, want %d", i, got, i+100)
		}
	}
}

func TestMPMCBasic(t *testing.T) {
	q, err := ringslab.NewMPMC(4, 8, ringslab.NewHeapAllocator())
	if err != nil {
		t.Fatalf("NewMPMC: %v", err)
	}
	defer q.Close()

	for i := range 4 {
		if err := q.Push(encode(i + 100)); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if err := q.Push(encode(999)); !ringslab.IsWouldBlock(err) {
		t.Fatalf("Push on full: got %v, want would-block", err)
	}

	var buf [8]byte
	for i := range 4 {
		if _, err := q.Pop(buf[:]); err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if got := decode(buf[:]); got != i+100 {
			t.Fatalf("Pop(%d): got %d, want %d", i, got, i+100)
		}
	}
	if _, err := q.Pop(buf[:]); !ringslab.IsWouldBlock(err) {
		t.Fatalf("Pop on empty: got %v, want would-block", err)
	}
}

// TestClaimPublishRoundTrip exercises the split claim/publish API directly,
// bypassing the copy-in/copy-out convenience methods.
func TestClaimPublishRoundTrip(t *testing.T) {
	q, err := ringslab.NewMPMC(2, 4, ringslab.NewHeapAllocator())
	if err != nil {
		t.Fatalf("NewMPMC: %v", err)
	}
	defer q.Close()

	ptr, tok, err := q.PushClaim()
	if err != nil {
		t.Fatalf("PushClaim: %v", err)
	}
	payload := (*[4]byte)(ptr)
	binary.LittleEndian.PutUint32(payload[:], 0xDEADBEEF)
	q.PushPublish(tok)

	rptr, rtok, err := q.PopClaim()
	if err != nil {
		t.Fatalf("PopClaim: %v", err)
	}
	rpayload := (*[4]byte)(rptr)
	if got := binary.LittleEndian.Uint32(rpayload[:]); got != 0xDEADBEEF {
		t.Fatalf("payload: got %#x, want %#x", got, 0xDEADBEEF)
	}
	q.PopRelease(rtok)
}

// TestCapacityRejection checks that only exact powers of two >= 2 are
// accepted, with no silent rounding.
func TestCapacityRejection(t *testing.T) {
	for _, c := range []int{0, 1, 3, 5, 6, 7, 9, 100} {
		if _, err := ringslab.NewSPSC(c, 8, ringslab.NewHeapAllocator()); err != ringslab.ErrInvalidArgument {
			t.Fatalf("NewSPSC(%d): got %v, want ErrInvalidArgument", c, err)
		}
	}
	for _, c := range []int{2, 4, 8, 16, 1024} {
		q, err := ringslab.NewSPSC(c, 8, ringslab.NewHeapAllocator())
		if err != nil {
			t.Fatalf("NewSPSC(%d): %v", c, err)
		}
		if q.Cap() != c {
			t.Fatalf("NewSPSC(%d): Cap() = %d, want %d (no rounding)", c, q.Cap(), c)
		}
		q.Close()
	}
}

func TestInvalidSlotSize(t *testing.T) {
	if _, err := ringslab.NewMPMC(4, 0, ringslab.NewHeapAllocator()); err != ringslab.ErrInvalidArgument {
		t.Fatalf("NewMPMC slotSize=0: got %v, want ErrInvalidArgument", err)
	}
	if _, err := ringslab.NewMPMC(4, -1, ringslab.NewHeapAllocator()); err != ringslab.ErrInvalidArgument {
		t.Fatalf("NewMPMC slotSize=-1: got %v, want ErrInvalidArgument", err)
	}
}

func TestPushTooLarge(t *testing.T) {
	q, err := ringslab.NewSPSC(2, 4, ringslab.NewHeapAllocator())
	if err != nil {
		t.Fatalf("NewSPSC: %v", err)
	}
	defer q.Close()
	if err := q.Push(make([]byte, 5)); err != ringslab.ErrInvalidArgument {
		t.Fatalf("Push(5 bytes into 4-byte slots): got %v, want ErrInvalidArgument", err)
	}
}

// TestWraparound pushes and pops 2^20 records through a 4-slot queue,
// verifying the sequence protocol holds across repeated laps around the
// ring. Positions start at 0 and stay far below the 32-bit boundary, so
// cursor wrap past 2^32 is not exercised here.
func TestWraparound(t *testing.T) {
	q, err := ringslab.NewSPSC(4, 8, ringslab.NewHeapAllocator())
	if err != nil {
		t.Fatalf("NewSPSC: %v", err)
	}
	defer q.Close()

	const laps = 1 << 20
	var buf [8]byte
	for i := range laps {
		if err := q.Push(encode(i)); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
		n, err := q.Pop(buf[:])
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if n != 8 || decode(buf[:]) != i {
			t.Fatalf("Pop(%d): got %d", i, decode(buf[:]))
		}
	}
}
