// Package ringslab provides bounded lock-free circular queues of
// fixed-size byte records, backed by a single contiguous slab and a
// pluggable [Allocator].
//
// Unlike a generic channel-of-T, every queue here moves raw bytes in
// and out of slots cut from one allocation: there is no per-element
// heap traffic on the hot path. Four topologies are available,
// distinguished by which side of the protocol needs a CAS loop:
//
//   - SPSC: Single-Producer Single-Consumer
//   - MPSC: Multi-Producer Single-Consumer
//   - SPMC: Single-Producer Multi-Consumer
//   - MPMC: Multi-Producer Multi-Consumer
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q, err := ringslab.NewSPSC(1024, 64, ringslab.NewHeapAllocator())
//	q, err := ringslab.NewMPMC(4096, 256, ringslab.NewHeapAllocator())
//
// The fluent builder can also target a specific topology directly:
//
//	q, err := ringslab.New(1024, 64).SingleProducer().SingleConsumer().BuildSPSC()
//	q, err := ringslab.New(1024, 64).SingleConsumer().BuildMPSC()
//	q, err := ringslab.New(1024, 64).SingleProducer().BuildSPMC()
//	q, err := ringslab.New(1024, 64).BuildMPMC()
//
// Or let [Build] auto-select a topology from the constraints given:
//
//	q, err := ringslab.Build(ringslab.New(1024, 64).SingleProducer().SingleConsumer()) // → SPSC
//	q, err := ringslab.Build(ringslab.New(1024, 64).SingleConsumer())                  // → MPSC
//	q, err := ringslab.Build(ringslab.New(1024, 64).SingleProducer())                  // → SPMC
//	q, err := ringslab.Build(ringslab.New(1024, 64))                                   // → MPMC
//
// # Basic Usage
//
// All four topologies satisfy [Queue] and share the same push/pop
// shape. The copy-in/copy-out convenience methods cover the common
// case:
//
//	q, _ := ringslab.NewMPMC(1024, 8, ringslab.NewHeapAllocator())
//
//	var buf [8]byte
//	binary.LittleEndian.PutUint64(buf[:], 42)
//	err := q.Push(buf[:])
//	if ringslab.IsWouldBlock(err) {
//	    // queue is full - handle backpressure
//	}
//
//	var out [8]byte
//	n, err := q.Pop(out[:])
//	if ringslab.IsWouldBlock(err) {
//	    // queue is empty - try again later
//	}
//
// # Claim/Publish Split
//
// When a record must be built in place rather than copied, use the
// split claim/publish API directly. The pointer returned by
// PushClaim/PopClaim is only valid for the slot's record size and must
// not be retained past the matching publish/release call:
//
//	ptr, tok, err := q.PushClaim()
//	if err == nil {
//	    encodeInto(unsafe.Slice((*byte)(ptr), q.SlotSize()))
//	    q.PushPublish(tok)
//	}
//
//	ptr, tok, err := q.PopClaim()
//	if err == nil {
//	    decodeFrom(unsafe.Slice((*byte)(ptr), q.SlotSize()))
//	    q.PopRelease(tok)
//	}
//
// A claim obtained from one call must be passed back to the matching
// publish/release exactly once. Claiming twice without publishing, or
// publishing a stale token, is a programmer error. Builds tagged
// ringslab_debug panic when publish/release finds the slot's sequence
// number not in the state its claim left it in (for example a token
// published twice; see assertions_debug.go); a claim that is never
// published is not detected. Release builds do not check either.
//
// # Common Patterns
//
// Pipeline stage (SPSC):
//
//	q, _ := ringslab.NewSPSC(1024, 128, ringslab.NewHeapAllocator())
//
//	go func() { // producer
//	    bo := iox.Backoff{}
//	    for rec := range input {
//	        for q.Push(rec) != nil {
//	            bo.Wait()
//	        }
//	        bo.Reset()
//	    }
//	}()
//
//	go func() { // consumer
//	    bo := iox.Backoff{}
//	    buf := make([]byte, q.SlotSize())
//	    for {
//	        if _, err := q.Pop(buf); err != nil {
//	            bo.Wait()
//	            continue
//	        }
//	        bo.Reset()
//	        process(buf)
//	    }
//	}()
//
// Event aggregation (MPSC), work distribution (SPMC), and worker pools
// (MPMC) follow the same shape with [NewMPSC], [NewSPMC], [NewMPMC] in
// place of [NewSPSC].
//
// # Allocators
//
// The slab backing a queue comes from an [Allocator]. [HeapAllocator]
// hands the request straight to the Go runtime heap. [ArenaAllocator]
// bump-allocates out of a caller-supplied region (e.g. a shared-memory
// mapping) and supports bulk reclamation via Reset, at the cost of
// never freeing individual allocations:
//
//	region := make([]byte, 16<<20)
//	arena := ringslab.NewArenaAllocator(region)
//	q, _ := ringslab.NewMPMC(4096, 64, arena)
//	// ... use q, retire it ...
//	arena.Reset() // reclaims the whole region at once
//
// # Error Handling
//
// Queues return [ErrFull] or [ErrEmpty] when an operation cannot
// proceed without blocking. Both wrap [code.hybscloud.com/iox]'s
// ErrWouldBlock for ecosystem consistency:
//
//	bo := iox.Backoff{}
//	for {
//	    err := q.Push(rec)
//	    if err == nil {
//	        bo.Reset()
//	        break
//	    }
//	    if !ringslab.IsWouldBlock(err) {
//	        return err // unexpected error
//	    }
//	    bo.Wait()
//	}
//
// For semantic error classification (delegates to iox):
//
//	ringslab.IsWouldBlock(err)  // true if queue full/empty
//	ringslab.IsSemantic(err)    // true if control flow signal
//	ringslab.IsNonFailure(err)  // true if nil or a would-block signal
//
// # Capacity
//
// capacity must be an exact power of two, at least 2. Unlike some
// ring buffer implementations, capacity is never rounded up:
// constructors reject non-power-of-two capacities with
// [ErrInvalidArgument] rather than silently growing the slab.
//
// Length is intentionally not exposed: an accurate count would require
// cross-core synchronization beyond what the protocol already pays
// for. Track counts in application logic if needed.
//
// # Thread Safety
//
// All queue operations are safe within their topology's access
// pattern:
//
//   - SPSC: one producer goroutine, one consumer goroutine
//   - MPSC: any number of producer goroutines, one consumer goroutine
//   - SPMC: one producer goroutine, any number of consumer goroutines
//   - MPMC: any number of producer and consumer goroutines
//
// Calling the constrained side from more than one goroutine (e.g. two
// producers on an SPSC queue) is undefined behavior: it is not
// detected at runtime outside of ringslab_debug builds.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives
// (mutex, channel, WaitGroup) and has no model for happens-before
// edges established purely by acquire/release atomics on a per-slot
// sequence number. The protocol here is correct, but the race detector
// can report false positives on it. Stress tests gate themselves on
// [RaceEnabled] and skip under -race; run them without the flag to
// exercise the full concurrent surface.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomics with explicit memory
// ordering, and [code.hybscloud.com/spin] for backoff in CAS loops.
package ringslab
