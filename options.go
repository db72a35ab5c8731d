package ringslab

// Options configures queue creation and algorithm selection.
type Options struct {
	singleProducer bool
	singleConsumer bool

	capacity int
	slotSize int
	alloc    Allocator
}

// Builder creates queues with fluent configuration.
//
// Builder provides a fluent API for configuring and creating queues.
// The producer/consumer constraints select which sequence-protocol
// specialization Build returns.
//
// Example:
//
//	// SPSC queue (optimal for single producer/consumer)
//	q, err := ringslab.New(1024, 64).SingleProducer().SingleConsumer().BuildSPSC()
//
//	// MPMC queue (default, general purpose)
//	q, err := ringslab.New(4096, 64).BuildMPMC()
type Builder struct {
	opts Options
}

// New creates a queue builder for capacity slots of slotSize bytes
// each. capacity must be a power of two >= 2; slotSize must be > 0.
// Defaults to a [HeapAllocator] unless overridden with WithAllocator.
func New(capacity, slotSize int) *Builder {
	return &Builder{opts: Options{
		capacity: capacity,
		slotSize: slotSize,
		alloc:    HeapAllocator{},
	}}
}

// WithAllocator overrides the allocator used to back the slot slab.
func (b *Builder) WithAllocator(alloc Allocator) *Builder {
	b.opts.alloc = alloc
	return b
}

// SingleProducer declares that only one goroutine will push.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will pop.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// BuildSPSC creates an SPSC queue. Requires SingleProducer().SingleConsumer().
func (b *Builder) BuildSPSC() (*SPSC, error) {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		return nil, ErrInvalidArgument
	}
	return NewSPSC(b.opts.capacity, b.opts.slotSize, b.opts.alloc)
}

// BuildMPSC creates an MPSC queue. Requires SingleConsumer() without
// SingleProducer().
func (b *Builder) BuildMPSC() (*MPSC, error) {
	if b.opts.singleProducer || !b.opts.singleConsumer {
		return nil, ErrInvalidArgument
	}
	return NewMPSC(b.opts.capacity, b.opts.slotSize, b.opts.alloc)
}

// BuildSPMC creates an SPMC queue. Requires SingleProducer() without
// SingleConsumer().
func (b *Builder) BuildSPMC() (*SPMC, error) {
	if !b.opts.singleProducer || b.opts.singleConsumer {
		return nil, ErrInvalidArgument
	}
	return NewSPMC(b.opts.capacity, b.opts.slotSize, b.opts.alloc)
}

// BuildMPMC creates an MPMC queue. Requires no constraints.
func (b *Builder) BuildMPMC() (*MPMC, error) {
	if b.opts.singleProducer || b.opts.singleConsumer {
		return nil, ErrInvalidArgument
	}
	return NewMPMC(b.opts.capacity, b.opts.slotSize, b.opts.alloc)
}

// Build creates a Queue with automatic algorithm selection:
//
//	SingleProducer + SingleConsumer → SPSC
//	SingleProducer only             → SPMC
//	SingleConsumer only             → MPSC
//	Neither                         → MPMC
func Build(b *Builder) (Queue, error) {
	switch {
	case b.opts.singleProducer && b.opts.singleConsumer:
		return NewSPSC(b.opts.capacity, b.opts.slotSize, b.opts.alloc)
	case b.opts.singleProducer:
		return NewSPMC(b.opts.capacity, b.opts.slotSize, b.opts.alloc)
	case b.opts.singleConsumer:
		return NewMPSC(b.opts.capacity, b.opts.slotSize, b.opts.alloc)
	default:
		return NewMPMC(b.opts.capacity, b.opts.slotSize, b.opts.alloc)
	}
}
