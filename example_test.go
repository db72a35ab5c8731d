package ringslab_test

import (
	"encoding/binary"
	"fmt"

	"github.com/ringslab/ringslab"
)

// ExampleNewSPSC demonstrates a basic SPSC queue for a pipeline stage.
func ExampleNewSPSC() {
	q, _ := ringslab.NewSPSC(8, 8, ringslab.NewHeapAllocator())
	defer q.Close()

	for i := 1; i <= 5; i++ {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(i*10))
		q.Push(buf[:])
	}

	var buf [8]byte
	for range 5 {
		q.Pop(buf[:])
		fmt.Println(binary.LittleEndian.Uint64(buf[:]))
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleBuild shows the fluent builder selecting a topology from the
// declared producer/consumer constraints.
func ExampleBuild() {
	q, err := ringslab.Build(ringslab.New(16, 4).SingleProducer())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer q.Close()

	fmt.Println(q.Cap(), q.SlotSize())
	// Output:
	// 16 4
}
