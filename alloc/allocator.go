package alloc

import (
	"unsafe"

	"github.com/joshuapare/rawvec/internal/buf"
)

// Allocator hands out typed blocks for element type T.
//
// Implementations:
//   - Heap: Go heap, any element type
//   - OffHeap: modernc.org/memory arena, pointer-free element types
//   - Pages: anonymous page mappings, pointer-free element types
//
// Every returned block has len == cap == the requested element count.
type Allocator[T any] interface {
	// Allocate returns a fresh zeroed block of n > 0 elements.
	Allocate(n int) []T

	// Reallocate resizes block to n > 0 elements. Elements up to the
	// smaller of the two lengths are preserved; new slots are zeroed.
	// The old block must not be used afterwards.
	Reallocate(block []T, n int) []T

	// Free releases block. It must be called exactly once per block.
	Free(block []T)
}

// SizeOf returns the size in bytes of one element of type T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// ByteSize returns n * SizeOf[T](), panicking with ErrCapacityOverflow on a
// negative n or on overflow.
func ByteSize[T any](n int) int {
	size, err := buf.BlockBytes(n, SizeOf[T]())
	if err != nil {
		fault(ErrCapacityOverflow, "%v", err)
	}
	return size
}

// checkCount validates an element count passed to Allocate or Reallocate.
func checkCount[T any](n int) int {
	if n <= 0 {
		fault(ErrCapacityOverflow, "block of %d elements", n)
	}
	return ByteSize[T](n)
}

// blockBytes views the memory behind block as bytes. Only valid for blocks
// whose storage is not managed by the Go heap.
func blockBytes[T any](block []T, size int) []byte {
	if cap(block) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(block))), size)
}

// typedBlock views raw bytes as n elements of T.
func typedBlock[T any](b []byte, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
