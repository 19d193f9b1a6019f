package alloc

import (
	"modernc.org/memory"
)

// OffHeap allocates blocks from a modernc.org/memory arena, outside the Go
// heap. Only pointer-free element types may be stored: the GC does not scan
// these blocks.
//
// Zero-sized element types need no memory and are served from the Go heap.
type OffHeap[T any] struct {
	mem  memory.Allocator
	size int
}

// NewOffHeap creates an arena-backed allocator for T.
// Panics with ErrPointerElems if T contains pointers.
func NewOffHeap[T any]() *OffHeap[T] {
	requirePointerFree[T]("off-heap allocator")
	return &OffHeap[T]{size: SizeOf[T]()}
}

// Allocate returns a zeroed block of n elements.
func (o *OffHeap[T]) Allocate(n int) []T {
	nbytes := checkCount[T](n)
	if o.size == 0 {
		return make([]T, n)
	}
	b, err := o.mem.Calloc(nbytes)
	if err != nil {
		fault(ErrAllocFailed, "calloc %d bytes: %v", nbytes, err)
	}
	return typedBlock[T](b, n)
}

// Reallocate resizes block in the arena, zeroing any slots it gains.
func (o *OffHeap[T]) Reallocate(block []T, n int) []T {
	nbytes := checkCount[T](n)
	if o.size == 0 {
		return make([]T, n)
	}
	old := len(block)
	b, err := o.mem.Realloc(blockBytes(block, old*o.size), nbytes)
	if err != nil {
		fault(ErrAllocFailed, "realloc %d -> %d bytes: %v", old*o.size, nbytes, err)
	}
	nb := typedBlock[T](b, n)
	if n > old {
		clear(nb[old:])
	}
	return nb
}

// Free returns block to the arena.
func (o *OffHeap[T]) Free(block []T) {
	if o.size == 0 || cap(block) == 0 {
		return
	}
	if err := o.mem.Free(blockBytes(block, cap(block)*o.size)); err != nil {
		fault(ErrAllocFailed, "free %d bytes: %v", cap(block)*o.size, err)
	}
}

// Close releases all memory held by the arena. Blocks handed out earlier
// become invalid.
func (o *OffHeap[T]) Close() error {
	return o.mem.Close()
}

var _ Allocator[int64] = (*OffHeap[int64])(nil)
