package alloc

import (
	"github.com/joshuapare/rawvec/internal/pages"
)

// Pages allocates every block as its own anonymous page mapping. Block
// sizes are rounded up to whole pages, so Pages suits large, long-lived
// buffers of pointer-free elements.
//
// Zero-sized element types need no memory and are served from the Go heap.
type Pages[T any] struct {
	size int
}

// NewPages creates a page-mapping allocator for T.
// Panics with ErrPointerElems if T contains pointers.
func NewPages[T any]() *Pages[T] {
	requirePointerFree[T]("page allocator")
	return &Pages[T]{size: SizeOf[T]()}
}

// mapping reconstructs the full page region behind a block of n elements.
func (p *Pages[T]) mapping(block []T) []byte {
	n, err := pages.Length(cap(block) * p.size)
	if err != nil {
		fault(ErrAllocFailed, "%v", err)
	}
	return blockBytes(block, n)
}

// Allocate maps a zeroed region large enough for n elements.
func (p *Pages[T]) Allocate(n int) []T {
	nbytes := checkCount[T](n)
	if p.size == 0 {
		return make([]T, n)
	}
	b, err := pages.Map(nbytes)
	if err != nil {
		fault(ErrAllocFailed, "map %d bytes: %v", nbytes, err)
	}
	return typedBlock[T](b, n)
}

// Reallocate remaps block to hold n elements.
func (p *Pages[T]) Reallocate(block []T, n int) []T {
	nbytes := checkCount[T](n)
	if p.size == 0 {
		return make([]T, n)
	}
	old := len(block)
	b, err := pages.Remap(p.mapping(block), nbytes)
	if err != nil {
		fault(ErrAllocFailed, "remap %d -> %d bytes: %v", old*p.size, nbytes, err)
	}
	nb := typedBlock[T](b, n)
	if n > old {
		clear(nb[old:])
	}
	return nb
}

// Free unmaps block.
func (p *Pages[T]) Free(block []T) {
	if p.size == 0 || cap(block) == 0 {
		return
	}
	if err := pages.Unmap(p.mapping(block)); err != nil {
		fault(ErrAllocFailed, "unmap: %v", err)
	}
}

var _ Allocator[int64] = (*Pages[int64])(nil)
