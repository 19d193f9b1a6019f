package vec

import "github.com/joshuapare/rawvec/alloc"

// Box owns an exactly-sized block of live elements, produced by
// Vec.IntoBoxed. It has no spare capacity.
type Box[T any] struct {
	block []T
	alloc alloc.Allocator[T]
}

// Slice returns the elements.
func (b *Box[T]) Slice() []T { return b.block }

// Len returns the number of elements.
func (b *Box[T]) Len() int { return len(b.block) }

// Free drops every element and releases the block. Further calls are no-ops.
func (b *Box[T]) Free() {
	block := b.block
	if block == nil {
		return
	}
	b.block = nil
	defer b.alloc.Free(block)
	dropSlice(block)
}
