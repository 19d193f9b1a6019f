package vec

import (
	"log/slog"

	"github.com/joshuapare/rawvec/alloc"
	"github.com/joshuapare/rawvec/internal/logger"
)

// buffer owns zero or one block. len(block) is the capacity; a nil block
// means capacity 0 and no live allocation.
type buffer[T any] struct {
	block []T
	alloc alloc.Allocator[T]
}

func (b *buffer[T]) capacity() int { return len(b.block) }

func (b *buffer[T]) allocator() alloc.Allocator[T] {
	if b.alloc == nil {
		b.alloc = alloc.Heap[T]{}
	}
	return b.alloc
}

// ensure resizes the block to exactly capacity elements. The transition is
// chosen by the (current, requested) pair alone:
//
//	0 -> 0   no-op
//	0 -> n   allocate
//	n -> 0   free
//	n -> m   reallocate, preserving min(n, m) elements
func (b *buffer[T]) ensure(capacity int) {
	cur := len(b.block)
	var op string
	switch {
	case capacity < 0:
		fault(alloc.ErrCapacityOverflow, "negative capacity %d", capacity)
	case capacity == cur:
		return
	case cur == 0:
		op = "allocate"
		b.block = b.allocator().Allocate(capacity)
	case capacity == 0:
		op = "free"
		b.allocator().Free(b.block)
		b.block = nil
	default:
		op = "reallocate"
		b.block = b.allocator().Reallocate(b.block, capacity)
	}
	if logger.Enabled(slog.LevelDebug) {
		logger.Debug("buffer resize",
			"op", op,
			"from", cur,
			"to", capacity,
			"bytes", alloc.ByteSize[T](capacity))
	}
}

// release frees the block, if any, and resets to the empty state.
func (b *buffer[T]) release() {
	b.ensure(0)
}

// take detaches the block, leaving the buffer empty without freeing.
func (b *buffer[T]) take() []T {
	block := b.block
	b.block = nil
	return block
}
