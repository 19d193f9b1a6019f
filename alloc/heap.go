package alloc

// Heap allocates blocks on the Go heap. The zero value is ready to use.
type Heap[T any] struct{}

// Allocate returns make([]T, n).
func (Heap[T]) Allocate(n int) []T {
	checkCount[T](n)
	return make([]T, n)
}

// Reallocate copies block into a new block of n elements and zeroes the old one.
func (Heap[T]) Reallocate(block []T, n int) []T {
	checkCount[T](n)
	nb := make([]T, n)
	copy(nb, block)
	clear(block)
	return nb
}

// Free zeroes block so that anything it referenced can be collected.
func (Heap[T]) Free(block []T) {
	clear(block)
}

var _ Allocator[int] = Heap[int]{}
