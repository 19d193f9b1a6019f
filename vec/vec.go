package vec

import (
	"fmt"

	"github.com/joshuapare/rawvec/alloc"
	"github.com/joshuapare/rawvec/internal/buf"
)

type state uint8

const (
	stateOwned state = iota
	stateBorrowed
	stateMoved
)

// Vec is a growable contiguous sequence. The zero value is an empty Vec
// backed by the Go heap.
type Vec[T any] struct {
	buf   buffer[T]
	len   int
	state state
	views int // open borrowing iterators
}

// New returns an empty Vec with no allocation.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity returns an empty Vec with room for capacity elements.
func WithCapacity[T any](capacity int) *Vec[T] {
	v := New[T]()
	v.buf.ensure(capacity)
	return v
}

// NewIn returns an empty Vec whose blocks come from a.
func NewIn[T any](a alloc.Allocator[T]) *Vec[T] {
	return &Vec[T]{buf: buffer[T]{alloc: a}}
}

// NewWithOptions returns an empty Vec configured by opts.
func NewWithOptions[T any](opts Options[T]) *Vec[T] {
	v := NewIn(opts.Allocator)
	if opts.Capacity > 0 {
		v.buf.ensure(opts.Capacity)
	}
	return v
}

// mustRead panics unless v may be read.
func (v *Vec[T]) mustRead() {
	switch v.state {
	case stateBorrowed:
		fault(ErrBorrowed, "operation during active drain or bulk write")
	case stateMoved:
		fault(ErrMoved, "buffer was moved out")
	}
}

// mustOwn panics unless v is free for a mutating operation: readable and
// with no borrowing iterator open.
func (v *Vec[T]) mustOwn() {
	v.mustRead()
	if v.views > 0 {
		fault(ErrBorrowed, "mutation with %d open iterator(s)", v.views)
	}
}

// Push appends x, doubling capacity first when full.
func (v *Vec[T]) Push(x T) {
	v.mustOwn()
	if v.len == v.buf.capacity() {
		v.growAmortized()
	}
	v.pushUnchecked(x)
}

// pushUnchecked writes x into spare capacity. The caller guarantees room.
func (v *Vec[T]) pushUnchecked(x T) {
	v.buf.block[v.len] = x
	v.len++
}

// Pop removes and returns the last element. ok is false when v is empty.
func (v *Vec[T]) Pop() (x T, ok bool) {
	v.mustOwn()
	if v.len == 0 {
		return x, false
	}
	v.len--
	var zero T
	x, v.buf.block[v.len] = v.buf.block[v.len], zero
	return x, true
}

// Remove removes and returns the element at i, shifting later elements
// down by one. Panics with ErrIndexOutOfRange if i >= Len.
func (v *Vec[T]) Remove(i int) T {
	v.mustOwn()
	if i < 0 || i >= v.len {
		fault(ErrIndexOutOfRange, "remove index %d, len %d", i, v.len)
	}
	block := v.buf.block
	x := block[i]
	copy(block[i:], block[i+1:v.len])
	v.len--
	var zero T
	block[v.len] = zero
	return x
}

// Truncate drops every element at or after n. No-op if n >= Len.
func (v *Vec[T]) Truncate(n int) {
	v.mustOwn()
	if n < 0 {
		fault(ErrIndexOutOfRange, "truncate to %d", n)
	}
	if n >= v.len {
		return
	}
	tail := v.buf.block[n:v.len]
	// Length first: a panicking Drop must not leave dropped slots live.
	v.len = n
	dropSlice(tail)
}

// Clear drops every element. Capacity is kept.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Reserve grows capacity, if needed, so that at least extra more elements
// fit. Capacity doubles from its current value (0 becomes 1) until it
// reaches Len+extra.
func (v *Vec[T]) Reserve(extra int) {
	v.mustOwn()
	v.reserve(extra)
}

func (v *Vec[T]) reserve(extra int) {
	need, ok := buf.AddOverflowSafe(v.len, extra)
	if extra < 0 || !ok {
		fault(alloc.ErrCapacityOverflow, "reserve %d beyond len %d", extra, v.len)
	}
	capacity := v.buf.capacity()
	for need > capacity {
		capacity = nextCapacity(capacity)
	}
	v.buf.ensure(capacity)
}

// ReserveExact grows capacity to exactly capacity if that exceeds Cap.
func (v *Vec[T]) ReserveExact(capacity int) {
	v.mustOwn()
	if capacity > v.buf.capacity() {
		v.buf.ensure(capacity)
	}
}

// ShrinkTo truncates to capacity elements if needed, then resizes the block
// to exactly capacity.
func (v *Vec[T]) ShrinkTo(capacity int) {
	v.Truncate(capacity)
	v.buf.ensure(capacity)
}

// ShrinkToFit resizes the block to exactly Len.
func (v *Vec[T]) ShrinkToFit() {
	v.ShrinkTo(v.len)
}

// SetLen overwrites the length without touching memory. The caller is
// responsible for slots [0, n) holding valid elements, typically written
// through Block. Only n outside [0, Cap] is rejected.
func (v *Vec[T]) SetLen(n int) {
	v.mustOwn()
	if n < 0 || n > v.buf.capacity() {
		fault(ErrIndexOutOfRange, "set len %d, cap %d", n, v.buf.capacity())
	}
	v.len = n
}

// growAmortized doubles capacity, or allocates one slot when empty.
func (v *Vec[T]) growAmortized() {
	v.buf.ensure(nextCapacity(v.buf.capacity()))
}

func nextCapacity(capacity int) int {
	if capacity == 0 {
		return 1
	}
	next, ok := buf.MulOverflowSafe(capacity, 2)
	if !ok {
		fault(alloc.ErrCapacityOverflow, "doubling capacity %d", capacity)
	}
	return next
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.len }

// Cap returns the number of slots in the current block.
func (v *Vec[T]) Cap() int { return v.buf.capacity() }

// AsSlice returns the live elements. The slice is capped at Len, so
// appending to it never writes into spare capacity. It is valid until the
// next operation that may reallocate.
func (v *Vec[T]) AsSlice() []T {
	v.mustRead()
	return v.buf.block[:v.len:v.len]
}

// AsMutSlice returns the live elements for in-place mutation. Same
// validity rules as AsSlice.
func (v *Vec[T]) AsMutSlice() []T {
	return v.AsSlice()
}

// Block returns the entire backing block, spare capacity included, for
// interop with code that fills spare slots and then calls SetLen.
func (v *Vec[T]) Block() []T {
	v.mustRead()
	return v.buf.block
}

// Get returns the element at i.
func (v *Vec[T]) Get(i int) T {
	v.mustRead()
	if i < 0 || i >= v.len {
		fault(ErrIndexOutOfRange, "get index %d, len %d", i, v.len)
	}
	return v.buf.block[i]
}

// Set replaces the element at i, dropping the old one.
func (v *Vec[T]) Set(i int, x T) {
	v.mustOwn()
	if i < 0 || i >= v.len {
		fault(ErrIndexOutOfRange, "set index %d, len %d", i, v.len)
	}
	slot := &v.buf.block[i]
	// x lands even if the old element's Drop panics.
	defer func() { *slot = x }()
	dropOne(slot)
}

// Chunks splits the live elements into consecutive chunks of n, returning
// the trailing elements that do not fill a whole chunk separately.
func (v *Vec[T]) Chunks(n int) (chunks [][]T, rest []T) {
	if n <= 0 {
		fault(ErrIndexOutOfRange, "chunk size %d", n)
	}
	s := v.AsSlice()
	for len(s) >= n {
		chunks = append(chunks, s[:n:n])
		s = s[n:]
	}
	return chunks, s
}

// Clone returns an independent Vec with the same capacity and allocator.
// Elements implementing Cloner are deep-copied; others are copied by value.
func (v *Vec[T]) Clone() *Vec[T] {
	v.mustRead()
	out := NewIn(v.buf.allocator())
	out.buf.ensure(v.buf.capacity())
	for _, x := range v.buf.block[:v.len] {
		out.pushUnchecked(cloneOne(x))
	}
	return out
}

// Free drops every element and releases the block. v is left empty and
// may be reused.
func (v *Vec[T]) Free() {
	v.Truncate(0)
	v.buf.release()
}

// Drop frees v when it is itself an element being dropped, so nested
// Vecs release their blocks with their owner. A moved Vec no longer owns
// a block and is left alone.
func (v *Vec[T]) Drop() {
	if v.state == stateMoved {
		return
	}
	v.Free()
}

// IntoBoxed shrinks the block to exactly Len and moves it into a Box.
// v is left moved.
func (v *Vec[T]) IntoBoxed() *Box[T] {
	v.ShrinkToFit()
	b := &Box[T]{block: v.buf.take(), alloc: v.buf.allocator()}
	v.len = 0
	v.state = stateMoved
	return b
}

// String formats the live elements with their length and capacity.
func (v *Vec[T]) String() string {
	if v.state == stateMoved {
		return "Vec(moved)"
	}
	return fmt.Sprintf("Vec(len=%d cap=%d)%v", v.len, v.buf.capacity(), v.buf.block[:v.len])
}
