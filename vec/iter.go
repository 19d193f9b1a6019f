package vec

import (
	"iter"

	"github.com/joshuapare/rawvec/alloc"
)

// view is a shared borrow of a Vec's live elements. While any view is
// open, operations that could move or drop elements panic with
// ErrBorrowed.
type view[T any] struct {
	v *Vec[T]
	s []T
}

func (v *Vec[T]) openView() view[T] {
	v.mustRead()
	if v.len == 0 {
		return view[T]{}
	}
	v.views++
	return view[T]{v: v, s: v.buf.block[:v.len:v.len]}
}

// split removes the first element. The borrow ends as soon as nothing is
// left to read.
func (w *view[T]) split() *T {
	p := &w.s[0]
	w.s = w.s[1:]
	if len(w.s) == 0 {
		w.close()
	}
	return p
}

func (w *view[T]) close() {
	if w.v == nil {
		return
	}
	w.v.views--
	w.v = nil
	w.s = nil
}

// Iter walks the live elements by value. It borrows the Vec until it is
// exhausted or closed.
type Iter[T any] struct {
	w view[T]
}

// Iter returns a borrowing iterator over the live elements.
func (v *Vec[T]) Iter() *Iter[T] {
	return &Iter[T]{w: v.openView()}
}

// Next splits off the first remaining element.
func (it *Iter[T]) Next() (x T, ok bool) {
	if len(it.w.s) == 0 {
		return x, false
	}
	return *it.w.split(), true
}

// Len returns the exact number of elements left.
func (it *Iter[T]) Len() int { return len(it.w.s) }

// SizeHint reports the exact remaining count, so an Iter can feed Extend.
func (it *Iter[T]) SizeHint() SizeHint { return Exactly(len(it.w.s)) }

// Close ends the borrow early. Further calls are no-ops.
func (it *Iter[T]) Close() { it.w.close() }

// IterMut walks the live elements by pointer for in-place mutation. It
// borrows the Vec until it is exhausted or closed.
type IterMut[T any] struct {
	w view[T]
}

// IterMut returns a mutably-borrowing iterator over the live elements.
func (v *Vec[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{w: v.openView()}
}

// Next splits off a pointer to the first remaining element.
func (it *IterMut[T]) Next() (*T, bool) {
	if len(it.w.s) == 0 {
		return nil, false
	}
	return it.w.split(), true
}

// Len returns the exact number of elements left.
func (it *IterMut[T]) Len() int { return len(it.w.s) }

// Peek returns a pointer to the next element without advancing.
func (it *IterMut[T]) Peek() (*T, bool) {
	if len(it.w.s) == 0 {
		return nil, false
	}
	return &it.w.s[0], true
}

// Close ends the borrow early. Further calls are no-ops.
func (it *IterMut[T]) Close() { it.w.close() }

// All yields index, element pairs. The Vec is borrowed for the duration
// of the loop.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		w := v.openView()
		defer w.close()
		for i, x := range w.s {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the elements. The Vec is borrowed for the duration of the
// loop.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		w := v.openView()
		defer w.close()
		for _, x := range w.s {
			if !yield(x) {
				return
			}
		}
	}
}

// Pointers yields index, pointer pairs for in-place mutation. The Vec is
// borrowed for the duration of the loop.
func (v *Vec[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		w := v.openView()
		defer w.close()
		for i := range w.s {
			if !yield(i, &w.s[i]) {
				return
			}
		}
	}
}

// IntoIter owns a Vec's block and yields its elements by value. It frees
// the block exactly once: on Close, or automatically when Next reports
// exhaustion.
type IntoIter[T any] struct {
	block  []T
	alloc  alloc.Allocator[T]
	pos    int
	end    int
	closed bool
}

// IntoIter moves v's block into a consuming iterator. v is left moved.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	v.mustOwn()
	it := &IntoIter[T]{alloc: v.buf.allocator(), end: v.len}
	it.block = v.buf.take()
	v.len = 0
	v.state = stateMoved
	return it
}

// Next moves the next element out.
func (it *IntoIter[T]) Next() (x T, ok bool) {
	if it.closed {
		return x, false
	}
	if it.pos == it.end {
		it.Close()
		return x, false
	}
	var zero T
	x, it.block[it.pos] = it.block[it.pos], zero
	it.pos++
	return x, true
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int { return it.end - it.pos }

// SizeHint reports the exact remaining count.
func (it *IntoIter[T]) SizeHint() SizeHint { return Exactly(it.Len()) }

// Close drops the elements not yet yielded and frees the block. Further
// calls are no-ops.
func (it *IntoIter[T]) Close() {
	if it.closed {
		return
	}
	it.closed = true
	defer it.free()
	rest := it.block[it.pos:it.end]
	it.pos = it.end
	dropSlice(rest)
}

func (it *IntoIter[T]) free() {
	if cap(it.block) > 0 {
		it.alloc.Free(it.block)
	}
	it.block = nil
}

// All yields the remaining elements and closes the iterator when the loop
// ends, including on break.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}
