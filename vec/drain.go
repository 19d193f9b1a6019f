package vec

import (
	"iter"

	"github.com/joshuapare/rawvec/internal/buf"
)

// Drain removes the range [start, end) from a Vec, yielding its elements
// by value. The Vec stays exclusively borrowed until Close, which runs
// automatically once Next reports exhaustion.
type Drain[T any] struct {
	v      *Vec[T]
	start  int
	pos    int
	end    int
	closed bool
}

// Drain borrows v to remove [start, end). Panics with ErrDrainRange unless
// 0 <= start <= end <= Len.
func (v *Vec[T]) Drain(start, end int) *Drain[T] {
	v.mustOwn()
	if err := buf.CheckRange(start, end, v.len); err != nil {
		fault(ErrDrainRange, "%v", err)
	}
	v.state = stateBorrowed
	return &Drain[T]{v: v, start: start, pos: start, end: end}
}

// Next moves the next drained element out.
func (d *Drain[T]) Next() (x T, ok bool) {
	if d.closed {
		return x, false
	}
	if d.pos == d.end {
		d.Close()
		return x, false
	}
	var zero T
	slot := &d.v.buf.block[d.pos]
	x, *slot = *slot, zero
	d.pos++
	return x, true
}

// Len returns the number of elements not yet yielded.
func (d *Drain[T]) Len() int { return d.end - d.pos }

// SizeHint reports the exact remaining count.
func (d *Drain[T]) SizeHint() SizeHint { return Exactly(d.Len()) }

// Close drops the elements not yet yielded, moves the tail down to close
// the gap and returns the borrow. Further calls are no-ops.
func (d *Drain[T]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	defer d.compact()
	rest := d.v.buf.block[d.pos:d.end]
	d.pos = d.end
	dropSlice(rest)
}

// compact shifts [end, len) down to start and shortens the Vec by the
// drained count.
func (d *Drain[T]) compact() {
	v := d.v
	block := v.buf.block
	removed := d.end - d.start
	copy(block[d.start:], block[d.end:v.len])
	clear(block[v.len-removed : v.len])
	v.len -= removed
	v.state = stateOwned
}

// All yields the remaining elements and closes the drain when the loop
// ends, including on break.
func (d *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			x, ok := d.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}
