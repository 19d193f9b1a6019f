package vec

import "github.com/joshuapare/rawvec/internal/logger"

// guard tracks a bulk write into v's spare capacity. pos is the write
// cursor and only ever moves forward from start.
//
// A committed guard does nothing further; the caller owns the final
// length. A guard released without commit sets
//
//	v.len = startLen + (pos - start)
//
// so the length covers exactly the elements written, whether the write
// finished or a panic cut it short.
type guard[T any] struct {
	v         *Vec[T]
	startLen  int
	start     int
	pos       int
	committed bool
	released  bool
}

// arm borrows v and positions the cursor at its current length.
func (v *Vec[T]) arm() *guard[T] {
	v.mustOwn()
	v.state = stateBorrowed
	return &guard[T]{v: v, startLen: v.len, start: v.len, pos: v.len}
}

func (g *guard[T]) write(x T) {
	g.v.buf.block[g.pos] = x
	g.pos++
}

func (g *guard[T]) written() int { return g.pos - g.start }

// commit neutralizes the guard and returns the borrow.
func (g *guard[T]) commit() {
	g.committed = true
	g.released = true
	g.v.state = stateOwned
}

// release runs deferred. Uncommitted guards write back the length.
func (g *guard[T]) release() {
	if g.committed {
		return
	}
	g.released = true
	g.v.len = g.startLen + g.written()
	g.v.state = stateOwned
	logger.Debug("bulk write released", "start_len", g.startLen, "written", g.written())
}
