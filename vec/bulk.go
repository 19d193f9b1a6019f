package vec

// Strategy selects how much spare capacity BulkPopulateGuarded prepares.
type Strategy struct {
	exact bool
	n     int
}

// Exact reserves room for n more elements and ends the cursor at Len+n.
func Exact(n int) Strategy { return Strategy{exact: true, n: n} }

// Amortized grows by doubling if full and ends the cursor at Cap.
func Amortized() Strategy { return Strategy{} }

// Cursor writes elements into a Vec's spare capacity during
// BulkPopulateGuarded. It only moves forward.
type Cursor[T any] struct {
	g   *guard[T]
	end int
}

func (c *Cursor[T]) check(n int) {
	switch {
	case c.g.released:
		fault(ErrCursorOverrun, "cursor used after its write completed")
	case n < 0:
		fault(ErrCursorOverrun, "cursor moved backwards by %d", -n)
	case n > c.end-c.g.pos:
		fault(ErrCursorOverrun, "advance %d with %d remaining", n, c.end-c.g.pos)
	}
}

// Write stores x at the cursor and advances it by one.
func (c *Cursor[T]) Write(x T) {
	c.check(1)
	c.g.write(x)
}

// Spare returns the unwritten slots between the cursor and its end. Fill a
// prefix of it, then Advance over exactly the slots filled.
func (c *Cursor[T]) Spare() []T {
	if c.g.released {
		fault(ErrCursorOverrun, "cursor used after its write completed")
	}
	return c.g.v.buf.block[c.g.pos:c.end:c.end]
}

// Advance moves the cursor over n slots already filled through Spare.
func (c *Cursor[T]) Advance(n int) {
	c.check(n)
	c.g.pos += n
}

// Remaining returns the number of slots left before the end.
func (c *Cursor[T]) Remaining() int { return c.end - c.g.pos }

// Written returns the number of slots the cursor has moved over.
func (c *Cursor[T]) Written() int { return c.g.written() }

// BulkPopulateGuarded prepares spare capacity according to s and hands a
// guarded cursor to writer. The writer must only move the cursor forward
// and must leave a valid element in every slot it moves over.
//
// When writer returns, or panics, Len becomes the old length plus the net
// cursor movement. A panic propagates unchanged.
func (v *Vec[T]) BulkPopulateGuarded(s Strategy, writer func(c *Cursor[T])) {
	v.mustOwn()
	var n int
	if s.exact {
		v.reserve(s.n)
		n = s.n
	} else {
		if v.len == v.buf.capacity() {
			v.growAmortized()
		}
		n = v.buf.capacity() - v.len
	}
	g := v.arm()
	defer g.release()
	writer(&Cursor[T]{g: g, end: g.pos + n})
}
