package vec

import (
	"iter"

	"github.com/joshuapare/rawvec/alloc"
)

// plan is a reservation strategy chosen from a size hint.
type plan uint8

const (
	planNothing            plan = iota // upper bound 0
	planExact                          // lower == upper
	planStaged                         // exact(lower), then exact(upper-lower)
	planUnbounded                      // no upper bound, lower 0
	planExactThenUnbounded             // exact(lower), then unbounded
)

var planNames = [...]string{"nothing", "exact", "staged", "unbounded", "exact+unbounded"}

func (p plan) String() string { return planNames[p] }

// extendPlans is consulted top to bottom; the first matching row wins.
var extendPlans = []struct {
	plan  plan
	match func(h SizeHint) bool
}{
	{planNothing, func(h SizeHint) bool { return h.Bounded && h.Upper == 0 }},
	{planExact, func(h SizeHint) bool { return h.Bounded && h.Lower == h.Upper }},
	{planStaged, func(h SizeHint) bool { return h.Bounded && h.Lower < h.Upper }},
	{planUnbounded, func(h SizeHint) bool { return !h.Bounded && h.Lower == 0 }},
	{planExactThenUnbounded, func(h SizeHint) bool { return !h.Bounded && h.Lower > 0 }},
}

// choosePlan maps a hint to its strategy. Negative lower bounds count as
// zero; an inconsistent hint (lower > upper) is treated as no upper bound.
func choosePlan(h SizeHint) (plan, SizeHint) {
	h.Lower = max(h.Lower, 0)
	if h.Bounded && h.Lower > h.Upper {
		h.Bounded = false
	}
	for _, row := range extendPlans {
		if row.match(h) {
			return row.plan, h
		}
	}
	return planUnbounded, h
}

// Extend appends every element src yields, reserving according to its size
// hint. If src panics, Len covers exactly the elements written before the
// panic, which then propagates unchanged.
func (v *Vec[T]) Extend(src Source[T]) {
	v.mustOwn()
	p, h := choosePlan(src.SizeHint())
	switch p {
	case planNothing:
	case planExact:
		v.extendExact(src, h.Upper)
	case planStaged:
		v.extendExact(src, h.Lower)
		v.extendExact(src, h.Upper-h.Lower)
	case planUnbounded:
		v.extendUnbounded(src)
	case planExactThenUnbounded:
		v.extendExact(src, h.Lower)
		v.extendUnbounded(src)
	}
}

// ExtendSlice appends copies of the elements of s.
func (v *Vec[T]) ExtendSlice(s []T) {
	v.Extend(FromSlice(s))
}

// ExtendSeq appends every element of seq.
func (v *Vec[T]) ExtendSeq(seq iter.Seq[T]) {
	src := FromSeq(seq)
	defer src.Stop()
	v.Extend(src)
}

// extendExact reserves n slots and writes at most n elements. A source
// that under-delivers leaves the length at what it actually wrote.
func (v *Vec[T]) extendExact(src Source[T], n int) {
	if n == 0 {
		return
	}
	v.reserve(n)
	g := v.arm()
	defer g.release()
	for range n {
		x, ok := src.Next()
		if !ok {
			break
		}
		g.write(x)
	}
	g.commit()
	v.len = g.startLen + g.written()
}

// extendUnbounded fills spare capacity, doubling whenever it runs out,
// until src is exhausted.
func (v *Vec[T]) extendUnbounded(src Source[T]) {
	for v.fillSpare(src) {
		v.growAmortized()
	}
}

// fillSpare writes into the spare region until it is full (returns true)
// or src is exhausted (returns false).
func (v *Vec[T]) fillSpare(src Source[T]) bool {
	spare := v.buf.capacity() - v.len
	g := v.arm()
	defer g.release()
	for range spare {
		x, ok := src.Next()
		if !ok {
			g.commit()
			v.len = g.startLen + g.written()
			return false
		}
		g.write(x)
	}
	g.commit()
	v.len = v.buf.capacity()
	return true
}

// Collect builds a Vec from every element src yields.
func Collect[T any](src Source[T]) *Vec[T] {
	v := New[T]()
	v.Extend(src)
	return v
}

// CollectIn is Collect with blocks taken from a.
func CollectIn[T any](a alloc.Allocator[T], src Source[T]) *Vec[T] {
	v := NewIn(a)
	v.Extend(src)
	return v
}

// Of builds a Vec holding xs.
func Of[T any](xs ...T) *Vec[T] {
	return Collect(FromSlice(xs))
}

// Fill builds a Vec holding n copies of x.
func Fill[T any](x T, n int) *Vec[T] {
	return Collect(Repeat(x, n))
}
