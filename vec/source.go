package vec

import "iter"

// SizeHint bounds the number of elements a Source will still yield.
// Upper is meaningful only when Bounded is true.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Exactly reports a source of exactly n elements.
func Exactly(n int) SizeHint { return SizeHint{Lower: n, Upper: n, Bounded: true} }

// Between reports a source of lo to hi elements.
func Between(lo, hi int) SizeHint { return SizeHint{Lower: lo, Upper: hi, Bounded: true} }

// AtLeast reports a source of at least n elements and no known upper bound.
func AtLeast(n int) SizeHint { return SizeHint{Lower: n} }

// Unknown reports a source with no useful bounds.
func Unknown() SizeHint { return SizeHint{} }

// Source yields elements one at a time for Extend.
type Source[T any] interface {
	// Next returns the next element, or ok = false when exhausted.
	// Next may panic; Extend leaves the Vec consistent and lets it propagate.
	Next() (x T, ok bool)

	// SizeHint bounds the remaining element count.
	SizeHint() SizeHint
}

type sliceSource[T any] struct {
	s []T
}

// FromSlice returns a Source over the elements of s, copied by value.
func FromSlice[T any](s []T) Source[T] {
	return &sliceSource[T]{s: s}
}

func (s *sliceSource[T]) Next() (x T, ok bool) {
	if len(s.s) == 0 {
		return x, false
	}
	x, s.s = s.s[0], s.s[1:]
	return x, true
}

func (s *sliceSource[T]) SizeHint() SizeHint { return Exactly(len(s.s)) }

type repeatSource[T any] struct {
	x T
	n int
}

// Repeat returns a Source yielding x n times. Elements implementing Cloner
// are cloned for every yield.
func Repeat[T any](x T, n int) Source[T] {
	return &repeatSource[T]{x: x, n: max(n, 0)}
}

func (r *repeatSource[T]) Next() (x T, ok bool) {
	if r.n == 0 {
		return x, false
	}
	r.n--
	return cloneOne(r.x), true
}

func (r *repeatSource[T]) SizeHint() SizeHint { return Exactly(r.n) }

// SeqSource adapts an iter.Seq into a Source with an unknown size hint.
// Call Stop if the sequence is abandoned before it is exhausted.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq pulls from seq. A panic inside seq surfaces from Next.
func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

func (s *SeqSource[T]) Next() (T, bool) { return s.next() }

func (s *SeqSource[T]) SizeHint() SizeHint { return Unknown() }

// Stop releases the underlying sequence.
func (s *SeqSource[T]) Stop() { s.stop() }

type hinted[T any] struct {
	Source[T]
	hint SizeHint
}

// WithHint overrides the size hint reported by src. The hint is reported
// unchanged for the source's lifetime.
func WithHint[T any](src Source[T], hint SizeHint) Source[T] {
	return &hinted[T]{Source: src, hint: hint}
}

func (h *hinted[T]) SizeHint() SizeHint { return h.hint }
