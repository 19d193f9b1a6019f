package vec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rawvec/alloc"
)

// ledger counts Drop calls per element id.
type ledger struct {
	drops map[int]int
}

func newLedger() *ledger { return &ledger{drops: map[int]int{}} }

// assertOnce checks that exactly ids were dropped, each once.
func (l *ledger) assertOnce(t *testing.T, ids ...int) {
	t.Helper()
	want := make(map[int]int, len(ids))
	for _, id := range ids {
		want[id] = 1
	}
	require.Equal(t, want, l.drops)
}

type tracked struct {
	id int
	l  *ledger
}

func (x tracked) Drop() { x.l.drops[x.id]++ }

func trackedRange(l *ledger, lo, hi int) []tracked {
	out := make([]tracked, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, tracked{id: i, l: l})
	}
	return out
}

func ids(xs []tracked) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = x.id
	}
	return out
}

// countingSource yields tracked elements and panics on pull number panicAt
// (0-based). A negative panicAt never panics.
type countingSource struct {
	l       *ledger
	pulls   int
	limit   int
	panicAt int
	hint    SizeHint
}

func (s *countingSource) Next() (tracked, bool) {
	if s.pulls == s.panicAt {
		panic("source exploded")
	}
	if s.limit >= 0 && s.pulls >= s.limit {
		return tracked{}, false
	}
	x := tracked{id: s.pulls, l: s.l}
	s.pulls++
	return x, true
}

func (s *countingSource) SizeHint() SizeHint { return s.hint }

// countingAlloc records allocator traffic for assertions.
type countingAlloc[T any] struct {
	alloc.Heap[T]
	allocs, reallocs, frees int
	freedCap                int
}

func (a *countingAlloc[T]) Allocate(n int) []T {
	a.allocs++
	return a.Heap.Allocate(n)
}

func (a *countingAlloc[T]) Reallocate(block []T, n int) []T {
	a.reallocs++
	return a.Heap.Reallocate(block, n)
}

func (a *countingAlloc[T]) Free(block []T) {
	a.frees++
	a.freedCap = len(block)
	a.Heap.Free(block)
}

func (a *countingAlloc[T]) reservations() int { return a.allocs + a.reallocs }

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
