package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fibWriter(a, b *uint64) func(c *Cursor[uint64]) {
	return func(c *Cursor[uint64]) {
		for c.Remaining() > 0 {
			c.Write(*a)
			*a, *b = *b, *a+*b
		}
	}
}

func TestBulkPopulateFibonacci(t *testing.T) {
	v := New[uint64]()
	a, b := uint64(0), uint64(1)

	v.BulkPopulateGuarded(Exact(15), fibWriter(&a, &b))
	require.Equal(t, 15, v.Len())
	v.BulkPopulateGuarded(Exact(15), fibWriter(&a, &b))
	require.Equal(t, 30, v.Len())

	s := v.AsSlice()
	require.Equal(t, []uint64{0, 1, 1, 2, 3, 5, 8, 13}, s[:8])
	for i := 2; i < len(s); i++ {
		require.Equal(t, s[i-1]+s[i-2], s[i], "index %d", i)
	}
	require.Equal(t, uint64(514229), s[29])
}

func TestBulkPopulateAmortized(t *testing.T) {
	v := New[int]()
	v.BulkPopulateGuarded(Amortized(), func(c *Cursor[int]) {
		require.Equal(t, 1, c.Remaining())
		c.Write(1)
	})
	require.Equal(t, []int{1}, v.AsSlice())

	v.BulkPopulateGuarded(Amortized(), func(c *Cursor[int]) {
		require.Equal(t, 1, c.Remaining())
	})
	require.Equal(t, 1, v.Len())
	require.Equal(t, 2, v.Cap())

	v.Push(2)
	v.BulkPopulateGuarded(Amortized(), func(c *Cursor[int]) {
		require.Equal(t, 2, c.Remaining())
		c.Write(3)
	})
	require.Equal(t, []int{1, 2, 3}, v.AsSlice())
}

func TestBulkPopulateSpareAdvance(t *testing.T) {
	v := Of(9)
	v.BulkPopulateGuarded(Exact(4), func(c *Cursor[int]) {
		spare := c.Spare()
		require.Len(t, spare, 4)
		n := copy(spare, []int{1, 2, 3})
		c.Advance(n)
		require.Equal(t, 3, c.Written())
		require.Equal(t, 1, c.Remaining())
	})
	require.Equal(t, []int{9, 1, 2, 3}, v.AsSlice())
}

func TestBulkPopulateWriterPanics(t *testing.T) {
	l := newLedger()
	v := New[tracked]()
	require.PanicsWithValue(t, "writer exploded", func() {
		v.BulkPopulateGuarded(Exact(10), func(c *Cursor[tracked]) {
			for i := range 10 {
				if i == 6 {
					panic("writer exploded")
				}
				c.Write(tracked{id: i, l: l})
			}
		})
	})
	require.Equal(t, 6, v.Len())
	require.Empty(t, l.drops)

	v.Clear()
	l.assertOnce(t, 0, 1, 2, 3, 4, 5)
}

func TestCursorMisuse(t *testing.T) {
	t.Run("write past end", func(t *testing.T) {
		v := New[int]()
		requirePanicsWith(t, ErrCursorOverrun, func() {
			v.BulkPopulateGuarded(Exact(2), func(c *Cursor[int]) {
				c.Write(1)
				c.Write(2)
				c.Write(3)
			})
		})
		require.Equal(t, []int{1, 2}, v.AsSlice())
	})
	t.Run("advance backwards", func(t *testing.T) {
		v := New[int]()
		requirePanicsWith(t, ErrCursorOverrun, func() {
			v.BulkPopulateGuarded(Exact(2), func(c *Cursor[int]) {
				c.Write(1)
				c.Advance(-1)
			})
		})
		require.Equal(t, 1, v.Len())
	})
	t.Run("use after write", func(t *testing.T) {
		v := New[int]()
		var kept *Cursor[int]
		v.BulkPopulateGuarded(Exact(2), func(c *Cursor[int]) { kept = c })
		requirePanicsWith(t, ErrCursorOverrun, func() { kept.Write(1) })
		requirePanicsWith(t, ErrCursorOverrun, func() { kept.Spare() })
		require.Zero(t, v.Len())
	})
}

func TestBulkPopulateBorrowsVec(t *testing.T) {
	v := New[int]()
	v.BulkPopulateGuarded(Exact(1), func(c *Cursor[int]) {
		requirePanicsWith(t, ErrBorrowed, func() { v.Push(1) })
		requirePanicsWith(t, ErrBorrowed, func() { v.Reserve(100) })
		c.Write(7)
	})
	v.Push(8)
	require.Equal(t, []int{7, 8}, v.AsSlice())
}

func TestBulkPopulateFibonacciRestarted(t *testing.T) {
	v := New[uint64]()
	for range 2 {
		a, b := uint64(0), uint64(1)
		v.BulkPopulateGuarded(Exact(15), fibWriter(&a, &b))
	}
	require.Equal(t, 30, v.Len())
	require.Equal(t, v.AsSlice()[:15], v.AsSlice()[15:])
	require.Equal(t, uint64(377), v.Get(14))

	last, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, uint64(377), last)
	require.Equal(t, uint64(2), v.Remove(3))
	require.Equal(t, 28, v.Len())
}
