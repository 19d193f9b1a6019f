package vec

import (
	"testing"

	"github.com/joshuapare/rawvec/alloc"
)

// BenchmarkPush measures amortized growth from empty.
func BenchmarkPush(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		v := New[int]()
		for i := range 1024 {
			v.Push(i)
		}
	}
}

// BenchmarkPush_Reserved is the baseline with no growth.
func BenchmarkPush_Reserved(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		v := WithCapacity[int](1024)
		for i := range 1024 {
			v.Push(i)
		}
	}
}

// BenchmarkPush_OffHeap measures growth through the arena allocator.
func BenchmarkPush_OffHeap(b *testing.B) {
	a := alloc.NewOffHeap[int]()
	defer a.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		v := NewIn[int](a)
		for i := range 1024 {
			v.Push(i)
		}
		v.Free()
	}
}

// BenchmarkExtend_Exact measures a single exact reservation.
func BenchmarkExtend_Exact(b *testing.B) {
	src := make([]int, 1024)
	b.ReportAllocs()
	for range b.N {
		v := New[int]()
		v.ExtendSlice(src)
	}
}

// BenchmarkExtend_Unbounded measures the doubling fill loop.
func BenchmarkExtend_Unbounded(b *testing.B) {
	src := make([]int, 1024)
	b.ReportAllocs()
	for range b.N {
		v := New[int]()
		v.Extend(WithHint(FromSlice(src), Unknown()))
	}
}

// BenchmarkDrain measures draining the middle half.
func BenchmarkDrain(b *testing.B) {
	src := make([]int, 1024)
	b.ReportAllocs()
	for range b.N {
		b.StopTimer()
		v := New[int]()
		v.ExtendSlice(src)
		b.StartTimer()
		v.Drain(256, 768).Close()
	}
}
