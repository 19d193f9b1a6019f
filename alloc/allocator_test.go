package alloc

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
	Tag  [4]byte
}

// backends returns every allocator implementation for pointer-free T.
func backends[T any](t *testing.T) map[string]Allocator[T] {
	t.Helper()
	off := NewOffHeap[T]()
	t.Cleanup(func() { require.NoError(t, off.Close()) })
	out := map[string]Allocator[T]{
		"heap":    Heap[T]{},
		"offheap": off,
	}
	if runtime.GOOS == "linux" || runtime.GOOS == "darwin" {
		out["pages"] = NewPages[T]()
	}
	return out
}

func TestAllocatorContract(t *testing.T) {
	for name, a := range backends[point](t) {
		t.Run(name, func(t *testing.T) {
			block := a.Allocate(4)
			require.Len(t, block, 4)
			require.Equal(t, len(block), cap(block))
			for i := range block {
				assert.Zero(t, block[i], "slot %d not zeroed", i)
				block[i] = point{X: int32(i), Y: int32(-i)}
			}

			grown := a.Reallocate(block, 64)
			require.Len(t, grown, 64)
			require.Equal(t, len(grown), cap(grown))
			for i := range 4 {
				assert.Equal(t, point{X: int32(i), Y: int32(-i)}, grown[i], "slot %d lost on grow", i)
			}
			for i := 4; i < 64; i++ {
				assert.Zero(t, grown[i], "grown slot %d not zeroed", i)
			}

			shrunk := a.Reallocate(grown, 2)
			require.Len(t, shrunk, 2)
			assert.Equal(t, point{X: 1, Y: -1}, shrunk[1])

			a.Free(shrunk)
		})
	}
}

func TestAllocatorRejectsNonPositiveCounts(t *testing.T) {
	for name, a := range backends[uint64](t) {
		t.Run(name, func(t *testing.T) {
			requirePanicsWith(t, ErrCapacityOverflow, func() { a.Allocate(0) })
			requirePanicsWith(t, ErrCapacityOverflow, func() { a.Allocate(-3) })
		})
	}
}

func TestByteSizeOverflow(t *testing.T) {
	assert.Equal(t, 24, ByteSize[uint64](3))
	requirePanicsWith(t, ErrCapacityOverflow, func() { ByteSize[uint64](math.MaxInt / 4) })
	requirePanicsWith(t, ErrCapacityOverflow, func() { ByteSize[uint64](-1) })
}

func TestHeapZeroesFreedBlock(t *testing.T) {
	var a Heap[*int]
	v := 7
	block := a.Allocate(2)
	block[0] = &v
	a.Free(block)
	assert.Nil(t, block[0], "freed heap block must drop references")
}

func TestHeapReallocateZeroesOldBlock(t *testing.T) {
	var a Heap[string]
	block := a.Allocate(2)
	block[0], block[1] = "a", "b"
	nb := a.Reallocate(block, 4)
	assert.Equal(t, []string{"a", "b", "", ""}, nb)
	assert.Equal(t, []string{"", ""}, block)
}

func TestZeroSizedElements(t *testing.T) {
	for name, a := range backends[struct{}](t) {
		t.Run(name, func(t *testing.T) {
			block := a.Allocate(10)
			require.Len(t, block, 10)
			block = a.Reallocate(block, 20)
			require.Len(t, block, 20)
			a.Free(block)
		})
	}
}

func TestPointerFree(t *testing.T) {
	assert.True(t, PointerFree[int]())
	assert.True(t, PointerFree[point]())
	assert.True(t, PointerFree[[8]float64]())
	assert.True(t, PointerFree[[0]*int]())
	assert.False(t, PointerFree[string]())
	assert.False(t, PointerFree[*int]())
	assert.False(t, PointerFree[[]byte]())
	assert.False(t, PointerFree[any]())
	assert.False(t, PointerFree[struct {
		N int
		M map[int]int
	}]())
}

func TestOffHeapRejectsPointerElems(t *testing.T) {
	requirePanicsWith(t, ErrPointerElems, func() { NewOffHeap[string]() })
	requirePanicsWith(t, ErrPointerElems, func() { NewPages[[]int]() })
}

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
