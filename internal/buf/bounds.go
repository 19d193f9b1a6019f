// Package buf contains overflow-checked size arithmetic shared by the
// allocation engine and the container.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int or either operand is negative.
// This is the count * elementSize calculation behind every allocation.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// BlockBytes returns the byte size of count elements of elemSize bytes.
//
// An error describes the specific failure (negative input or overflow):
//
//	n, err := buf.BlockBytes(capacity, int(unsafe.Sizeof(zero)))
//	if err != nil {
//	    panic(fmt.Errorf("%w: %v", ErrCapacityOverflow, err))
//	}
func BlockBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// CheckRange validates the half-open range [start, end) against a sequence
// of length n. Returns an error naming the violated bound.
func CheckRange(start, end, n int) error {
	switch {
	case start < 0:
		return fmt.Errorf("negative start: %d", start)
	case start > end:
		return fmt.Errorf("start %d > end %d", start, end)
	case end > n:
		return fmt.Errorf("end %d > len %d", end, n)
	}
	return nil
}

// RoundUp rounds n up to the next multiple of align, which must be a power
// of two. ok is false on overflow.
func RoundUp(n, align int) (int, bool) {
	r, ok := AddOverflowSafe(n, align-1)
	if !ok {
		return 0, false
	}
	return r &^ (align - 1), true
}
