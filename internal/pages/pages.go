// Package pages provides anonymous, page-granular memory regions for
// pointer-free element storage outside the Go heap.
//
// Every region returned by Map or Remap has len == cap == a whole number of
// pages; callers keep that slice (or one with the same base and capacity)
// to pass back to Remap and Unmap.
package pages

import (
	"errors"
	"fmt"

	"github.com/joshuapare/rawvec/internal/buf"
)

// ErrBadSize indicates a non-positive or overflowing region size.
var ErrBadSize = errors.New("pages: bad region size")

// Length returns the page-rounded length for a region of size bytes.
func Length(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	n, ok := buf.RoundUp(size, PageSize())
	if !ok {
		return 0, fmt.Errorf("%w: %d overflows page rounding", ErrBadSize, size)
	}
	return n, nil
}
