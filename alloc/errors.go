package alloc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/rawvec/internal/logger"
)

var (
	// ErrCapacityOverflow indicates that a requested capacity is negative or
	// that its byte size does not fit in an int.
	ErrCapacityOverflow = errors.New("alloc: capacity overflow")

	// ErrAllocFailed indicates that the backing allocator could not satisfy
	// a request.
	ErrAllocFailed = errors.New("alloc: allocation failed")

	// ErrPointerElems indicates an off-heap allocator was requested for an
	// element type that holds Go pointers.
	ErrPointerElems = errors.New("alloc: element type contains pointers")
)

// fault panics with err wrapped around detail. Allocation faults are never
// returned as values.
func fault(err error, format string, args ...any) {
	e := fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
	logger.Warn("allocation fault", "error", e)
	panic(e)
}

// SetLogger routes allocation faults to l at Warn. A nil logger discards.
// The logger is shared with package vec.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}
