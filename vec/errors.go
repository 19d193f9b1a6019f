package vec

import (
	"errors"
	"fmt"

	"github.com/joshuapare/rawvec/internal/logger"
)

var (
	// ErrIndexOutOfRange indicates an element index or length beyond the
	// live region.
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrDrainRange indicates a drain range outside [0, Len].
	ErrDrainRange = errors.New("vec: drain range out of bounds")

	// ErrBorrowed indicates an operation on a Vec that a Drain or bulk write
	// currently holds exclusively.
	ErrBorrowed = errors.New("vec: exclusively borrowed")

	// ErrMoved indicates use of a Vec whose buffer moved into an IntoIter or
	// Box.
	ErrMoved = errors.New("vec: used after move")

	// ErrCursorOverrun indicates a bulk-write cursor moved past its end,
	// moved backwards, or was used after its write completed.
	ErrCursorOverrun = errors.New("vec: cursor overrun")
)

// fault panics with err wrapped around detail.
func fault(err error, format string, args ...any) {
	e := fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
	logger.Warn("vec fault", "error", e)
	panic(e)
}
