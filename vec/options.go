package vec

import (
	"log/slog"

	"github.com/joshuapare/rawvec/alloc"
	"github.com/joshuapare/rawvec/internal/logger"
)

// Options configures NewWithOptions.
type Options[T any] struct {
	// Allocator supplies the backing block.
	// If nil, alloc.Heap is used.
	Allocator alloc.Allocator[T]

	// Capacity is allocated up front when positive.
	Capacity int
}

// SetLogger routes buffer and guard diagnostics to l. Resizes are logged at
// Debug, faults at Warn. A nil logger discards everything (the default).
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}
