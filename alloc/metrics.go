package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts allocator traffic. One Metrics may be shared by any number
// of instrumented allocators.
type Metrics struct {
	Allocations   prometheus.Counter
	Reallocations prometheus.Counter
	Frees         prometheus.Counter
	LiveBytes     prometheus.Gauge
}

// NewMetrics creates the allocator metrics and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Allocations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "rawvec",
			Subsystem: "alloc",
			Name:      "allocations_total",
			Help:      "Fresh blocks handed out.",
		}),
		Reallocations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "rawvec",
			Subsystem: "alloc",
			Name:      "reallocations_total",
			Help:      "Blocks resized in place or by move.",
		}),
		Frees: f.NewCounter(prometheus.CounterOpts{
			Namespace: "rawvec",
			Subsystem: "alloc",
			Name:      "frees_total",
			Help:      "Blocks released.",
		}),
		LiveBytes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "rawvec",
			Subsystem: "alloc",
			Name:      "live_bytes",
			Help:      "Bytes currently held by live blocks.",
		}),
	}
}

type instrumented[T any] struct {
	next Allocator[T]
	m    *Metrics
}

// Instrument wraps a so that every call is recorded in m.
func Instrument[T any](a Allocator[T], m *Metrics) Allocator[T] {
	return &instrumented[T]{next: a, m: m}
}

func (a *instrumented[T]) Allocate(n int) []T {
	block := a.next.Allocate(n)
	a.m.Allocations.Inc()
	a.m.LiveBytes.Add(float64(ByteSize[T](n)))
	return block
}

func (a *instrumented[T]) Reallocate(block []T, n int) []T {
	old := len(block)
	nb := a.next.Reallocate(block, n)
	a.m.Reallocations.Inc()
	a.m.LiveBytes.Add(float64(ByteSize[T](n) - ByteSize[T](old)))
	return nb
}

func (a *instrumented[T]) Free(block []T) {
	n := len(block)
	a.next.Free(block)
	a.m.Frees.Inc()
	a.m.LiveBytes.Sub(float64(ByteSize[T](n)))
}
