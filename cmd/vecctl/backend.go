package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/rawvec/alloc"
	"github.com/joshuapare/rawvec/vec"
)

// allocatorFor resolves the --allocator flag for element type T. The
// returned closer releases backend resources once every Vec using the
// allocator has been freed.
func allocatorFor[T any](kind string) (alloc.Allocator[T], func(), error) {
	switch kind {
	case "", "heap":
		return alloc.Heap[T]{}, func() {}, nil
	case "offheap", "pages":
		if !alloc.PointerFree[T]() {
			return nil, nil, fmt.Errorf("%s allocator needs pointer-free elements", kind)
		}
		if kind == "pages" {
			return alloc.NewPages[T](), func() {}, nil
		}
		a := alloc.NewOffHeap[T]()
		return a, func() { _ = a.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown allocator %q (want heap, offheap or pages)", kind)
	}
}

// session is one instrumented allocator plus its private registry.
type session[T any] struct {
	alloc alloc.Allocator[T]
	reg   *prometheus.Registry
	close func()
}

func newSession[T any]() (*session[T], error) {
	base, closeFn, err := allocatorFor[T](allocKind)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	m := alloc.NewMetrics(reg)
	return &session[T]{alloc: alloc.Instrument(base, m), reg: reg, close: closeFn}, nil
}

// Vec returns an empty Vec backed by the session's allocator.
func (s *session[T]) Vec() *vec.Vec[T] {
	return vec.NewIn(s.alloc)
}

// allocStats is a snapshot of allocator traffic.
type allocStats struct {
	Allocations   int    `json:"allocations"`
	Reallocations int    `json:"reallocations"`
	Frees         int    `json:"frees"`
	LiveBytes     uint64 `json:"live_bytes"`
}

func (s *session[T]) stats() (allocStats, error) {
	mfs, err := s.reg.Gather()
	if err != nil {
		return allocStats{}, fmt.Errorf("gather metrics: %w", err)
	}
	var st allocStats
	for _, mf := range mfs {
		if len(mf.GetMetric()) == 0 {
			continue
		}
		m := mf.GetMetric()[0]
		switch mf.GetName() {
		case "rawvec_alloc_allocations_total":
			st.Allocations = int(m.GetCounter().GetValue())
		case "rawvec_alloc_reallocations_total":
			st.Reallocations = int(m.GetCounter().GetValue())
		case "rawvec_alloc_frees_total":
			st.Frees = int(m.GetCounter().GetValue())
		case "rawvec_alloc_live_bytes":
			st.LiveBytes = uint64(m.GetGauge().GetValue())
		}
	}
	return st, nil
}

func (st allocStats) String() string {
	return printer.Sprintf("allocations=%d reallocations=%d frees=%d live=%s",
		st.Allocations, st.Reallocations, st.Frees, humanize.IBytes(st.LiveBytes))
}

// printStats reports allocator traffic in text mode.
func (s *session[T]) printStats() error {
	st, err := s.stats()
	if err != nil {
		return err
	}
	printInfo("Allocator (%s): %s\n", allocName(), st)
	return nil
}

func allocName() string {
	if allocKind == "" {
		return "heap"
	}
	return allocKind
}

// blockSize formats the byte size of n elements of T.
func blockSize[T any](n int) string {
	return humanize.IBytes(uint64(alloc.ByteSize[T](n)))
}
