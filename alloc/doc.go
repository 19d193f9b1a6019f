// Package alloc provides the allocation engine behind rawvec containers.
//
// # Overview
//
// An Allocator hands out typed blocks ([]T with len == cap) and resizes or
// releases them. A block is owned by exactly one container at a time and is
// never aliased outside it. Allocators fault rather than fail: size
// overflow and backend errors panic with ErrCapacityOverflow or
// ErrAllocFailed, since every caller is a foundational data structure with
// no sensible recovery path.
//
// # Implementations
//
// Heap: Go heap storage, valid for every element type
//
//   - Allocate is make, Reallocate is make + copy
//   - Free zeroes the block so referenced objects become collectable
//
// OffHeap: modernc.org/memory backed storage for pointer-free elements
//
//   - Blocks live outside the Go heap and are invisible to the GC
//   - NewOffHeap rejects element types containing pointers
//   - Close releases everything the arena ever mapped
//
// Pages: anonymous page mappings (mmap/mremap) for pointer-free elements
//
//   - Region sizes are rounded up to whole pages
//   - Linux grows in place with mremap where the kernel allows it
//
// Instrument: wraps any Allocator with Prometheus counters
//
// # Usage Example
//
//	reg := prometheus.NewRegistry()
//	a := alloc.Instrument[float64](alloc.NewOffHeap[float64](), alloc.NewMetrics(reg))
//
//	block := a.Allocate(16)       // len(block) == 16
//	block = a.Reallocate(block, 32) // first 16 elements preserved
//	a.Free(block)
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally; a container and its allocator belong to one goroutine.
package alloc
