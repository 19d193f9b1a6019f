package alloc

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentCountsTraffic(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	a := Instrument[int64](Heap[int64]{}, m)

	block := a.Allocate(4)
	block = a.Reallocate(block, 8)
	block = a.Reallocate(block, 16)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Allocations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Reallocations))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Frees))
	assert.Equal(t, 128.0, testutil.ToFloat64(m.LiveBytes))

	a.Free(block)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Frees))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LiveBytes))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNewMetricsNilRegisterer(t *testing.T) {
	m := NewMetrics(nil)
	a := Instrument[byte](Heap[byte]{}, m)
	a.Free(a.Allocate(3))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Frees))
}
