package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrackingAllocator_Counters tests outstanding and lifetime counters
// across an allocate/free round trip.
func TestTrackingAllocator_Counters(t *testing.T) {
	ta := NewTracking(NewHeap())

	before := ta.Outstanding()
	p := ta.Malloc(100)
	require.NotNil(t, p)
	assert.Equal(t, before+1, ta.Outstanding())
	assert.Equal(t, 100, ta.OutstandingBytes())
	assert.Equal(t, 100, ta.PeakBytes())

	ta.Free(p)
	assert.Equal(t, before, ta.Outstanding(), "Round trip should leave outstanding unchanged")
	assert.Zero(t, ta.OutstandingBytes())
	assert.Equal(t, 100, ta.PeakBytes(), "Peak is not reset by Free")
	assert.Equal(t, 1, ta.TotalAllocs())
	assert.Equal(t, 1, ta.TotalFrees())
}

// TestTrackingAllocator_Peak tests the high-water mark over interleaved
// allocations.
func TestTrackingAllocator_Peak(t *testing.T) {
	ta := NewTracking(NewHeap())

	p1 := ta.Malloc(64)
	p2 := ta.Malloc(64)
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	assert.Equal(t, 128, ta.PeakBytes())

	ta.Free(p1)
	p3 := ta.Malloc(32)
	require.NotNil(t, p3)
	assert.Equal(t, 128, ta.PeakBytes(), "Peak should survive the dip to 96 bytes")

	ta.Free(p2)
	ta.Free(p3)
	ta.AssertFreed(t)
}

// TestTrackingAllocator_BadFree tests accounting of frees with no
// matching allocation.
func TestTrackingAllocator_BadFree(t *testing.T) {
	ta := NewTracking(NewHeap())

	var local byte
	ta.Free(unsafe.Pointer(&local))
	assert.Equal(t, 1, ta.BadFrees())
	assert.Zero(t, ta.TotalFrees())

	ta.Free(nil)
	assert.Equal(t, 1, ta.BadFrees(), "Freeing nil is not a bad free")
}

// TestTrackingAllocator_FailedAllocs tests that rejected requests are
// counted but not tracked.
func TestTrackingAllocator_FailedAllocs(t *testing.T) {
	ta := NewTracking(NewHeap(WithMaxSize(16)))

	assert.Nil(t, ta.Malloc(32))
	assert.Equal(t, 1, ta.FailedAllocs())
	assert.Zero(t, ta.Outstanding())
	ta.AssertFreed(t)
}

// TestTrackingAllocator_AssertFreedReportsLeaks tests leak reporting
// through the TestingT seam.
func TestTrackingAllocator_AssertFreedReportsLeaks(t *testing.T) {
	ta := NewTracking(NewHeap())

	p := ta.Malloc(48)
	require.NotNil(t, p)

	rec := &recordingT{}
	ta.AssertFreed(rec)
	assert.Len(t, rec.errors, 1, "One leak should be reported")

	ta.Free(p)
	rec = &recordingT{}
	ta.AssertFreed(rec)
	assert.Empty(t, rec.errors, "No leaks after the block is freed")
}

// recordingT captures AssertFreed failures instead of failing the test.
type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, format)
}

func (r *recordingT) Helper() {}
