package alloc

import (
	"sync"
	"unsafe"
)

// TrackingAllocator wraps another Allocator and accounts for every block
// it hands out: outstanding block and byte counts, lifetime totals, the
// high-water mark, and frees of pointers it never allocated. It is the
// tool for verifying that an adapter-backed container returns every byte
// it took.
type TrackingAllocator struct {
	mem Allocator

	mu           sync.Mutex
	sizes        map[uintptr]int
	outstanding  int
	bytes        int
	peakBytes    int
	totalAllocs  int
	totalFrees   int
	failedAllocs int
	badFrees     int
}

// NewTracking wraps mem with accounting.
func NewTracking(mem Allocator) *TrackingAllocator {
	return &TrackingAllocator{
		mem:   mem,
		sizes: make(map[uintptr]int),
	}
}

// Malloc delegates to the wrapped allocator and records the block.
func (t *TrackingAllocator) Malloc(size int) unsafe.Pointer {
	p := t.mem.Malloc(size)

	t.mu.Lock()
	defer t.mu.Unlock()
	if p == nil {
		t.failedAllocs++
		return nil
	}
	t.sizes[uintptr(p)] = size
	t.outstanding++
	t.bytes += size
	t.totalAllocs++
	if t.bytes > t.peakBytes {
		t.peakBytes = t.bytes
	}
	return p
}

// Free records the release and delegates to the wrapped allocator. A
// pointer with no matching Malloc is counted as a bad free and not
// forwarded.
func (t *TrackingAllocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	t.mu.Lock()
	size, ok := t.sizes[uintptr(p)]
	if !ok {
		t.badFrees++
		t.mu.Unlock()
		return
	}
	delete(t.sizes, uintptr(p))
	t.outstanding--
	t.bytes -= size
	t.totalFrees++
	t.mu.Unlock()

	t.mem.Free(p)
}

// MaxSize delegates to the wrapped allocator.
func (t *TrackingAllocator) MaxSize() int {
	return t.mem.MaxSize()
}

// Outstanding reports the number of blocks allocated and not yet freed.
func (t *TrackingAllocator) Outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outstanding
}

// OutstandingBytes reports the byte total of outstanding blocks, using
// the sizes originally requested.
func (t *TrackingAllocator) OutstandingBytes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bytes
}

// PeakBytes reports the highest OutstandingBytes observed.
func (t *TrackingAllocator) PeakBytes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.peakBytes
}

// TotalAllocs reports the lifetime number of successful Malloc calls.
func (t *TrackingAllocator) TotalAllocs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalAllocs
}

// TotalFrees reports the lifetime number of matched Free calls.
func (t *TrackingAllocator) TotalFrees() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalFrees
}

// FailedAllocs reports the number of Malloc calls the wrapped allocator
// rejected.
func (t *TrackingAllocator) FailedAllocs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failedAllocs
}

// BadFrees reports the number of Free calls with no matching Malloc.
func (t *TrackingAllocator) BadFrees() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.badFrees
}

// TestingT is the subset of testing.T that AssertFreed needs.
type TestingT interface {
	Errorf(format string, args ...any)
	Helper()
}

// AssertFreed fails the test when any block is still outstanding or any
// bad free was observed.
func (t *TrackingAllocator) AssertFreed(tt TestingT) {
	tt.Helper()
	t.mu.Lock()
	defer t.mu.Unlock()
	for ptr, size := range t.sizes {
		tt.Errorf("leak of %d bytes at %#x", size, ptr)
	}
	if t.badFrees != 0 {
		tt.Errorf("%d free(s) of unknown pointers", t.badFrees)
	}
}

var _ Allocator = (*TrackingAllocator)(nil)
