package alloc

import (
	"sync"
	"unsafe"
)

// HeapAllocator allocates blocks from the Go heap. Every outstanding
// block is retained in a registry keyed by base address, so the garbage
// collector keeps it alive until Free even when nothing else references
// it. This makes pointers handed out by Malloc stable for the lifetime
// of the block.
type HeapAllocator struct {
	mu      sync.Mutex
	maxSize int
	blocks  map[uintptr][]byte
}

// NewHeap creates a Go-heap allocator.
func NewHeap(opts ...Option) *HeapAllocator {
	c := applyOptions(opts)
	return &HeapAllocator{
		maxSize: c.maxSize,
		blocks:  make(map[uintptr][]byte),
	}
}

// Malloc returns a pointer to a zeroed block of size bytes, or nil when
// size is negative or above the configured ceiling. A zero-byte request
// yields a distinct, freeable pointer.
func (h *HeapAllocator) Malloc(size int) unsafe.Pointer {
	if size < 0 || size > h.maxSize {
		return nil
	}
	n := size
	if n == 0 {
		n = 1
	}
	b := make([]byte, n)
	p := unsafe.Pointer(&b[0])

	h.mu.Lock()
	h.blocks[uintptr(p)] = b
	h.mu.Unlock()
	return p
}

// Free drops the block from the registry, releasing it to the garbage
// collector. Freeing nil or an unknown pointer is a no-op.
func (h *HeapAllocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	h.mu.Lock()
	delete(h.blocks, uintptr(p))
	h.mu.Unlock()
}

// MaxSize reports the configured request ceiling.
func (h *HeapAllocator) MaxSize() int {
	return h.maxSize
}

// Outstanding reports the number of blocks not yet freed.
func (h *HeapAllocator) Outstanding() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.blocks)
}

var _ Allocator = (*HeapAllocator)(nil)
