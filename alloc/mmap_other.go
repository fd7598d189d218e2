//go:build !unix

package alloc

// MmapAllocator falls back to the Go heap on platforms without anonymous
// mappings. The behavior matches HeapAllocator exactly; page rounding is
// not applied.
type MmapAllocator struct {
	*HeapAllocator
}

// NewMmap creates the fallback allocator.
func NewMmap(opts ...Option) *MmapAllocator {
	return &MmapAllocator{HeapAllocator: NewHeap(opts...)}
}
