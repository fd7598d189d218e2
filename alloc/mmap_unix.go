//go:build unix

package alloc

import (
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapAllocator allocates blocks as private anonymous mappings. Requests
// are rounded up to whole pages, so small allocations are wasteful; it
// is intended for allocators backing large or long-lived containers
// where page-granular accounting is acceptable.
type MmapAllocator struct {
	mu       sync.Mutex
	maxSize  int
	pageSize int
	mappings map[uintptr][]byte
}

// NewMmap creates an anonymous-mapping allocator.
func NewMmap(opts ...Option) *MmapAllocator {
	c := applyOptions(opts)
	return &MmapAllocator{
		maxSize:  c.maxSize,
		pageSize: os.Getpagesize(),
		mappings: make(map[uintptr][]byte),
	}
}

// Malloc maps size bytes (rounded up to a page multiple) and returns the
// base address, or nil when the request is out of range or the mapping
// fails.
func (m *MmapAllocator) Malloc(size int) unsafe.Pointer {
	if size < 0 || size > m.maxSize {
		return nil
	}
	length := m.roundUp(size)
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	p := unsafe.Pointer(&data[0])

	m.mu.Lock()
	m.mappings[uintptr(p)] = data
	m.mu.Unlock()
	return p
}

// Free unmaps the block. Freeing nil or an unknown pointer is a no-op;
// an unmap failure leaves the registry entry removed either way since
// the pointer must not be reused.
func (m *MmapAllocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	m.mu.Lock()
	data, ok := m.mappings[uintptr(p)]
	delete(m.mappings, uintptr(p))
	m.mu.Unlock()
	if !ok {
		return
	}
	_ = unix.Munmap(data)
}

// MaxSize reports the configured request ceiling.
func (m *MmapAllocator) MaxSize() int {
	return m.maxSize
}

// Outstanding reports the number of mappings not yet freed.
func (m *MmapAllocator) Outstanding() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.mappings)
}

func (m *MmapAllocator) roundUp(size int) int {
	if size == 0 {
		return m.pageSize
	}
	return (size + m.pageSize - 1) &^ (m.pageSize - 1)
}

var _ Allocator = (*MmapAllocator)(nil)
