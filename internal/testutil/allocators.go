// Package testutil provides allocator test doubles shared across the
// allockit test suites.
package testutil

import (
	"unsafe"

	"github.com/joshuapare/allockit/alloc"
)

// RecordingAllocator delegates to a backing allocator while recording
// the byte size of every Malloc request and every Free. Tests use it to
// verify exact element-to-byte translation.
type RecordingAllocator struct {
	Backing  alloc.Allocator
	Requests []int
	Frees    []unsafe.Pointer
}

// NewRecording creates a RecordingAllocator over a fresh heap allocator.
func NewRecording() *RecordingAllocator {
	return &RecordingAllocator{Backing: alloc.NewHeap()}
}

func (r *RecordingAllocator) Malloc(size int) unsafe.Pointer {
	r.Requests = append(r.Requests, size)
	return r.Backing.Malloc(size)
}

func (r *RecordingAllocator) Free(p unsafe.Pointer) {
	r.Frees = append(r.Frees, p)
	r.Backing.Free(p)
}

func (r *RecordingAllocator) MaxSize() int {
	return r.Backing.MaxSize()
}

// FailingAllocator rejects every Malloc once its budget of successes is
// spent. A zero budget rejects the first request.
type FailingAllocator struct {
	Backing alloc.Allocator
	Budget  int
}

// NewFailing creates a FailingAllocator over a fresh heap allocator.
func NewFailing(budget int) *FailingAllocator {
	return &FailingAllocator{Backing: alloc.NewHeap(), Budget: budget}
}

func (f *FailingAllocator) Malloc(size int) unsafe.Pointer {
	if f.Budget <= 0 {
		return nil
	}
	f.Budget--
	return f.Backing.Malloc(size)
}

func (f *FailingAllocator) Free(p unsafe.Pointer) {
	f.Backing.Free(p)
}

func (f *FailingAllocator) MaxSize() int {
	return f.Backing.MaxSize()
}

var (
	_ alloc.Allocator = (*RecordingAllocator)(nil)
	_ alloc.Allocator = (*FailingAllocator)(nil)
)
