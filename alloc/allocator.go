package alloc

import "unsafe"

// Allocator is the capability contract a native allocator must satisfy
// to back an adapter. Blocks are requested in bytes and released by base
// pointer; the implementation tracks block sizes itself.
type Allocator interface {
	// Malloc returns a pointer to a block of at least size bytes, or nil
	// when the request cannot be satisfied.
	Malloc(size int) unsafe.Pointer

	// Free releases a block previously returned by Malloc. Freeing nil is
	// a no-op. Passing any other pointer that did not come from Malloc is
	// a caller error.
	Free(p unsafe.Pointer)

	// MaxSize reports the largest size a single Malloc call supports.
	MaxSize() int
}

// Default is a process-wide Go-heap allocator, usable anywhere an
// Allocator is required. It is safe for concurrent use and has no
// teardown requirement.
var Default Allocator = NewHeap()
