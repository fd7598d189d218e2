// Package alloc defines the capability contract for byte-oriented native
// allocators and provides the implementations shipped with allockit.
//
// # Overview
//
// An Allocator hands out raw blocks sized in bytes and releases them by
// base pointer alone. It is the collaborator that adapt.Adapter delegates
// to: the adapter translates element-counted requests from containers
// into byte-counted requests against an Allocator.
//
// # Contract
//
// The interface is deliberately minimal:
//
//   - Malloc(size): returns a pointer to a block of at least size bytes,
//     or nil when the request cannot be satisfied
//   - Free(p): releases a block previously returned by Malloc
//   - MaxSize(): the largest single request Malloc supports
//
// Implementations track block sizes themselves. Free never receives a
// size, matching malloc/free semantics.
//
// # Implementations
//
// HeapAllocator: Go-heap-backed allocator
//
//   - Blocks come from make([]byte, n)
//   - Every outstanding block is retained in a registry keyed by base
//     address, so the garbage collector keeps it alive until Free
//   - Configurable request ceiling (WithMaxSize)
//
// MmapAllocator: anonymous-mapping allocator (unix builds)
//
//   - Blocks are private anonymous mappings from golang.org/x/sys/unix
//   - Requests are rounded up to whole pages
//   - On non-unix platforms NewMmap falls back to the Go heap
//
// TrackingAllocator: accounting decorator
//
//   - Wraps any Allocator and counts outstanding blocks and bytes
//   - AssertFreed reports every leaked block to a testing.T
//
// # Liveness
//
// Memory returned by an Allocator is not scanned by the garbage
// collector. Storing a pointer to an ordinary Go heap object inside an
// allocator block does not keep that object alive; callers must hold
// such references elsewhere. Blocks themselves stay valid until freed
// regardless of what references them, because each implementation keeps
// its own registry of live blocks.
//
// # Thread Safety
//
// HeapAllocator, MmapAllocator and TrackingAllocator are safe for
// concurrent use. The interface itself makes no promise; a custom
// implementation used from multiple goroutines must synchronize
// internally.
package alloc
