// Package adapt turns any alloc.Allocator into the element-typed
// memory-management strategy a generic container expects.
//
// # Overview
//
// Containers deal in elements; native allocators deal in bytes. An
// Adapter[T] sits between the two: it multiplies element counts by the
// element size on the way down and views the returned block as a typed
// slice on the way up. The adapter itself is a stateless, copyable value
// carrying nothing but the injected allocator reference — creating,
// copying, and rebinding adapters never touches the allocator.
//
// # Operations
//
//   - Allocate(n): raw storage for n elements, surfaced as []T
//   - Deallocate(s): release by base pointer; the element count is ignored
//   - MaxSize(): the most elements a single Allocate can request
//   - Construct(p, v) / Destroy(p): in-place element init and teardown
//   - Rebind[U](a): an adapter for element type U over the same allocator
//   - Equal / Same: interchangeability across adapters
//
// # Rebinding
//
// A container frequently stores something other than its user-visible
// element type — an ordered map rebinds from its entry type to its node
// type. Rebind produces the sibling adapter:
//
//	entries := adapt.New[Entry](mem)
//	nodes := adapt.Rebind[node](entries)
//
// Adapters bound to the same allocator compare equal regardless of
// element type, so storage allocated through one may be released through
// any other. Same reports this across element types.
//
// # Failure
//
// Allocate is the only operation that can fail; a rejected request
// surfaces ErrAllocFailure rather than a nil slice, so a container never
// mistakes exhaustion for storage. Everything else is non-failing, and
// an invalid pointer handed to Deallocate or Destroy is a caller error.
//
// # Liveness
//
// Adapter memory is not scanned by the garbage collector. References to
// adapter-backed memory are safe (the shipped allocators register their
// own blocks), but a pointer to an ordinary Go heap object stored in an
// element must also be held somewhere the collector can see.
package adapt
