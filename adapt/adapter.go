package adapt

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/allockit/alloc"
)

// Adapter translates element-counted storage requests for T into
// byte-counted requests against the bound allocator. The zero Adapter is
// not usable; construct one with New.
type Adapter[T any] struct {
	mem alloc.Allocator
}

// New binds an adapter for element type T to mem. Binding performs no
// allocation.
func New[T any](mem alloc.Allocator) Adapter[T] {
	return Adapter[T]{mem: mem}
}

// Rebind derives an adapter for element type U bound to the same
// allocator as a. Containers use this when their internal storage type
// differs from the user-visible element type.
func Rebind[U, T any](a Adapter[T]) Adapter[U] {
	return Adapter[U]{mem: a.mem}
}

// Same reports whether two adapters, of any element types, are bound to
// the same allocator and therefore interchangeable: storage allocated
// through one may be released through the other.
func Same[T, U any](a Adapter[T], b Adapter[U]) bool {
	return a.mem == b.mem
}

// Allocate requests raw storage for n elements, exactly n times the
// element size in bytes, and returns it as a slice of length n. The
// elements are uninitialized storage in the container sense; use
// Construct before treating one as a live value. A request the
// allocator rejects, a negative count, and a byte size that overflows
// all surface ErrAllocFailure.
//
// Allocate(0) returns an empty slice without touching the allocator.
func (a Adapter[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrAllocFailure, n)
	}
	if n == 0 {
		return []T{}, nil
	}
	size := sizeOf[T]()
	if size == 0 {
		// Zero-size elements occupy no storage.
		return make([]T, n), nil
	}
	if n > math.MaxInt/size {
		return nil, fmt.Errorf("%w: %d elements of %d bytes overflows", ErrAllocFailure, n, size)
	}
	p := a.mem.Malloc(n * size)
	if p == nil {
		return nil, fmt.Errorf("%w: %d bytes (%d elements)", ErrAllocFailure, n*size, n)
	}
	return unsafe.Slice((*T)(p), n), nil
}

// Deallocate releases storage previously returned by Allocate on any
// adapter bound to the same allocator. Only the base pointer is
// forwarded; the element count carried by the slice is ignored, since
// the allocator tracks block sizes itself. Deallocating a nil or empty
// slice is a no-op.
func (a Adapter[T]) Deallocate(s []T) {
	if len(s) == 0 || sizeOf[T]() == 0 {
		return
	}
	a.mem.Free(unsafe.Pointer(&s[0]))
}

// MaxSize reports the largest element count a single Allocate call could
// request: the allocator's byte ceiling divided by the element size,
// rounded down.
func (a Adapter[T]) MaxSize() int {
	size := sizeOf[T]()
	if size == 0 {
		return math.MaxInt
	}
	return a.mem.MaxSize() / size
}

// Construct copy-initializes the storage at p from v. No allocation
// takes place.
func (a Adapter[T]) Construct(p *T, v T) {
	*p = v
}

// Destroy resets the element at p to the zero value, dropping any
// references it held, without releasing its storage. The storage may be
// re-Constructed afterwards.
func (a Adapter[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Address returns the address of the element as a raw pointer.
func (a Adapter[T]) Address(x *T) unsafe.Pointer {
	return unsafe.Pointer(x)
}

// Underlying returns the bound allocator.
func (a Adapter[T]) Underlying() alloc.Allocator {
	return a.mem
}

// Equal reports whether the two adapters are bound to the same
// allocator. See Same for the cross-element-type form.
func (a Adapter[T]) Equal(b Adapter[T]) bool {
	return a.mem == b.mem
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
