package vec

import (
	"math"

	"github.com/joshuapare/allockit/adapt"
)

// minCapacity is the smallest block a non-empty vector allocates.
const minCapacity = 8

// Vector is a growable sequence of T stored in adapter memory.
type Vector[T any] struct {
	a    adapt.Adapter[T]
	data []T
	n    int
}

// New creates an empty vector over a. No storage is allocated until the
// first append.
func New[T any](a adapt.Adapter[T]) *Vector[T] {
	return &Vector[T]{a: a}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the allocated element capacity.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// At returns the element at index i. Out-of-range indexes panic.
func (v *Vector[T]) At(i int) T {
	return v.data[:v.n][i]
}

// Set replaces the element at index i. Out-of-range indexes panic.
func (v *Vector[T]) Set(i int, x T) {
	v.data[:v.n][i] = x
}

// Slice returns a view over the live elements. The view is invalidated
// by any growth or Release.
func (v *Vector[T]) Slice() []T {
	return v.data[:v.n]
}

// Adapter returns the adapter the vector allocates through.
func (v *Vector[T]) Adapter() adapt.Adapter[T] {
	return v.a
}

// Append adds x at the end, growing if needed.
func (v *Vector[T]) Append(x T) error {
	if err := v.Reserve(v.n + 1); err != nil {
		return err
	}
	v.a.Construct(&v.data[v.n], x)
	v.n++
	return nil
}

// AppendSlice adds every element of xs at the end.
func (v *Vector[T]) AppendSlice(xs []T) error {
	if err := v.Reserve(v.n + len(xs)); err != nil {
		return err
	}
	for _, x := range xs {
		v.a.Construct(&v.data[v.n], x)
		v.n++
	}
	return nil
}

// Reserve grows the capacity to at least c elements. Existing elements
// are copy-constructed into the new block and the old block is returned
// to the allocator. Shrinking is not supported; a smaller c is a no-op.
func (v *Vector[T]) Reserve(c int) error {
	if c <= len(v.data) {
		return nil
	}
	newCap := len(v.data)
	if newCap < minCapacity {
		newCap = minCapacity
	}
	for newCap < c {
		if newCap > math.MaxInt/2 {
			newCap = c
			break
		}
		newCap *= 2
	}

	grown, err := v.a.Allocate(newCap)
	if err != nil {
		return err
	}
	for i := range v.n {
		v.a.Construct(&grown[i], v.data[i])
		v.a.Destroy(&v.data[i])
	}
	v.a.Deallocate(v.data)
	v.data = grown
	return nil
}

// Truncate drops elements from the end until n remain. The capacity is
// unchanged. Growing via Truncate is not possible; n at or above Len is
// a no-op.
func (v *Vector[T]) Truncate(n int) {
	if n < 0 || n >= v.n {
		return
	}
	for i := n; i < v.n; i++ {
		v.a.Destroy(&v.data[i])
	}
	v.n = n
}

// Release destroys the live elements and returns the backing block to
// the allocator. The vector is empty and reusable afterwards.
func (v *Vector[T]) Release() {
	for i := range v.n {
		v.a.Destroy(&v.data[i])
	}
	v.a.Deallocate(v.data)
	v.data = nil
	v.n = 0
}
