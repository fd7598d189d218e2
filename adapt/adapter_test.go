package adapt_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/allockit/adapt"
	"github.com/joshuapare/allockit/alloc"
	"github.com/joshuapare/allockit/internal/testutil"
)

// TestAdapter_ByteTranslation tests that Allocate requests exactly
// n * sizeof(T) bytes from the underlying allocator.
func TestAdapter_ByteTranslation(t *testing.T) {
	rec := testutil.NewRecording()

	a64 := adapt.New[int64](rec)
	s, err := a64.Allocate(10)
	require.NoError(t, err)
	require.Len(t, s, 10)
	require.Equal(t, []int{80}, rec.Requests, "10 int64s should request 80 bytes")
	a64.Deallocate(s)

	type wide struct {
		a int64
		b int64
		c byte
		_ [7]byte
	}
	aw := adapt.New[wide](rec)
	ws, err := aw.Allocate(3)
	require.NoError(t, err)
	assert.Equal(t, 3*int(unsafe.Sizeof(wide{})), rec.Requests[1])
	aw.Deallocate(ws)

	assert.Len(t, rec.Frees, 2, "Each Allocate should be matched by one Free")
}

// TestAdapter_RoundTrip tests that Allocate followed by Deallocate
// leaves the outstanding count unchanged.
func TestAdapter_RoundTrip(t *testing.T) {
	ta := alloc.NewTracking(alloc.NewHeap())
	a := adapt.New[uint32](ta)

	before := ta.Outstanding()
	s, err := a.Allocate(16)
	require.NoError(t, err)
	assert.Equal(t, before+1, ta.Outstanding())

	a.Deallocate(s)
	assert.Equal(t, before, ta.Outstanding(), "Round trip should return the block")
	ta.AssertFreed(t)
}

// TestAdapter_MaxSize tests integer division of the byte ceiling by the
// element size.
func TestAdapter_MaxSize(t *testing.T) {
	mem := alloc.NewHeap(alloc.WithMaxSize(1000))

	assert.Equal(t, 1000, adapt.New[byte](mem).MaxSize())
	assert.Equal(t, 125, adapt.New[int64](mem).MaxSize())

	type odd struct {
		v [3]byte
	}
	assert.Equal(t, 333, adapt.New[odd](mem).MaxSize(), "Division rounds down")
}

// TestAdapter_RebindEquality tests that rebind-derived adapters compare
// equal to their source across element types.
func TestAdapter_RebindEquality(t *testing.T) {
	mem := alloc.NewHeap()

	ab := adapt.New[byte](mem)
	ai := adapt.Rebind[int64](ab)
	as := adapt.Rebind[string](ai)

	assert.True(t, adapt.Same(ab, ai), "Rebound adapter should compare equal to its source")
	assert.True(t, adapt.Same(ai, as))
	assert.True(t, adapt.Same(ab, as), "Equality should be transitive")
	assert.True(t, ab.Equal(adapt.New[byte](mem)))

	other := adapt.New[byte](alloc.NewHeap())
	assert.False(t, adapt.Same(ab, other), "Adapters over distinct allocators are not interchangeable")
}

// TestAdapter_RebindSharesStorage tests that storage allocated through
// one adapter may be released through a rebind-derived one.
func TestAdapter_RebindSharesStorage(t *testing.T) {
	ta := alloc.NewTracking(alloc.NewHeap())

	au := adapt.New[uint64](ta)
	s, err := au.Allocate(4)
	require.NoError(t, err)

	// Release through the sibling adapter, viewing the same block as bytes.
	ab := adapt.Rebind[byte](au)
	ab.Deallocate(unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), 32))
	ta.AssertFreed(t)
}

// TestAdapter_ConstructDestroy tests in-place initialization and
// teardown without storage release.
func TestAdapter_ConstructDestroy(t *testing.T) {
	ta := alloc.NewTracking(alloc.NewHeap())
	type payload struct {
		id   int
		name string
	}
	a := adapt.New[payload](ta)

	s, err := a.Allocate(1)
	require.NoError(t, err)
	p := &s[0]

	a.Construct(p, payload{id: 7, name: "seven"})
	assert.Equal(t, payload{id: 7, name: "seven"}, *p)

	a.Destroy(p)
	assert.Equal(t, payload{}, *p, "Destroy should reset to the zero value")
	assert.Equal(t, 1, ta.Outstanding(), "Destroy must not release storage")

	// Reconstruction at the same address sees no stale state.
	a.Construct(p, payload{id: 9})
	assert.Equal(t, payload{id: 9}, *p)

	a.Deallocate(s)
	ta.AssertFreed(t)
}

// TestAdapter_AllocationFailure tests that a rejected request surfaces
// ErrAllocFailure instead of a nil block.
func TestAdapter_AllocationFailure(t *testing.T) {
	a := adapt.New[int64](testutil.NewFailing(0))

	s, err := a.Allocate(8)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapt.ErrAllocFailure)
	assert.Nil(t, s)
}

// TestAdapter_FailureAfterBudget tests failure injection partway through
// a sequence of allocations.
func TestAdapter_FailureAfterBudget(t *testing.T) {
	a := adapt.New[byte](testutil.NewFailing(2))

	s1, err := a.Allocate(4)
	require.NoError(t, err)
	s2, err := a.Allocate(4)
	require.NoError(t, err)

	_, err = a.Allocate(4)
	assert.ErrorIs(t, err, adapt.ErrAllocFailure, "Third allocation should exhaust the budget")

	a.Deallocate(s1)
	a.Deallocate(s2)
}

// TestAdapter_EdgeCounts tests zero, negative, and overflowing element
// counts.
func TestAdapter_EdgeCounts(t *testing.T) {
	rec := testutil.NewRecording()
	a := adapt.New[int64](rec)

	s, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Empty(t, s)
	assert.Empty(t, rec.Requests, "Allocate(0) must not touch the allocator")

	_, err = a.Allocate(-1)
	assert.ErrorIs(t, err, adapt.ErrAllocFailure)

	_, err = a.Allocate(math.MaxInt/8 + 1)
	assert.ErrorIs(t, err, adapt.ErrAllocFailure, "Byte-size overflow should fail cleanly")
	assert.Empty(t, rec.Requests, "Rejected counts must not reach the allocator")

	a.Deallocate(nil)
	assert.Empty(t, rec.Frees, "Deallocating an empty slice is a no-op")
}

// TestAdapter_ZeroSizeElements tests adapters over zero-size element
// types.
func TestAdapter_ZeroSizeElements(t *testing.T) {
	rec := testutil.NewRecording()
	a := adapt.New[struct{}](rec)

	s, err := a.Allocate(100)
	require.NoError(t, err)
	assert.Len(t, s, 100)
	a.Deallocate(s)

	assert.Empty(t, rec.Requests, "Zero-size elements need no storage")
	assert.Equal(t, math.MaxInt, a.MaxSize(), "MaxSize should be unbounded")
}

// TestAdapter_Address tests trivial address access.
func TestAdapter_Address(t *testing.T) {
	a := adapt.New[int32](alloc.Default)

	s, err := a.Allocate(2)
	require.NoError(t, err)
	assert.Equal(t, unsafe.Pointer(&s[1]), a.Address(&s[1]))
	a.Deallocate(s)
}

// TestAdapter_BindingIsAllocationFree tests that construction, copying,
// and rebinding never call into the allocator.
func TestAdapter_BindingIsAllocationFree(t *testing.T) {
	rec := testutil.NewRecording()

	a := adapt.New[int](rec)
	b := a
	c := adapt.Rebind[float64](b)
	_ = c.Underlying()
	_ = a.Equal(b)

	assert.Empty(t, rec.Requests, "Binding operations must not allocate")
	assert.Empty(t, rec.Frees)
}
