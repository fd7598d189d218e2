package omap

import (
	"cmp"
	"math/rand/v2"
	"unsafe"

	"github.com/joshuapare/allockit/adapt"
)

// Entry is the user-visible element type of a Map.
type Entry[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// node is the internal storage type. The map rebinds the caller's Entry
// adapter to this type for all node allocations.
type node[K cmp.Ordered, V any] struct {
	key   K
	val   V
	prio  uint32
	left  *node[K, V]
	right *node[K, V]
}

// Map is an adapter-backed ordered map.
type Map[K cmp.Ordered, V any] struct {
	entries adapt.Adapter[Entry[K, V]]
	nodes   adapt.Adapter[node[K, V]]
	root    *node[K, V]
	size    int
	rng     *rand.Rand
}

// New creates an empty map allocating through a. Construction performs
// no allocation; the first node is allocated on the first Set. Each map
// draws node priorities from its own PRNG, so distinct maps share no
// state.
func New[K cmp.Ordered, V any](a adapt.Adapter[Entry[K, V]]) *Map[K, V] {
	return &Map[K, V]{
		entries: a,
		nodes:   adapt.Rebind[node[K, V]](a),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Adapter returns the Entry adapter the map was created with. It
// compares equal to the internal node adapter.
func (m *Map[K, V]) Adapter() adapt.Adapter[Entry[K, V]] {
	return m.entries
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	cur := m.root
	for cur != nil {
		switch {
		case k < cur.key:
			cur = cur.left
		case k > cur.key:
			cur = cur.right
		default:
			return cur.val, true
		}
	}
	var zero V
	return zero, false
}

// Set stores v under k, replacing any existing value. The only possible
// error is allocation failure for a new node.
func (m *Map[K, V]) Set(k K, v V) error {
	root, added, err := m.insert(m.root, k, v)
	if err != nil {
		return err
	}
	m.root = root
	if added {
		m.size++
	}
	return nil
}

// Delete removes the entry under k, destroying and returning its node.
// It reports whether an entry was removed.
func (m *Map[K, V]) Delete(k K) bool {
	root, removed := m.remove(m.root, k)
	m.root = root
	if removed {
		m.size--
	}
	return removed
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (Entry[K, V], bool) {
	if m.root == nil {
		return Entry[K, V]{}, false
	}
	cur := m.root
	for cur.left != nil {
		cur = cur.left
	}
	return Entry[K, V]{Key: cur.key, Val: cur.val}, true
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (Entry[K, V], bool) {
	if m.root == nil {
		return Entry[K, V]{}, false
	}
	cur := m.root
	for cur.right != nil {
		cur = cur.right
	}
	return Entry[K, V]{Key: cur.key, Val: cur.val}, true
}

// Ascend walks entries in ascending key order until fn returns false.
func (m *Map[K, V]) Ascend(fn func(K, V) bool) {
	m.walk(m.root, fn)
}

// Entries returns all entries in ascending key order as an ordinary Go
// slice.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.size)
	m.Ascend(func(k K, v V) bool {
		out = append(out, Entry[K, V]{Key: k, Val: v})
		return true
	})
	return out
}

// Clear destroys every node and returns its storage. The map is empty
// and reusable afterwards.
func (m *Map[K, V]) Clear() {
	m.drop(m.root)
	m.root = nil
	m.size = 0
}

func (m *Map[K, V]) walk(n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !m.walk(n.left, fn) {
		return false
	}
	if !fn(n.key, n.val) {
		return false
	}
	return m.walk(n.right, fn)
}

func (m *Map[K, V]) insert(cur *node[K, V], k K, v V) (*node[K, V], bool, error) {
	if cur == nil {
		n, err := m.newNode(k, v)
		if err != nil {
			return nil, false, err
		}
		return n, true, nil
	}
	switch {
	case k < cur.key:
		child, added, err := m.insert(cur.left, k, v)
		if err != nil {
			return cur, false, err
		}
		cur.left = child
		if child.prio > cur.prio {
			cur = rotateRight(cur)
		}
		return cur, added, nil
	case k > cur.key:
		child, added, err := m.insert(cur.right, k, v)
		if err != nil {
			return cur, false, err
		}
		cur.right = child
		if child.prio > cur.prio {
			cur = rotateLeft(cur)
		}
		return cur, added, nil
	default:
		cur.val = v
		return cur, false, nil
	}
}

func (m *Map[K, V]) remove(cur *node[K, V], k K) (*node[K, V], bool) {
	if cur == nil {
		return nil, false
	}
	switch {
	case k < cur.key:
		child, removed := m.remove(cur.left, k)
		cur.left = child
		return cur, removed
	case k > cur.key:
		child, removed := m.remove(cur.right, k)
		cur.right = child
		return cur, removed
	default:
		return m.sink(cur), true
	}
}

// sink rotates the doomed node down until a child slot opens, then frees
// it. Rotating toward the higher-priority child preserves the heap
// property along the way.
func (m *Map[K, V]) sink(n *node[K, V]) *node[K, V] {
	switch {
	case n.left == nil && n.right == nil:
		m.freeNode(n)
		return nil
	case n.left == nil:
		repl := n.right
		m.freeNode(n)
		return repl
	case n.right == nil:
		repl := n.left
		m.freeNode(n)
		return repl
	case n.left.prio > n.right.prio:
		top := rotateRight(n)
		top.right = m.sink(n)
		return top
	default:
		top := rotateLeft(n)
		top.left = m.sink(n)
		return top
	}
}

func (m *Map[K, V]) drop(n *node[K, V]) {
	if n == nil {
		return
	}
	m.drop(n.left)
	m.drop(n.right)
	m.freeNode(n)
}

func (m *Map[K, V]) newNode(k K, v V) (*node[K, V], error) {
	s, err := m.nodes.Allocate(1)
	if err != nil {
		return nil, err
	}
	n := &s[0]
	m.nodes.Construct(n, node[K, V]{key: k, val: v, prio: m.rng.Uint32()})
	return n, nil
}

func (m *Map[K, V]) freeNode(n *node[K, V]) {
	m.nodes.Destroy(n)
	m.nodes.Deallocate(unsafe.Slice(n, 1))
}

func rotateRight[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	top := n.left
	n.left = top.right
	top.right = n
	return top
}

func rotateLeft[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	top := n.right
	n.right = top.left
	top.left = n
	return top
}
