// Package omap provides an ordered key-value map whose nodes live in
// adapter-backed memory.
//
// # Overview
//
// Map[K, V] is a treap: a binary search tree ordered by key with
// heap-ordered random priorities keeping it balanced in expectation.
// The caller hands the map an adapter for its visible Entry[K, V] type;
// the map rebinds that adapter to its internal node type, exactly the
// way a library map rebinds the user's element allocator to its node
// allocator. Every node is a single-element allocation, constructed in
// place on insert and destroyed and returned on delete.
//
// # Iteration
//
// Ascend walks entries in ascending key order and stops early when the
// callback returns false. Mutating the map during a walk is not
// supported.
//
// # Teardown
//
// Clear destroys and returns every node. As with vectors, a map backed
// by a longer-lived allocator may simply be dropped when leak
// accounting is not needed.
//
// Maps are not safe for concurrent use.
package omap
