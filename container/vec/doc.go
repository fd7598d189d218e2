// Package vec provides a growable sequence whose elements live in
// adapter-backed memory rather than on the Go heap.
//
// # Overview
//
// Vector[T] is the dynamic-array counterpart to a standard slice, with
// all storage obtained through an adapt.Adapter. Growth allocates a
// larger block, copy-constructs the live elements across, and returns
// the old block — the only path memory ever takes is through the
// adapter.
//
// Byte vectors double as character sequences. FromString builds one
// from a Go string and String reads it back; FromUTF16LE and FromLatin1
// decode foreign encodings on the way in.
//
// # Teardown
//
// Release destroys the live elements and returns the backing block.
// A Vector whose allocator outlives it may also simply be dropped when
// leak accounting is not needed.
//
// Vectors are not safe for concurrent use.
package vec
