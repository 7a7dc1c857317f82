// Package vec implements a growable contiguous container over raw slot
// storage with explicit element lifecycle.
//
// # Overview
//
// A Vector owns a rawbuf.Buffer of reserved slots and a count of live
// elements within it. Slots [0, Len) hold live elements in sequence order;
// slots [Len, Cap) are zeroed raw storage. The vector never touches memory
// directly: all reservation and raw slot access goes through the buffer.
//
// Growth allocates a new buffer of twice the capacity (one slot when
// starting from empty), transfers the live elements into it, tears down the
// originals, and swaps buffers. Appends therefore cost amortized O(1).
//
// # Element Lifecycle
//
// Go has no constructors or destructors, so deep element types declare
// their lifecycle through an Ops table: value construction, deep copy,
// deep move, and teardown. Every hook is optional; plain value types need
// none of them and pay nothing. Dropped and moved-from slots are always
// zeroed so the collector can reclaim anything they referenced.
//
// # Failure Guarantees
//
// Mutating operations report allocator refusal and hook failures as errors,
// never panics. Operations that reallocate (Reserve, a growing PushBack or
// Insert, a reallocating CopyFrom) are strong: on error the vector is
// byte-for-byte in its prior state. In-place mutations are at least basic:
// the vector remains valid, with partial effects documented per method.
//
// # Positions and Invalidation
//
// Elements are addressed by index. A *T obtained from At, EmplaceBack, or
// an Iterator stays valid until the next capacity-changing operation, and
// until the next Insert or Erase at or before that element's index. The
// same rule governs Iterator validity.
//
// # Thread Safety
//
// Vectors have no internal synchronization. Callers sharing a vector across
// goroutines must provide external mutual exclusion.
//
// # Related Packages
//
//   - github.com/joshuapare/veckit/vec/rawbuf: raw slot storage and allocators
package vec
