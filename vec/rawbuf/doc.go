// Package rawbuf provides raw slot storage for contiguous containers.
//
// # Overview
//
// A Buffer owns a block of slots reserved for up to Cap elements of type T.
// The buffer only manages the storage itself: it never constructs, copies,
// or drops elements. The owner of the buffer decides which slots are live
// and is responsible for clearing them; rawbuf's only contract is that a
// freshly allocated block is fully zeroed.
//
// # Allocator Interface
//
// Storage comes from an Allocator:
//
//   - Alloc(n): reserve n zeroed slots, or fail with ErrNoSpace
//   - Free(slots): return a previously allocated block
//
// Implementations:
//
//   - Heap: Go runtime allocation; Free is a no-op (the GC reclaims)
//   - Limit: wraps another allocator with a slot budget, for exercising
//     out-of-memory paths deterministically
//   - Mmap: anonymous memory-mapped pages outside the Go heap, for
//     pointer-free element types (unix only; heap-backed elsewhere)
//
// # Ownership
//
// Exactly one Buffer owns a given block at any time. Ownership moves only
// through Take (leaves the source empty) or Swap. A Buffer must not be
// copied by assignment; pass it by pointer.
//
// # Thread Safety
//
// Buffers and allocators are not thread-safe. Callers must synchronize
// access externally.
package rawbuf
