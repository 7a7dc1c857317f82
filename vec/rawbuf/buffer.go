package rawbuf

import (
	"github.com/joshuapare/veckit/internal/assert"
)

// Buffer owns a contiguous block of slots for up to Cap elements of type T.
//
// Slots hold raw storage only: the buffer never runs element lifecycle on
// them, and Release frees the block without looking at its contents. The
// invariant maintained is that the block is nil exactly when Cap is zero.
//
// The zero value is a valid empty buffer backed by the Heap allocator.
type Buffer[T any] struct {
	slots []T
	alloc Allocator[T]
}

// New reserves a buffer of n slots from the Heap allocator.
func New[T any](n int) (Buffer[T], error) {
	return NewIn[T](nil, n)
}

// NewIn reserves a buffer of n slots from a (Heap when nil). No slots are
// reserved when n is zero. An allocator failure propagates unchanged.
func NewIn[T any](a Allocator[T], n int) (Buffer[T], error) {
	if a == nil {
		a = Heap[T]{}
	}
	if n == 0 {
		return Buffer[T]{alloc: a}, nil
	}
	slots, err := a.Alloc(n)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{slots: slots, alloc: a}, nil
}

// Cap returns the number of slots reserved.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// At returns a pointer to slot i. The slot may hold raw storage rather than
// a live element; interpreting it is the owner's business.
//
// Precondition: 0 <= i < Cap. Violations are checked only in debug builds.
func (b *Buffer[T]) At(i int) *T {
	assert.Assert(i >= 0 && i < len(b.slots), "rawbuf: slot %d out of range (capacity %d)", i, len(b.slots))
	return &b.slots[i]
}

// Slots returns the window of slots [lo, hi). hi may equal Cap so callers
// can address the one-past-last region during transfers.
//
// Precondition: 0 <= lo <= hi <= Cap. Violations are checked only in debug
// builds.
func (b *Buffer[T]) Slots(lo, hi int) []T {
	assert.Assert(0 <= lo && lo <= hi && hi <= len(b.slots),
		"rawbuf: window [%d,%d) out of range (capacity %d)", lo, hi, len(b.slots))
	return b.slots[lo:hi]
}

// Swap exchanges storage and allocator with other in O(1). Never fails.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
	b.alloc, other.alloc = other.alloc, b.alloc
}

// Take transfers ownership of the block to the returned buffer, leaving b
// empty (nil block, zero capacity). b keeps its allocator so it remains
// usable.
func (b *Buffer[T]) Take() Buffer[T] {
	taken := Buffer[T]{slots: b.slots, alloc: b.alloc}
	b.slots = nil
	return taken
}

// Release returns the block to the allocator and resets the buffer to the
// empty state. Element teardown never happens here; owners must have
// cleared live slots first. Releasing an empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	if b.slots == nil {
		return
	}
	b.alloc.Free(b.slots)
	b.slots = nil
}
