package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/assert"
	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/vec/rawbuf"
)

// Vector is a growable contiguous sequence of T. See the package
// documentation for the live-range invariant and failure guarantees.
type Vector[T any] struct {
	data  rawbuf.Buffer[T]
	size  int
	ops   Ops[T]
	alloc rawbuf.Allocator[T]
}

// New returns an empty vector for a plain value type: no lifecycle hooks,
// heap-backed storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewOps returns an empty vector whose elements live through ops.
func NewOps[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops}
}

// NewIn returns an empty vector drawing slot storage from a (heap when nil).
func NewIn[T any](a rawbuf.Allocator[T], ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops, alloc: a}
}

// NewSize returns a vector of n value-constructed elements.
func NewSize[T any](n int) (*Vector[T], error) {
	v := New[T]()
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Move constructs a vector that steals src's storage in O(1), leaving src
// empty (zero length, zero capacity).
func Move[T any](src *Vector[T]) *Vector[T] {
	out := &Vector[T]{
		data:  src.data.Take(),
		size:  src.size,
		ops:   src.ops,
		alloc: src.alloc,
	}
	src.size = 0
	return out
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of reserved slots.
func (v *Vector[T]) Cap() int { return v.data.Cap() }

// At returns a pointer to element i. The pointer follows the invalidation
// rules in the package documentation.
//
// Precondition: 0 <= i < Len. Violations are checked only in debug builds.
func (v *Vector[T]) At(i int) *T {
	assert.Assert(i >= 0 && i < v.size, "vec: index %d out of range (len %d)", i, v.size)
	return v.data.At(i)
}

// Swap exchanges contents with other in O(1). Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
	v.alloc, other.alloc = other.alloc, v.alloc
}

// Release drops every live element and returns the slot storage to the
// allocator, leaving the vector empty with zero capacity. The vector
// remains usable afterwards.
func (v *Vector[T]) Release() {
	v.dropRange(0, v.size)
	v.size = 0
	v.data.Release()
}

// Reserve ensures capacity for at least n elements. It is a no-op when n
// does not exceed the current capacity; otherwise it reallocates to exactly
// n slots and transfers the live elements.
//
// Strong guarantee: on error the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	newData, err := rawbuf.NewIn(v.alloc, n)
	if err != nil {
		return err
	}
	if err := v.transfer(&newData, 0, v.size, 0); err != nil {
		newData.Release()
		return err
	}
	v.dropOriginals(0, v.size)
	v.data.Swap(&newData)
	newData.Release()
	return nil
}

// Resize changes the live count to n. Shrinking drops the trailing
// elements; growing reserves capacity and value-constructs the new
// trailing elements.
//
// Basic guarantee: if a construction fails, the elements constructed so
// far are torn down and the length is unchanged (capacity may have grown).
func (v *Vector[T]) Resize(n int) error {
	assert.Assert(n >= 0, "vec: negative size %d", n)
	switch {
	case n < v.size:
		v.dropRange(n, v.size)
		v.size = n
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			e, err := v.ops.newElem()
			if err != nil {
				v.dropRange(v.size, i)
				return fmt.Errorf("vec: construct slot %d: %w", i, err)
			}
			*v.data.At(i) = e
		}
		v.size = n
	}
	return nil
}

// dropRange tears down the live elements in [lo, hi).
func (v *Vector[T]) dropRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		v.ops.dropSlot(v.data.At(i))
	}
}

// transfer places the elements [lo, hi) into dst starting at slot dstLo,
// moving or copying per the ops transfer strategy. On a copy failure the
// elements already placed in dst are torn down and the sources are left
// intact, so the caller can discard dst and report the error.
func (v *Vector[T]) transfer(dst *rawbuf.Buffer[T], lo, hi, dstLo int) error {
	if v.ops.moveTransfer() {
		for i := lo; i < hi; i++ {
			*dst.At(dstLo + i - lo) = v.ops.moveElem(v.data.At(i))
		}
		return nil
	}
	for i := lo; i < hi; i++ {
		c, err := v.ops.Copy(*v.data.At(i))
		if err != nil {
			for j := dstLo; j < dstLo+i-lo; j++ {
				v.ops.dropSlot(dst.At(j))
			}
			return fmt.Errorf("vec: copy slot %d: %w", i, err)
		}
		*dst.At(dstLo + i - lo) = c
	}
	return nil
}

// dropOriginals clears the source range after a successful transfer. Moved
// slots are already zeroed; copied slots still hold live originals that
// must be torn down before the old buffer is released.
func (v *Vector[T]) dropOriginals(lo, hi int) {
	if v.ops.moveTransfer() {
		return
	}
	v.dropRange(lo, hi)
}

// grown reserves the next buffer in the doubling sequence.
func (v *Vector[T]) grown() (rawbuf.Buffer[T], error) {
	return rawbuf.NewIn(v.alloc, buf.GrowCap(v.data.Cap()))
}
