package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/vec/rawbuf"
)

// Clone returns a deep copy with independent storage: capacity equal to
// Len, elements produced by the Copy hook (plain assignment without one).
//
// Strong guarantee: on error no copy exists and the source is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{ops: v.ops, alloc: v.alloc}
	if v.size == 0 {
		return out, nil
	}
	data, err := rawbuf.NewIn(v.alloc, v.size)
	if err != nil {
		return nil, err
	}
	for i := range v.size {
		c, err := v.ops.copyElem(*v.data.At(i))
		if err != nil {
			for j := range i {
				v.ops.dropSlot(data.At(j))
			}
			data.Release()
			return nil, fmt.Errorf("vec: copy slot %d: %w", i, err)
		}
		*data.At(i) = c
	}
	out.data = data.Take()
	out.size = v.size
	return out, nil
}

// CopyFrom replaces the contents with a deep copy of src. Both vectors must
// use equivalent Ops.
//
// When src does not fit in the current capacity, a full copy is built aside
// and swapped in (strong guarantee; capacity becomes src.Len). Otherwise no
// reallocation happens: the common prefix is overwritten element by
// element, then surplus trailing elements are dropped (shrinking) or the
// additional trailing elements are copied in (growing). This in-place path
// is basic: on error the prefix copied so far keeps its new values and the
// length is unchanged, but every element is live and the vector is valid.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.data.Cap() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	common := min(v.size, src.size)
	for i := range common {
		c, err := v.ops.copyElem(*src.data.At(i))
		if err != nil {
			return fmt.Errorf("vec: copy slot %d: %w", i, err)
		}
		v.ops.dropSlot(v.data.At(i))
		*v.data.At(i) = c
	}

	switch {
	case src.size < v.size:
		v.dropRange(src.size, v.size)
	case src.size > v.size:
		for i := v.size; i < src.size; i++ {
			c, err := v.ops.copyElem(*src.data.At(i))
			if err != nil {
				v.dropRange(v.size, i)
				return fmt.Errorf("vec: copy slot %d: %w", i, err)
			}
			*v.data.At(i) = c
		}
	}
	v.size = src.size
	return nil
}

// MoveFrom replaces the contents with src's, leaving src empty (zero
// length, zero capacity). The previous contents are torn down first; the
// transfer itself is an O(1) swap and never fails.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.Swap(src)
}
