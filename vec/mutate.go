package vec

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/assert"
)

// PushBack appends val. When the vector is full it grows to twice the
// capacity (one slot when empty); val is placed in the new buffer before
// any existing element is transferred.
//
// Strong guarantee: on error the vector is unchanged.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.EmplaceBack(func() (T, error) { return val, nil })
	return err
}

// EmplaceBack appends an element produced by ctor and returns a pointer to
// it, subject to the usual invalidation rules.
//
// Strong guarantee when growing. In the non-growing case a ctor failure
// leaves the length unchanged (basic guarantee).
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if v.size == v.data.Cap() {
		if err := v.appendGrow(ctor); err != nil {
			return nil, err
		}
	} else {
		e, err := ctor()
		if err != nil {
			return nil, fmt.Errorf("vec: construct element: %w", err)
		}
		*v.data.At(v.size) = e
		v.size++
	}
	return v.data.At(v.size - 1), nil
}

// PopBack drops the last element.
//
// Precondition: Len > 0. Violations are checked only in debug builds.
func (v *Vector[T]) PopBack() {
	assert.Assert(v.size > 0, "vec: PopBack on empty vector")
	v.size--
	v.ops.dropSlot(v.data.At(v.size))
}

// Insert places val before position i, shifting elements [i, Len) one slot
// right. Position Len appends.
//
// Precondition: 0 <= i <= Len. Strong guarantee when growing; see Emplace
// for the in-place case.
func (v *Vector[T]) Insert(i int, val T) error {
	_, err := v.Emplace(i, func() (T, error) { return val, nil })
	return err
}

// Emplace constructs an element via ctor before position i and returns a
// pointer to it.
//
// When growing, the new element is constructed into the new buffer before
// any transfer, so on error the vector is unchanged (strong guarantee).
// In place, ctor runs into a temporary before any element is disturbed;
// since element moves cannot fail, a ctor failure also leaves the vector
// unchanged.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	assert.Assert(i >= 0 && i <= v.size, "vec: insert position %d out of range (len %d)", i, v.size)
	if v.size == v.data.Cap() {
		if err := v.emplaceGrow(i, ctor); err != nil {
			return nil, err
		}
	} else if err := v.emplaceInPlace(i, ctor); err != nil {
		return nil, err
	}
	return v.data.At(i), nil
}

// Erase removes element i, shifting elements (i, Len) one slot left by
// move-assignment and zeroing the vacated last slot. Never fails.
//
// Precondition: 0 <= i < Len. Violations are checked only in debug builds.
func (v *Vector[T]) Erase(i int) {
	assert.Assert(i >= 0 && i < v.size, "vec: erase position %d out of range (len %d)", i, v.size)
	v.ops.dropSlot(v.data.At(i))
	for j := i; j < v.size-1; j++ {
		*v.data.At(j) = v.ops.moveElem(v.data.At(j + 1))
	}
	v.size--
}

// appendGrow reallocates and appends in the strong-guarantee order:
// construct the new element into the new buffer, transfer the existing
// elements, tear down the originals, swap buffers.
func (v *Vector[T]) appendGrow(ctor func() (T, error)) error {
	newData, err := v.grown()
	if err != nil {
		return err
	}
	e, err := ctor()
	if err != nil {
		newData.Release()
		return fmt.Errorf("vec: construct element: %w", err)
	}
	*newData.At(v.size) = e
	if err := v.transfer(&newData, 0, v.size, 0); err != nil {
		v.ops.dropSlot(newData.At(v.size))
		newData.Release()
		return err
	}
	v.dropOriginals(0, v.size)
	v.data.Swap(&newData)
	newData.Release()
	v.size++
	return nil
}

// emplaceGrow reallocates with the new element at slot i, the prefix
// [0, i) before it and the suffix [i, size) after it. A failure in either
// transfer phase tears down everything placed in the new buffer and
// reports the error with the original elements intact.
func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) error {
	newData, err := v.grown()
	if err != nil {
		return err
	}
	e, err := ctor()
	if err != nil {
		newData.Release()
		return fmt.Errorf("vec: construct element: %w", err)
	}
	*newData.At(i) = e

	if err := v.transfer(&newData, 0, i, 0); err != nil {
		v.ops.dropSlot(newData.At(i))
		newData.Release()
		return err
	}
	if err := v.transfer(&newData, i, v.size, i+1); err != nil {
		for j := range i {
			v.ops.dropSlot(newData.At(j))
		}
		v.ops.dropSlot(newData.At(i))
		newData.Release()
		return err
	}

	v.dropOriginals(0, v.size)
	v.data.Swap(&newData)
	newData.Release()
	v.size++
	return nil
}

// emplaceInPlace inserts without reallocating: construct into a temporary,
// move the last element into the one-past-end slot, shift [i, size-1)
// right, then place the temporary into the vacated slot.
func (v *Vector[T]) emplaceInPlace(i int, ctor func() (T, error)) error {
	tmp, err := ctor()
	if err != nil {
		return fmt.Errorf("vec: construct element: %w", err)
	}
	if i == v.size {
		*v.data.At(v.size) = tmp
		v.size++
		return nil
	}
	*v.data.At(v.size) = v.ops.moveElem(v.data.At(v.size - 1))
	for j := v.size - 1; j > i; j-- {
		*v.data.At(j) = v.ops.moveElem(v.data.At(j - 1))
	}
	*v.data.At(i) = tmp
	v.size++
	return nil
}
