package vec

// Ops supplies the element lifecycle hooks a Vector invokes on behalf of
// its element type. Every field may be nil:
//
//   - New: value construction, used by Resize and NewSize. nil means the
//     zero value.
//   - Copy: deep copy. nil means plain assignment, which cannot fail.
//   - Move: deep move. Must not fail and must leave *src with no owned
//     resources; declaring Move asserts exactly that, so the vector may
//     move elements during reallocation without a fallback path. A move
//     that can fail must be expressed as Copy instead. nil means plain
//     assignment followed by zeroing the source.
//   - Drop: teardown of a live element. The vector zeroes the slot
//     afterwards, so Drop only needs to release what the zero write would
//     hide from the collector (file handles, off-heap memory, pool slots).
type Ops[T any] struct {
	New  func() (T, error)
	Copy func(T) (T, error)
	Move func(*T) T
	Drop func(*T)
}

func (ops Ops[T]) newElem() (T, error) {
	if ops.New != nil {
		return ops.New()
	}
	var zero T
	return zero, nil
}

func (ops Ops[T]) copyElem(src T) (T, error) {
	if ops.Copy != nil {
		return ops.Copy(src)
	}
	return src, nil
}

// moveElem transfers the element out of src. The slot is zeroed regardless
// of the Move hook so it never pins moved-out references.
func (ops Ops[T]) moveElem(src *T) T {
	var out T
	if ops.Move != nil {
		out = ops.Move(src)
	} else {
		out = *src
	}
	var zero T
	*src = zero
	return out
}

// dropSlot tears down the live element in slot and zeroes it.
func (ops Ops[T]) dropSlot(slot *T) {
	if ops.Drop != nil {
		ops.Drop(slot)
	}
	var zero T
	*slot = zero
}

// moveTransfer reports whether reallocation transfers elements by move.
// Moves are used when the type declares an infallible Move, or when it has
// no deep Copy (plain assignment cannot fail either way). A type with only
// a fallible Copy is copied instead, so a failed transfer leaves the old
// buffer holding the intact originals.
func (ops Ops[T]) moveTransfer() bool {
	return ops.Move != nil || ops.Copy == nil
}
