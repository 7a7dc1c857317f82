package vec

// Iterator walks the live range of a vector in index order.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

// Iter returns an iterator positioned before the first element.
//
// The iterator is invalidated by any capacity-changing operation and by
// Insert or Erase at or before its current index. Walking an invalidated
// iterator is a caller bug; it may skip or repeat elements but will not
// read outside the live range.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{v: v}
}

// Next returns a pointer to the next live element, or false when the walk
// is complete.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.i >= it.v.size {
		return nil, false
	}
	p := it.v.data.At(it.i)
	it.i++
	return p, true
}

// Index returns the index of the element most recently returned by Next,
// or -1 before the first call.
func (it *Iterator[T]) Index() int {
	return it.i - 1
}
