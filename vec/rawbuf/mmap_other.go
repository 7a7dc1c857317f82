//go:build !linux && !darwin

package rawbuf

import (
	"fmt"
	"reflect"
)

// Mmap falls back to heap allocation on platforms without anonymous mmap
// support. The pointer-free constraint is still enforced so code is portable
// to the mapped implementation.
type Mmap[T any] struct{}

// NewMmap returns an Mmap allocator for T, or ErrElemPointers when T has
// pointer-bearing fields.
func NewMmap[T any]() (*Mmap[T], error) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	if hasPointers(t) {
		return nil, fmt.Errorf("%w: %s", ErrElemPointers, t)
	}
	return &Mmap[T]{}, nil
}

func (m *Mmap[T]) Alloc(n int) ([]T, error) {
	return Heap[T]{}.Alloc(n)
}

func (m *Mmap[T]) Free(slots []T) {}

// Mapped reports the number of live mapped regions, always zero here.
func (m *Mmap[T]) Mapped() int { return 0 }
