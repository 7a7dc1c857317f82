//go:build linux || darwin

package rawbuf

import (
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/veckit/internal/buf"
)

// Mmap reserves slot storage in anonymous memory-mapped pages outside the
// Go heap. Free unmaps the region immediately instead of waiting for the
// collector, which makes it suitable for large, short-lived buffers.
//
// Only pointer-free element types are allowed; NewMmap rejects anything
// else with ErrElemPointers.
type Mmap[T any] struct {
	elemSize int
	regions  map[uintptr][]byte
}

// NewMmap returns an Mmap allocator for T, or ErrElemPointers when T has
// pointer-bearing fields.
func NewMmap[T any]() (*Mmap[T], error) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	if hasPointers(t) {
		return nil, fmt.Errorf("%w: %s", ErrElemPointers, t)
	}
	return &Mmap[T]{
		elemSize: int(unsafe.Sizeof(zero)),
		regions:  make(map[uintptr][]byte),
	}, nil
}

func (m *Mmap[T]) Alloc(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	// Zero-size elements occupy no storage; nothing to map.
	if m.elemSize == 0 {
		return make([]T, n), nil
	}
	size, ok := buf.ByteSize(n, m.elemSize)
	if !ok {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrBadSize, n, m.elemSize)
	}

	raw, err := unix.Mmap(
		-1,
		0,
		size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrNoSpace, size, err)
	}

	base := unsafe.Pointer(&raw[0])
	m.regions[uintptr(base)] = raw

	// Pages are page-aligned and zero-filled by the OS, satisfying both the
	// alignment and the zeroed-slots contract for any T.
	return unsafe.Slice((*T)(base), n), nil
}

func (m *Mmap[T]) Free(slots []T) {
	if len(slots) == 0 || m.elemSize == 0 {
		return
	}
	base := uintptr(unsafe.Pointer(&slots[0]))
	raw, ok := m.regions[base]
	if !ok {
		return
	}
	delete(m.regions, base)
	_ = unix.Munmap(raw)
}

// Mapped reports the number of live mapped regions, for leak checks.
func (m *Mmap[T]) Mapped() int { return len(m.regions) }
