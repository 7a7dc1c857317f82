package rawbuf

import "errors"

var (
	// ErrNoSpace indicates that an allocator refused to reserve the requested slots.
	ErrNoSpace = errors.New("rawbuf: no space for requested slots")

	// ErrBadSize indicates a slot count whose byte size does not fit in an int.
	ErrBadSize = errors.New("rawbuf: slot count overflows")

	// ErrElemPointers indicates an element type with pointer-bearing fields,
	// which cannot live in memory outside the Go heap.
	ErrElemPointers = errors.New("rawbuf: element type contains pointers")
)
