package rawbuf

import "fmt"

// Allocator reserves and reclaims slot storage for Buffers.
//
// Alloc returns a block of exactly n zeroed slots (len == cap == n), or nil
// when n is zero. Free returns a block obtained from Alloc on the same
// allocator; freeing nil is a no-op. Free never inspects slot contents and
// never runs element teardown - that discipline belongs to the block's owner.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(slots []T)
}

// Heap allocates from the Go runtime. Free is a no-op: the garbage
// collector reclaims blocks once the owner drops its reference.
type Heap[T any] struct{}

func (Heap[T]) Alloc(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	return make([]T, n), nil
}

func (Heap[T]) Free(slots []T) {}

// Limit wraps another allocator with a budget of outstanding slots.
// Alloc fails with ErrNoSpace once the budget would be exceeded, which makes
// allocation-failure paths reproducible in tests and lets embedders cap the
// footprint of a container.
type Limit[T any] struct {
	inner  Allocator[T]
	budget int
	used   int
}

// NewLimit returns a Limit allocator over inner (Heap when inner is nil)
// that refuses to have more than budget slots outstanding.
func NewLimit[T any](inner Allocator[T], budget int) *Limit[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limit[T]{inner: inner, budget: budget}
}

func (l *Limit[T]) Alloc(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > l.budget-l.used {
		return nil, fmt.Errorf("%w: need %d, %d of %d in use", ErrNoSpace, n, l.used, l.budget)
	}
	slots, err := l.inner.Alloc(n)
	if err != nil {
		return nil, err
	}
	l.used += n
	return slots, nil
}

func (l *Limit[T]) Free(slots []T) {
	if slots == nil {
		return
	}
	l.used -= len(slots)
	l.inner.Free(slots)
}

// InUse reports the number of slots currently outstanding.
func (l *Limit[T]) InUse() int { return l.used }

// Budget reports the configured slot budget.
func (l *Limit[T]) Budget() int { return l.budget }
