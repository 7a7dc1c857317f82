package vec

import (
	"errors"
	"testing"
)

// errInjected marks deliberate hook failures in guarantee tests.
var errInjected = errors.New("injected failure")

// ============================================================================
// Lifecycle Tracking
// ============================================================================

// tracker counts element lifecycle events and can make hooks fail on
// demand, which is how the failure-guarantee tests drive the container
// into its recovery paths.
type tracker struct {
	news   int
	copies int
	moves  int
	drops  int

	// remaining successful operations; -1 means unlimited
	copyBudget int
	newBudget  int
}

// item is the tracked element type.
type item struct {
	val int
}

func newTracker() *tracker {
	return &tracker{copyBudget: -1, newBudget: -1}
}

// copyOps returns an Ops table with a fallible deep copy and no declared
// move, so reallocation transfers elements by copy.
func (tk *tracker) copyOps() Ops[item] {
	return Ops[item]{
		New: func() (item, error) {
			if tk.newBudget == 0 {
				return item{}, errInjected
			}
			if tk.newBudget > 0 {
				tk.newBudget--
			}
			tk.news++
			return item{}, nil
		},
		Copy: func(src item) (item, error) {
			if tk.copyBudget == 0 {
				return item{}, errInjected
			}
			if tk.copyBudget > 0 {
				tk.copyBudget--
			}
			tk.copies++
			return item{val: src.val}, nil
		},
		Drop: func(p *item) {
			tk.drops++
		},
	}
}

// moveOps returns copyOps plus an infallible move, so reallocation
// transfers elements by move.
func (tk *tracker) moveOps() Ops[item] {
	ops := tk.copyOps()
	ops.Move = func(src *item) item {
		tk.moves++
		return item{val: src.val}
	}
	return ops
}

// ============================================================================
// Content Helpers
// ============================================================================

// values collects the live elements of an int vector.
func values(t *testing.T, v *Vector[int]) []int {
	t.Helper()
	out := make([]int, 0, v.Len())
	for i := range v.Len() {
		out = append(out, *v.At(i))
	}
	return out
}

// itemValues collects the val fields of a tracked vector.
func itemValues(t *testing.T, v *Vector[item]) []int {
	t.Helper()
	out := make([]int, 0, v.Len())
	for i := range v.Len() {
		out = append(out, v.At(i).val)
	}
	return out
}

// pushAll appends vals in order, failing the test on error.
func pushAll(t *testing.T, v *Vector[int], vals ...int) {
	t.Helper()
	for _, x := range vals {
		if err := v.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
}

// pushItems appends tracked items with the given vals.
func pushItems(t *testing.T, v *Vector[item], vals ...int) {
	t.Helper()
	for _, x := range vals {
		if err := v.PushBack(item{val: x}); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
}
