package vec

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Fuzz_RandomOps_MatchSliceModel drives a vector with random
// operations and checks it against a plain slice reference model after
// every step, along with the core size/capacity invariants.
func Test_Fuzz_RandomOps_MatchSliceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // fixed seed for reproducibility

	v := New[int]()
	model := []int{}

	check := func(step int) {
		t.Helper()
		require.Equal(t, len(model), v.Len(), "step %d: length", step)
		require.LessOrEqual(t, v.Len(), v.Cap(), "step %d: size within capacity", step)
		require.Equal(t, model, append([]int{}, values(t, v)...), "step %d: contents", step)
	}

	for step := range 1000 {
		switch op := rng.Intn(6); op {
		case 0: // push
			x := rng.Intn(10000)
			require.NoError(t, v.PushBack(x))
			model = append(model, x)

		case 1: // pop
			if len(model) > 0 {
				v.PopBack()
				model = model[:len(model)-1]
			}

		case 2: // insert at random position
			x := rng.Intn(10000)
			pos := rng.Intn(len(model) + 1)
			require.NoError(t, v.Insert(pos, x))
			model = slices.Insert(model, pos, x)

		case 3: // erase at random position
			if len(model) > 0 {
				pos := rng.Intn(len(model))
				v.Erase(pos)
				model = slices.Delete(model, pos, pos+1)
			}

		case 4: // resize
			n := rng.Intn(40)
			require.NoError(t, v.Resize(n))
			for len(model) > n {
				model = model[:len(model)-1]
			}
			for len(model) < n {
				model = append(model, 0)
			}

		case 5: // reserve
			capBefore := v.Cap()
			n := rng.Intn(64)
			require.NoError(t, v.Reserve(n))
			require.GreaterOrEqual(t, v.Cap(), capBefore, "reserve never shrinks")
		}

		check(step)
	}
}

// Test_Fuzz_RandomOps_TrackedLifecycle repeats the random walk with a
// lifecycle-tracked element and verifies no element is leaked or
// double-dropped: every constructed or copied element is eventually
// dropped exactly once by the final Release.
func Test_Fuzz_RandomOps_TrackedLifecycle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	tk := newTracker()
	v := NewOps[item](tk.copyOps())

	for range 500 {
		switch op := rng.Intn(5); op {
		case 0:
			require.NoError(t, v.PushBack(item{val: rng.Intn(100)}))
		case 1:
			if v.Len() > 0 {
				v.PopBack()
			}
		case 2:
			require.NoError(t, v.Insert(rng.Intn(v.Len()+1), item{val: rng.Intn(100)}))
		case 3:
			if v.Len() > 0 {
				v.Erase(rng.Intn(v.Len()))
			}
		case 4:
			require.NoError(t, v.Resize(rng.Intn(30)))
		}
	}

	v.Release()

	// Pushed literals enter without a hook, so drops equals hook
	// constructions plus pushes; at minimum every New and Copy product
	// must have been dropped.
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	require.GreaterOrEqual(t, tk.drops, tk.news+tk.copies)
}
