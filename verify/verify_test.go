package verify

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_IgnoresOrder(t *testing.T) {
	t.Parallel()

	a := Fingerprint([]int{10, 7, 8, 9, 1, 5})
	b := Fingerprint([]int{1, 5, 7, 8, 9, 10})

	assert.Equal(t, a, b)
	assert.Equal(t, 6, a.Len)
}

func TestFingerprint_DetectsChanges(t *testing.T) {
	t.Parallel()

	base := Fingerprint([]int{1, 2, 3})

	tests := map[string][]int{
		"changed value":   {1, 2, 4},
		"dropped value":   {1, 2},
		"duplicated":      {1, 2, 2},
		"extra value":     {1, 2, 3, 0},
		"swapped for neg": {-1, 2, 3},
	}

	for name, seq := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.NotEqual(t, base, Fingerprint(seq))
		})
	}
}

func TestFingerprint_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Print{}, Fingerprint(nil))
}

func TestCheckSorted(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckSorted(nil, 0, -1))
	require.NoError(t, CheckSorted([]int{3}, 0, 0))
	require.NoError(t, CheckSorted([]int{1, 5, 5, 7}, 0, 3))
	require.NoError(t, CheckSorted([]int{9, 1, 2, 0}, 1, 2))

	err := CheckSorted([]int{1, 7, 5}, 0, 2)
	require.ErrorIs(t, err, ErrNotSorted)
	assert.Contains(t, err.Error(), "seq[1]=7 > seq[2]=5")

	require.ErrorIs(t, CheckSorted([]int{1, 2}, 0, 5), ErrNotSorted)
	assert.False(t, IsSorted([]int{2, 1}, 0, 1))
	assert.True(t, IsSorted([]int{1, 2}, 0, 1))
}

func TestCheck(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	input := rng.Perm(100)
	before := Fingerprint(input)

	sorted := make([]int, 100)
	for i := range sorted {
		sorted[i] = i
	}

	require.NoError(t, Check(before, sorted))

	t.Run("unsorted only", func(t *testing.T) {
		t.Parallel()

		err := Check(before, input)
		require.ErrorIs(t, err, ErrNotSorted)
		assert.NotErrorIs(t, err, ErrNotPermutation)
	})

	t.Run("both failures reported", func(t *testing.T) {
		t.Parallel()

		err := Check(before, []int{3, 2, 1})
		require.ErrorIs(t, err, ErrNotSorted)
		require.ErrorIs(t, err, ErrNotPermutation)
	})
}
