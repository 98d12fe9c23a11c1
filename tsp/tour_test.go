package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoopt/tsp"
)

func TestValidatePermutation(t *testing.T) {
	cases := []struct {
		name string
		perm []int
		n    int
		ok   bool
	}{
		{"identity", []int{0, 1, 2, 3}, 4, true},
		{"shuffled", []int{2, 0, 3, 1}, 4, true},
		{"duplicate", []int{0, 1, 1, 3}, 4, false},
		{"out of range", []int{0, 1, 2, 4}, 4, false},
		{"negative", []int{0, -1, 2, 3}, 4, false},
		{"short", []int{0, 1, 2}, 4, false},
		{"empty", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidatePermutation(tc.perm, tc.n)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	cases := []struct {
		name     string
		beg, end int
		want     []int
	}{
		{"whole", 0, 5, []int{5, 4, 3, 2, 1, 0}},
		{"single", 2, 2, []int{0, 1, 2, 3, 4, 5}},
		{"pair", 1, 2, []int{0, 2, 1, 3, 4, 5}},
		{"odd interior", 1, 3, []int{0, 3, 2, 1, 4, 5}},
		{"even interior", 1, 4, []int{0, 4, 3, 2, 1, 5}},
		{"suffix", 3, 5, []int{0, 1, 2, 5, 4, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tour := tsp.IdentityTour(6)
			require.NoError(t, tsp.Reverse(tour, tc.beg, tc.end))
			assert.Equal(t, tc.want, tour)
			require.NoError(t, tsp.ValidatePermutation(tour, 6))
		})
	}
}

func TestReverse_Involution(t *testing.T) {
	tour := tsp.RandomTour(31, seedDet)
	orig := tsp.CopyTour(tour)
	require.NoError(t, tsp.Reverse(tour, 4, 27))
	assert.NotEqual(t, orig, tour)
	require.NoError(t, tsp.Reverse(tour, 4, 27))
	assert.Equal(t, orig, tour)
}

func TestReverse_BadRange(t *testing.T) {
	tour := tsp.IdentityTour(4)
	for _, r := range [][2]int{{-1, 2}, {0, 4}, {3, 1}} {
		assert.ErrorIs(t, tsp.Reverse(tour, r[0], r[1]), tsp.ErrDimensionMismatch, "%v", r)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, tour)
}

func TestCopyTour(t *testing.T) {
	assert.Nil(t, tsp.CopyTour(nil))
	a := []int{3, 1, 2, 0}
	b := tsp.CopyTour(a)
	b[0] = 9
	assert.Equal(t, 3, a[0])
}

func TestIdentityTour(t *testing.T) {
	assert.Nil(t, tsp.IdentityTour(0))
	assert.Equal(t, []int{0, 1, 2}, tsp.IdentityTour(3))
}

func TestSameCycle(t *testing.T) {
	base := []int{0, 1, 2, 3, 4}
	assert.True(t, tsp.SameCycle(base, []int{2, 3, 4, 0, 1}), "rotation")
	assert.True(t, tsp.SameCycle(base, []int{0, 4, 3, 2, 1}), "reversal")
	assert.True(t, tsp.SameCycle(base, []int{3, 2, 1, 0, 4}), "rotated reversal")
	assert.False(t, tsp.SameCycle(base, []int{0, 2, 1, 3, 4}))
	assert.False(t, tsp.SameCycle(base, []int{0, 1, 2, 3}))
	assert.False(t, tsp.SameCycle(base, []int{5, 6, 7, 8, 9}))
	assert.True(t, tsp.SameCycle(nil, nil))
}

func TestDebugString(t *testing.T) {
	assert.Equal(t, "[]", tsp.DebugString(nil))
	assert.Equal(t, "[0 3 1 2 | 0]", tsp.DebugString([]int{0, 3, 1, 2}))
}

func TestRandomTour_Deterministic(t *testing.T) {
	a := tsp.RandomTour(50, 7)
	b := tsp.RandomTour(50, 7)
	require.NoError(t, tsp.ValidatePermutation(a, 50))
	assert.Equal(t, a, b)
	assert.Equal(t, tsp.RandomTour(50, 0), tsp.RandomTour(50, 0))
	assert.NotEqual(t, tsp.DeriveSeed(1, 0), tsp.DeriveSeed(1, 1))
}
