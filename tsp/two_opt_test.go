// Package tsp_test exercises the 2-opt local search via the public API.
// Focus: convergence to a local optimum, don't-look bit pruning, gain
// consistency, idempotence and degenerate sizes.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoopt/distance"
	"github.com/katalvlaran/twoopt/tsp"
)

func TestOptimize_UncrossesSquare(t *testing.T) {
	cases := []struct {
		name    string
		side    float64
		kind    distance.Kind
		crossed int
		optimum int
	}{
		// Diagonal 14.14 → 14; crossed = 14+10+14+10.
		{"euc2d side 10", 10, distance.Euclidean2D, 48, 40},
		// Unit diagonal √2 → ⌈⌉ = 2; crossed = 2+1+2+1.
		{"ceil2d unit", 1, distance.Euclidean2DCeil, 6, 4},
		// Unit diagonal rounds to 1: the crossed tour already has the perimeter length.
		{"euc2d unit", 1, distance.Euclidean2D, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sq := square(t, tc.side, tc.kind)
			tour := []int{0, 2, 1, 3}
			require.Equal(t, tc.crossed, tsp.Length(sq, tour))

			st, err := tsp.Optimize(sq, tour)
			require.NoError(t, err)
			require.NoError(t, tsp.ValidatePermutation(tour, 4))
			assert.Equal(t, tc.optimum, tsp.Length(sq, tour))
			assert.Equal(t, tc.crossed-tc.optimum, st.Gain)
			if tc.crossed != tc.optimum {
				assert.True(t, tsp.SameCycle([]int{0, 1, 2, 3}, tour), "got %s", tsp.DebugString(tour))
			}
		})
	}
}

func TestOptimize_DegenerateSizes(t *testing.T) {
	for _, n := range []int{2, 3} {
		in := randomInstance(t, n, seedDet, distance.Euclidean2D)
		tour := tsp.RandomTour(n, seedDet)
		orig := tsp.CopyTour(tour)

		st, err := tsp.Optimize(in, tour)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, tsp.Stats{}, st)
		assert.Equal(t, orig, tour)
	}
}

func TestOptimize_RejectsBadTour(t *testing.T) {
	in := randomInstance(t, 6, seedDet, distance.Euclidean2D)

	_, err := tsp.Optimize(in, []int{0, 1, 2, 3, 4})
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.Optimize(in, []int{0, 1, 2, 3, 4, 4})
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.Optimize(nil, []int{0, 1})
	assert.ErrorIs(t, err, tsp.ErrNilCosts)
}

func TestOptimize_ReachesLocalOptimum(t *testing.T) {
	kinds := []distance.Kind{distance.Euclidean2D, distance.PseudoEuclideanATT, distance.Euclidean2DCeil}
	for k, kind := range kinds {
		for _, n := range []int{4, 5, 8, 25, 120} {
			in := randomInstance(t, n, seedDet+int64(100*k+n), kind)
			tour := tsp.RandomTour(n, int64(n))
			before := tsp.Length(in, tour)

			st, err := tsp.Optimize(in, tour)
			require.NoError(t, err)
			require.NoError(t, tsp.ValidatePermutation(tour, n))

			after := tsp.Length(in, tour)
			assert.Equal(t, before-after, st.Gain, "%s n=%d", kind, n)
			assert.LessOrEqual(t, after, before)
			requireLocalOptimum(t, in, tour)
		}
	}
}

func TestOptimize_MoveGainMatchesLengthDrop(t *testing.T) {
	in := randomInstance(t, 80, seedDet, distance.Euclidean2D)
	tour := tsp.RandomTour(80, seedDet)
	prev := tsp.Length(in, tour)

	moves := 0
	hook := func(m tsp.Move, cur []int) {
		moves++
		require.Positive(t, m.Gain)
		require.Less(t, m.I+1, m.J)
		require.NoError(t, tsp.ValidatePermutation(cur, 80))
		now := tsp.Length(in, cur)
		require.Equal(t, m.Gain, prev-now, "move %+v", m)
		prev = now
	}

	st, err := tsp.Optimize(in, tour, tsp.WithMoveHook(hook))
	require.NoError(t, err)
	assert.Equal(t, st.Moves, moves)
	assert.Positive(t, moves)
}

func TestOptimize_Idempotent(t *testing.T) {
	in := randomInstance(t, 150, seedDet, distance.PseudoEuclideanATT)
	tour, err := tsp.NearestNeighbor(in)
	require.NoError(t, err)

	_, err = tsp.Optimize(in, tour)
	require.NoError(t, err)
	converged := tsp.CopyTour(tour)

	st, err := tsp.Optimize(in, tour)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Gain)
	assert.Equal(t, 0, st.Moves)
	assert.Equal(t, 1, st.OuterPasses)
	assert.Equal(t, 1, st.InnerPasses)
	assert.Equal(t, 150-2, st.Scans, "one full scan over i=0..n-3")
	assert.Equal(t, converged, tour)
}

func TestOptimize_LengthNonIncreasing(t *testing.T) {
	in := randomInstance(t, 60, seedDet, distance.Euclidean2DCeil)
	tour := tsp.RandomTour(60, 3)
	last := tsp.Length(in, tour)
	for round := 0; round < 3; round++ {
		_, err := tsp.Optimize(in, tour)
		require.NoError(t, err)
		cur := tsp.Length(in, tour)
		assert.LessOrEqual(t, cur, last, "round %d", round)
		last = cur
	}
}

func TestOptimize_DontLookBitsPrune(t *testing.T) {
	in := randomInstance(t, 200, seedDet, distance.Euclidean2D)
	tour := tsp.RandomTour(200, seedDet)

	st, err := tsp.Optimize(in, tour)
	require.NoError(t, err)
	assert.Positive(t, st.Skipped, "bits should suppress rescans once the tour settles")
	assert.GreaterOrEqual(t, st.OuterPasses, 2, "last outer pass certifies convergence")
	assert.Equal(t, st.InnerPasses*(200-2), st.Scans+st.Skipped)
}

func TestOptimize_ConstantCostsNeverMove(t *testing.T) {
	in := randomInstance(t, 10, seedDet, distance.Constant)
	tour := tsp.RandomTour(10, seedDet)
	orig := tsp.CopyTour(tour)

	st, err := tsp.Optimize(in, tour)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Gain)
	assert.Equal(t, orig, tour)
}

func TestOptimize_MatrixCosts(t *testing.T) {
	// Ring 0-1-2-3-4 costs 1 per step; chords cost 5.
	m := matrixCosts{
		{0, 1, 5, 5, 1},
		{1, 0, 1, 5, 5},
		{5, 1, 0, 1, 5},
		{5, 5, 1, 0, 1},
		{1, 5, 5, 1, 0},
	}
	tour := []int{0, 2, 4, 1, 3}
	require.Equal(t, 25, tsp.Length(m, tour))

	_, err := tsp.Optimize(m, tour)
	require.NoError(t, err)
	assert.Equal(t, 5, tsp.Length(m, tour))
	assert.True(t, tsp.SameCycle([]int{0, 1, 2, 3, 4}, tour), "got %s", tsp.DebugString(tour))
}
