// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoopt/distance"
	"github.com/katalvlaran/twoopt/instance"
	"github.com/katalvlaran/twoopt/tsp"
)

const (
	// seedDet is the deterministic seed used for synthetic instances.
	seedDet = int64(42)

	// coordSpan bounds random coordinates to [0, coordSpan).
	coordSpan = 1000.0
)

// newInstance builds an instance from literal coordinates.
func newInstance(t testing.TB, kind distance.Kind, pts ...distance.Point) *instance.Instance {
	t.Helper()
	in, err := instance.New("test", kind, pts)
	require.NoError(t, err)

	return in
}

// randomInstance scatters n cities uniformly over a coordSpan square.
func randomInstance(t testing.TB, n int, seed int64, kind distance.Kind) *instance.Instance {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	pts := make([]distance.Point, n)
	for i := range pts {
		pts[i] = distance.Point{X: r.Float64() * coordSpan, Y: r.Float64() * coordSpan}
	}

	return newInstance(t, kind, pts...)
}

// square returns the four corners (0,0),(0,s),(s,s),(s,0) as cities 0..3.
func square(t testing.TB, side float64, kind distance.Kind) *instance.Instance {
	t.Helper()

	return newInstance(t, kind,
		distance.Point{X: 0, Y: 0},
		distance.Point{X: 0, Y: side},
		distance.Point{X: side, Y: side},
		distance.Point{X: side, Y: 0},
	)
}

// matrixCosts is a hand-written symmetric cost table.
type matrixCosts [][]int

var _ tsp.Costs = matrixCosts(nil)

func (m matrixCosts) Size() int              { return len(m) }
func (m matrixCosts) Distance(i, j int) int { return m[i][j] }

// requireLocalOptimum brute-forces every exchange and fails if any improves.
func requireLocalOptimum(t *testing.T, c tsp.Costs, tour []int) {
	t.Helper()
	n := len(tour)
	for i := 0; i <= n-3; i++ {
		for j := i + 2; j < n; j++ {
			jn := (j + 1) % n
			g := c.Distance(tour[i], tour[i+1]) + c.Distance(tour[j], tour[jn]) -
				c.Distance(tour[i], tour[j]) - c.Distance(tour[i+1], tour[jn])
			require.LessOrEqual(t, g, 0, "improving exchange left at i=%d j=%d", i, j)
		}
	}
}
