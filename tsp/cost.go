// Package tsp: cost utilities shared by the constructor and local search.
//
// Provided:
//   - Length: total cost of a closed tour, including tour[n-1]→tour[0].
//   - Dense: an n×n precomputed cost table that satisfies Costs.
//
// All costs are integers, so sums are exact and there is no rounding step.
package tsp

// Length returns the cost of the cycle described by tour:
//
//	Σ_{k=0}^{n-2} d(tour[k], tour[k+1])  +  d(tour[n-1], tour[0]).
//
// Contract: every entry of tour is a valid city index for c. A tour with
// fewer than two entries has length 0.
//
// Complexity: O(n).
func Length(c Costs, tour []int) int {
	n := len(tour)
	if n < 2 {
		return 0
	}
	var (
		sum int
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += c.Distance(tour[k], tour[k+1])
	}

	return sum + c.Distance(tour[n-1], tour[0])
}

// DenseCosts is a row-major n×n table of precomputed costs.
type DenseCosts struct {
	n int
	w []int
}

var _ Costs = (*DenseCosts)(nil)

// Dense evaluates every pair of c once and returns the cached table.
// Only the upper triangle is evaluated; Costs are symmetric.
//
// Complexity: O(n²) time and space.
func Dense(c Costs) *DenseCosts {
	n := c.Size()
	d := &DenseCosts{n: n, w: make([]int, n*n)}

	var (
		i, j int
		x    int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			x = c.Distance(i, j)
			d.w[i*n+j] = x
			d.w[j*n+i] = x
		}
	}

	return d
}

// Size returns n.
func (d *DenseCosts) Size() int { return d.n }

// Distance returns the cached cost of i–j.
func (d *DenseCosts) Distance(i, j int) int { return d.w[i*d.n+j] }
