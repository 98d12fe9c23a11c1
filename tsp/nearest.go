package tsp

// NearestNeighbor builds the greedy nearest-neighbor tour starting at city 0.
//
// Algorithm: start from the identity order. For each position i = 0..n−3, scan
// the unfixed positions i+1..n−1 left to right for the city closest to
// tour[i] and swap it into position i+1. Ties keep the first candidate seen
// (strict < comparison), so the result is fully deterministic.
//
// For n == 2 the identity tour is returned without scanning.
//
// Errors: ErrNilCosts, ErrTooFewCities (n < 2).
//
// Complexity: O(n²) distance evaluations, O(n) space.
func NearestNeighbor(c Costs) ([]int, error) {
	if c == nil {
		return nil, ErrNilCosts
	}
	n := c.Size()
	if n < 2 {
		return nil, ErrTooFewCities
	}
	tour := IdentityTour(n)

	var (
		i, j     int
		nearest  int
		dNearest int
		d        int
	)
	for i = 0; i < n-2; i++ {
		nearest = i + 1
		dNearest = c.Distance(tour[i], tour[nearest])
		for j = i + 2; j < n; j++ {
			d = c.Distance(tour[i], tour[j])
			if d < dNearest {
				nearest = j
				dNearest = d
			}
		}
		tour[i+1], tour[nearest] = tour[nearest], tour[i+1]
	}

	return tour, nil
}
