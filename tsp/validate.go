// Package tsp - validation helpers for Solve.
//
// Deterministic, side-effect free; only sentinel errors from types.go.
package tsp

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	switch o.Init {
	case InitNearestNeighbor, InitIdentity, InitRandom:
	default:
		return ErrUnsupportedInit
	}

	return nil
}

// validateCosts checks that c is usable: non-nil with at least two cities.
// It returns n on success.
func validateCosts(c Costs) (int, error) {
	if c == nil {
		return 0, ErrNilCosts
	}
	n := c.Size()
	if n < 2 {
		return 0, ErrTooFewCities
	}

	return n, nil
}
