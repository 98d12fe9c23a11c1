// Package tsp - end-to-end pipeline.
//
// Solve wires the pieces in the order of the data flow:
//
//	Costs ─▶ initial tour (NN / identity / random) ─▶ Optimize ─▶ Result
//
// with an optional cached cost table in front and an optional verification
// run behind.
package tsp

// Solve builds a starting tour for c, improves it to a 2-opt local optimum
// and returns the result.
//
// With WithVerify, Solve additionally checks that:
//   - InitialLength − Length == Stats.Gain  (otherwise ErrGainMismatch);
//   - a second Optimize on the result gains nothing (otherwise ErrNotConverged).
//
// Errors: ErrNilCosts, ErrTooFewCities, ErrUnsupportedInit, and the two above.
//
// Complexity: O(n²) construction plus local search (see two_opt.go);
// WithDense adds O(n²) time and memory up front.
func Solve(c Costs, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}
	n, err := validateCosts(c)
	if err != nil {
		return Result{}, err
	}

	costs := c
	if o.Dense {
		costs = Dense(c)
	}

	var tour []int
	switch o.Init {
	case InitIdentity:
		tour = IdentityTour(n)
	case InitRandom:
		tour = RandomTour(n, o.Seed)
	default:
		if tour, err = NearestNeighbor(costs); err != nil {
			return Result{}, err
		}
	}

	res := Result{InitialLength: Length(costs, tour)}
	if res.Stats, err = Optimize(costs, tour, WithMoveHook(o.MoveHook)); err != nil {
		return Result{}, err
	}
	res.Tour = tour
	res.Length = Length(costs, tour)

	if o.Verify {
		if res.InitialLength-res.Length != res.Stats.Gain {
			return res, ErrGainMismatch
		}
		check, verr := Optimize(costs, tour)
		if verr != nil {
			return res, verr
		}
		if check.Gain != 0 {
			return res, ErrNotConverged
		}
		res.Verified = true
	}

	return res, nil
}
