// Package tsp approximately solves the symmetric Travelling Salesman Problem
// on integer-cost instances by construction followed by local search.
//
// Pipeline:
//
//	Costs ─▶ NearestNeighbor ─▶ Optimize (2-opt + don't-look bits) ─▶ tour, length
//
//   - NearestNeighbor: greedy O(n²) construction from city 0; ties keep the
//     first candidate in scan order.
//   - Optimize: 2-opt to a local optimum, mutating the tour in place through
//     Reverse only. Don't-look bits (one per city) skip rescans of cities
//     whose incident edges have not changed.
//   - Solve: the two above plus optional verification, a cached cost table
//     (Dense) and alternative starting tours (identity, seeded random).
//
// Tours are open permutations of [0..n−1]; the closing edge back to tour[0]
// is implicit and always priced by Length.
//
// Everything is single-threaded, allocation-light and deterministic. No
// function in this package logs; failures are reported with the sentinel
// errors in types.go.
//
// Quick example:
//
//	in, _ := instance.Load("berlin52.tsp")
//	res, err := tsp.Solve(in, tsp.WithVerify())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Length, tsp.DebugString(res.Tour))
package tsp
