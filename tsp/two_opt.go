// Package tsp - 2-opt local search with don't-look bits.
//
// Optimize improves an open tour in place until no single 2-opt exchange
// reduces its length. For positions i < j and jn = (j+1) mod n the exchange
// removes (tour[i],tour[i+1]) and (tour[j],tour[jn]), adds (tour[i],tour[j])
// and (tour[i+1],tour[jn]), and is applied by reversing tour[i+1..j]:
//
//	gain = d(i,i+1) + d(j,jn) − d(i,j) − d(i+1,jn)     (accepted iff gain > 0)
//
// Loop structure:
//
//	outer pass: repeat until an outer pass gains nothing
//	  inner pass: repeat until an inner pass gains nothing
//	    for i = 0..n−3: scan j = i+2..n−1 unless tour[i]'s don't-look bit is set
//
// The first inner pass of every outer pass is a full scan that ignores the
// bits, so an outer pass with zero gain certifies a 2-opt local optimum.
//
// Don't-look bits are indexed by city id, never by tour position. After a
// scan from tour[i] the bit of tour[i] is set iff that scan gained nothing.
// Every accepted exchange clears the bits of tour[i+1], tour[j] and tour[jn]
// (the cities whose incident edges changed); tour[i] is settled by its own scan.
//
// Termination: distances are non-negative integers, each accepted move lowers
// the length by at least 1, and the length is bounded below by 0.
//
// Complexity:
//   - One full inner pass: O(n²) gain evaluations plus O(n) per accepted move.
//   - Once the tour stabilizes most cities carry a set bit and are skipped.
//   - Extra space: O(n) bits per call.
package tsp

// Optimize runs 2-opt local search on tour in place and returns its counters.
// Stats.Gain is the total reduction of Length(c, tour).
//
// Contracts:
//   - tour is a permutation of [0..c.Size()−1] (ErrDimensionMismatch otherwise).
//   - n < 4 admits no exchange with four distinct endpoints; the tour is
//     returned unchanged with zero Stats.
//   - Running Optimize on its own output performs one full scan, gains 0
//     and leaves the tour unchanged.
//
// Only Options.MoveHook is consulted; the remaining fields belong to Solve.
func Optimize(c Costs, tour []int, opts ...Option) (Stats, error) {
	if c == nil {
		return Stats{}, ErrNilCosts
	}
	n := c.Size()
	if len(tour) != n {
		return Stats{}, ErrDimensionMismatch
	}
	if err := ValidatePermutation(tour, n); err != nil {
		return Stats{}, err
	}
	if n < 4 {
		return Stats{}, nil
	}

	o := buildOptions(opts)
	e := &engine{
		c:        c,
		tour:     tour,
		n:        n,
		dontLook: make([]bool, n), // all active
		hook:     o.MoveHook,
	}
	e.run()

	return e.stats, nil
}

// engine is the scratch state of one Optimize call.
type engine struct {
	c        Costs
	tour     []int
	n        int
	dontLook []bool // indexed by city id
	hook     func(Move, []int)
	stats    Stats
}

// run drives the two-level pass structure until an outer pass gains nothing.
func (e *engine) run() {
	var (
		outerGain int
		passGain  int
		full      bool
	)
	for {
		e.stats.OuterPasses++
		outerGain = 0
		full = true
		for {
			passGain = e.pass(full)
			outerGain += passGain
			full = false
			if passGain == 0 {
				break
			}
		}
		e.stats.Gain += outerGain
		if outerGain == 0 {
			return
		}
	}
}

// pass performs one inner pass and returns its gain. When full is set the
// don't-look bits are ignored for the decision to scan (but still updated).
func (e *engine) pass(full bool) int {
	e.stats.InnerPasses++

	var (
		gain int
		i    int
	)
	for i = 0; i <= e.n-3; i++ {
		if !full && e.dontLook[e.tour[i]] {
			e.stats.Skipped++
			continue
		}
		gain += e.scan(i)
	}

	return gain
}

// scan evaluates every exchange anchored at position i, applying each
// improving one immediately (first improvement, scan continues), and
// returns the gain accumulated for i.
func (e *engine) scan(i int) int {
	e.stats.Scans++

	var (
		t     = e.tour
		n     = e.n
		a     = t[i] // constant: reversals only touch [i+1..j]
		iGain int
		j, jn int
		g     int
	)
	for j = i + 2; j < n; j++ {
		jn = j + 1
		if j == n-1 {
			jn = 0
		}
		g = e.c.Distance(a, t[i+1]) + e.c.Distance(t[j], t[jn]) -
			e.c.Distance(a, t[j]) - e.c.Distance(t[i+1], t[jn])
		if g <= 0 {
			continue
		}

		reverse(t, i+1, j)
		iGain += g
		e.stats.Moves++

		e.dontLook[t[i+1]] = false
		e.dontLook[t[j]] = false
		e.dontLook[t[jn]] = false

		if e.hook != nil {
			e.hook(Move{I: i, J: j, Gain: g}, t)
		}
	}

	e.dontLook[a] = iGain == 0

	return iGain
}
