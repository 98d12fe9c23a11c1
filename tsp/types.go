// Package tsp - shared types, sentinel errors and options.
//
// Tours in this package are *open* permutations: a slice of n distinct city
// indices over [0..n-1]. The closing edge tour[n-1]→tour[0] is implicit and
// always part of the tour length.
package tsp

import (
	"errors"
	"strings"
)

// Sentinel errors. Callers should compare with errors.Is.
var (
	// ErrDimensionMismatch indicates a tour whose length differs from Costs.Size(),
	// a tour that is not a permutation, or an out-of-range index.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrTooFewCities indicates an instance with fewer than two cities.
	ErrTooFewCities = errors.New("tsp: at least two cities are required")

	// ErrNilCosts indicates a nil Costs value.
	ErrNilCosts = errors.New("tsp: costs is nil")

	// ErrUnsupportedInit indicates an Init value outside the declared set.
	ErrUnsupportedInit = errors.New("tsp: unsupported initial tour strategy")

	// ErrNotConverged indicates that a verification run of Optimize on a
	// converged tour still found an improving exchange.
	ErrNotConverged = errors.New("tsp: tour is not a 2-opt local optimum")

	// ErrGainMismatch indicates that the accumulated gain does not equal the
	// difference between initial and final tour lengths.
	ErrGainMismatch = errors.New("tsp: accumulated gain does not match length reduction")
)

// Costs is the read-only cost model consumed by every solver in this package.
// Distance must be deterministic, symmetric and non-negative.
// *instance.Instance satisfies it.
type Costs interface {
	Size() int
	Distance(i, j int) int
}

// Move is one accepted 2-opt exchange. With jn = (J+1) mod n, it removed the
// edges (tour[I],tour[I+1]) and (tour[J],tour[jn]), added (tour[I],tour[J])
// and (tour[I+1],tour[jn]), and reversed positions [I+1..J].
type Move struct {
	I, J int
	Gain int // removed − added; always > 0 for an accepted move
}

// Stats summarizes one Optimize call.
type Stats struct {
	Gain        int // total length reduction
	Moves       int // accepted exchanges
	OuterPasses int
	InnerPasses int
	Scans       int // neighborhood scans executed
	Skipped     int // scans skipped because the city's don't-look bit was set
}

// Result is the outcome of Solve.
type Result struct {
	Tour          []int // final open tour
	InitialLength int   // length of the constructed tour
	Length        int   // length after local search
	Stats         Stats // local search counters
	Verified      bool  // a second Optimize run reported zero gain
}

// Init selects how Solve builds the starting tour.
type Init uint8

const (
	// InitNearestNeighbor builds the greedy nearest-neighbor tour from city 0.
	InitNearestNeighbor Init = iota
	// InitIdentity starts from 0,1,…,n−1.
	InitIdentity
	// InitRandom starts from a seeded random permutation.
	InitRandom
)

// String returns the flag spelling of i.
func (i Init) String() string {
	switch i {
	case InitNearestNeighbor:
		return "nn"
	case InitIdentity:
		return "identity"
	case InitRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseInit maps "nn", "identity" or "random" (case-insensitive) to an Init.
func ParseInit(s string) (Init, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nn", "nearest", "nearest-neighbor":
		return InitNearestNeighbor, nil
	case "identity":
		return InitIdentity, nil
	case "random":
		return InitRandom, nil
	default:
		return 0, ErrUnsupportedInit
	}
}

// Options configures Solve and Optimize.
//
// Init     – starting tour strategy (Solve only). Default InitNearestNeighbor.
// Seed     – RNG seed for InitRandom; 0 selects a fixed default seed.
// Verify   – after convergence, run Optimize again and require zero gain.
// Dense    – precompute an n×n cost table before searching (O(n²) memory).
// MoveHook – called after every accepted exchange with the mutated tour.
//
//	The hook must not modify the tour.
type Options struct {
	Init     Init
	Seed     int64
	Verify   bool
	Dense    bool
	MoveHook func(m Move, tour []int)
}

// Option is a functional option for Solve and Optimize.
type Option func(*Options)

// DefaultOptions returns the zero-policy configuration: nearest-neighbor
// start, no verification, on-the-fly distances, no hook.
func DefaultOptions() Options {
	return Options{
		Init: InitNearestNeighbor,
	}
}

// WithInit selects the starting tour strategy.
func WithInit(i Init) Option {
	return func(o *Options) {
		o.Init = i
	}
}

// WithSeed sets the seed used by InitRandom.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithVerify enables the post-convergence verification run.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithDense enables the precomputed cost table.
func WithDense() Option {
	return func(o *Options) {
		o.Dense = true
	}
}

// WithMoveHook registers an observer for accepted exchanges.
func WithMoveHook(fn func(m Move, tour []int)) Option {
	return func(o *Options) {
		o.MoveHook = fn
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
