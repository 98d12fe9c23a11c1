// Package distance provides the integer cost functions used to price edges
// between two planar coordinates.
//
// A cost function is selected exactly once, from a TSPLIB edge-weight tag,
// and then stays fixed for the lifetime of an instance:
//
//   - Constant          : every edge costs 1 (degenerate/testing mode).
//   - Euclidean2D       : nint(√(dx²+dy²)).
//   - PseudoEuclideanATT: r=√((dx²+dy²)/10); t=nint(r); t+1 if t<r else t.
//   - Euclidean2DCeil   : ⌈√(dx²+dy²)⌉.
//
// nint is the TSPLIB rounding rule: add 0.5 and truncate toward zero.
//
// Every function here is pure, deterministic and symmetric
// (Distance(a,b) == Distance(b,a)); Distance(a,a) is 0 for all kinds but Constant;
// instance.Instance maps every self-distance to 0.
//
// Complexity: O(1) per call, no allocations.
package distance

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for any tag outside the closed set
// of supported edge-weight types. There is no fallback formula.
var ErrUnknownKind = errors.New("distance: unknown edge weight type")

// Kind is the closed set of supported cost formulas.
type Kind uint8

const (
	// Constant prices every edge at 1.
	Constant Kind = iota
	// Euclidean2D is the rounded planar Euclidean distance (TSPLIB EUC_2D).
	Euclidean2D
	// PseudoEuclideanATT is the TSPLIB ATT pseudo-Euclidean distance.
	PseudoEuclideanATT
	// Euclidean2DCeil is the planar Euclidean distance rounded up (TSPLIB CEIL_2D).
	Euclidean2DCeil
)

// TSPLIB tags accepted by ParseKind.
const (
	TagConstant = "CONSTANT"
	TagEuc2D    = "EUC_2D"
	TagATT      = "ATT"
	TagCeil2D   = "CEIL_2D"
)

// Point is a planar coordinate pair.
type Point struct {
	X, Y float64
}

// ParseKind maps a TSPLIB EDGE_WEIGHT_TYPE tag to its Kind.
// Surrounding whitespace is ignored and matching is case-insensitive.
func ParseKind(tag string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case TagConstant:
		return Constant, nil
	case TagEuc2D:
		return Euclidean2D, nil
	case TagATT:
		return PseudoEuclideanATT, nil
	case TagCeil2D:
		return Euclidean2DCeil, nil
	default:
		return 0, ErrUnknownKind
	}
}

// String returns the TSPLIB tag of k.
func (k Kind) String() string {
	switch k {
	case Constant:
		return TagConstant
	case Euclidean2D:
		return TagEuc2D
	case PseudoEuclideanATT:
		return TagATT
	case Euclidean2DCeil:
		return TagCeil2D
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k <= Euclidean2DCeil
}

// Distance returns the cost of the edge a–b under formula k.
// It panics on an invalid Kind; ParseKind never produces one.
func (k Kind) Distance(a, b Point) int {
	switch k {
	case Constant:
		return 1
	case Euclidean2D:
		return Euc2D(a, b)
	case PseudoEuclideanATT:
		return ATT(a, b)
	case Euclidean2DCeil:
		return Ceil2D(a, b)
	default:
		panic("distance: invalid Kind " + strconv.Itoa(int(k)))
	}
}

// Euc2D is nint(√(dx²+dy²)).
func Euc2D(a, b Point) int {
	return nint(math.Sqrt(sq(a, b)))
}

// ATT is the pseudo-Euclidean distance of the att48/att532 instances.
func ATT(a, b Point) int {
	var (
		rij = math.Sqrt(sq(a, b) / 10.0)
		tij = nint(rij)
	)
	if float64(tij) < rij {
		return tij + 1
	}

	return tij
}

// Ceil2D is ⌈√(dx²+dy²)⌉.
func Ceil2D(a, b Point) int {
	return int(math.Ceil(math.Sqrt(sq(a, b))))
}

// sq is the squared Euclidean distance between a and b.
func sq(a, b Point) float64 {
	var (
		dx = a.X - b.X
		dy = a.Y - b.Y
	)

	return dx*dx + dy*dy
}

// nint rounds a non-negative x by adding 0.5 and truncating toward zero.
func nint(x float64) int {
	return int(x + 0.5)
}
