// Package instance holds a coordinate-based symmetric TSP instance and the
// loader that reads it from TSPLIB text.
//
// An Instance is immutable once built: n cities with planar coordinates and a
// single distance.Kind chosen at load time. It exposes exactly what the
// optimizer consumes:
//
//	Size()           -> n
//	Coordinate(i)    -> (x, y)
//	Distance(i, j)   -> integer edge cost
//
// so *Instance satisfies tsp.Costs without this package importing tsp.
//
// Validation happens here and only here: a malformed coordinate line, a
// coordinate count that does not match DIMENSION, or an unrecognized
// EDGE_WEIGHT_TYPE is reported at load time as a sentinel error.
package instance

import (
	"errors"
	"math"

	"github.com/katalvlaran/twoopt/distance"
)

// Sentinel errors returned by the loader and constructors.
var (
	// ErrMalformedInstance indicates input that cannot describe a valid instance:
	// unparsable lines, bad DIMENSION, missing or duplicate coordinates.
	ErrMalformedInstance = errors.New("instance: malformed instance")

	// ErrUnsupportedWeightType indicates a missing or unrecognized EDGE_WEIGHT_TYPE.
	ErrUnsupportedWeightType = errors.New("instance: unsupported edge weight type")

	// ErrUnsupportedProblemType indicates a TYPE other than TSP (e.g. ATSP, CVRP).
	ErrUnsupportedProblemType = errors.New("instance: unsupported problem type")

	// ErrTooFewCities indicates fewer than two cities.
	ErrTooFewCities = errors.New("instance: at least two cities are required")
)

// MinCities is the smallest instance the loader accepts.
const MinCities = 2

// Instance is an immutable set of cities with a fixed cost formula.
type Instance struct {
	name    string
	comment string
	kind    distance.Kind
	coords  []distance.Point
	depots  []int
	extra   map[string]string
}

// New builds an Instance from an in-memory coordinate slice. The slice is copied.
//
// Errors: ErrTooFewCities, ErrUnsupportedWeightType (invalid kind),
// ErrMalformedInstance (non-finite coordinate).
func New(name string, kind distance.Kind, pts []distance.Point) (*Instance, error) {
	if len(pts) < MinCities {
		return nil, ErrTooFewCities
	}
	if !kind.Valid() {
		return nil, ErrUnsupportedWeightType
	}
	var i int
	for i = range pts {
		if !finite(pts[i].X) || !finite(pts[i].Y) {
			return nil, ErrMalformedInstance
		}
	}
	coords := make([]distance.Point, len(pts))
	copy(coords, pts)

	return &Instance{name: name, kind: kind, coords: coords}, nil
}

// Name returns the NAME header value.
func (in *Instance) Name() string { return in.name }

// Comment returns the COMMENT header value(s), joined by a single space.
func (in *Instance) Comment() string { return in.comment }

// Kind returns the cost formula bound at load time.
func (in *Instance) Kind() distance.Kind { return in.kind }

// Size returns the number of cities n.
func (in *Instance) Size() int { return len(in.coords) }

// Coordinate returns the (x, y) pair of city i.
func (in *Instance) Coordinate(i int) (float64, float64) {
	p := in.coords[i]

	return p.X, p.Y
}

// Point returns the coordinate of city i as a distance.Point.
func (in *Instance) Point(i int) distance.Point { return in.coords[i] }

// Distance returns the edge cost between cities i and j; Distance(i, i) is 0
// for every kind.
func (in *Instance) Distance(i, j int) int {
	if i == j {
		return 0
	}

	return in.kind.Distance(in.coords[i], in.coords[j])
}

// Depots returns a copy of the 0-based DEPOT_SECTION ids (nil if absent).
func (in *Instance) Depots() []int {
	if in.depots == nil {
		return nil
	}
	out := make([]int, len(in.depots))
	copy(out, in.depots)

	return out
}

// Extra returns the value of a header keyword the loader does not interpret
// (e.g. NODE_COORD_TYPE, DISPLAY_DATA_TYPE, vendor keywords).
func (in *Instance) Extra(key string) (string, bool) {
	v, ok := in.extra[key]

	return v, ok
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
