package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/twoopt/distance"
)

// TSPLIB header keywords understood by Parse.
const (
	kwName          = "NAME"
	kwComment       = "COMMENT"
	kwType          = "TYPE"
	kwDimension     = "DIMENSION"
	kwEdgeWeight    = "EDGE_WEIGHT_TYPE"
	kwCoordSection  = "NODE_COORD_SECTION"
	kwDepotSection  = "DEPOT_SECTION"
	kwEOF           = "EOF"
	problemTypeTSP  = "TSP"
	depotTerminator = -1
)

type parseState uint8

const (
	stHeader parseState = iota
	stCoords
	stDepots
	stDone
)

// Load opens path and parses it with Parse.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Parse reads a TSPLIB coordinate instance.
//
// Recognized header lines ("KEY : VALUE"): NAME, COMMENT (may repeat), TYPE
// (must be TSP when present), DIMENSION, EDGE_WEIGHT_TYPE. Unknown keywords
// are kept verbatim and exposed through Extra. NODE_COORD_SECTION is followed
// by DIMENSION lines "id x y" with 1-based ids in any order; DEPOT_SECTION by
// 1-based ids terminated by -1. Parsing stops at EOF or end of input.
//
// Errors (wrapped with the offending line number):
//   - ErrMalformedInstance     : bad DIMENSION, coordinates before DIMENSION,
//     unparsable/duplicate/out-of-range coordinate line, count mismatch
//     (including numeric lines left over after DIMENSION coordinates).
//   - ErrUnsupportedWeightType : EDGE_WEIGHT_TYPE missing or unknown
//     (also matches distance.ErrUnknownKind with errors.Is).
//   - ErrUnsupportedProblemType: TYPE other than TSP.
//   - ErrTooFewCities          : DIMENSION below MinCities.
//
// Complexity: O(n) time over the input, O(n) space.
func Parse(r io.Reader) (*Instance, error) {
	var (
		sc        = bufio.NewScanner(r)
		in        = &Instance{extra: make(map[string]string)}
		state     = stHeader
		line      string
		lineNo    int
		dimension = -1
		remaining int
		seen      []bool
		kindSet   bool
		sawCoords bool
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for state != stDone && sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch state {
		case stCoords:
			id, p, err := parseCoordLine(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInstance, lineNo, err)
			}
			if id < 1 || id > dimension {
				return nil, fmt.Errorf("%w: line %d: node id %d outside 1..%d", ErrMalformedInstance, lineNo, id, dimension)
			}
			if seen[id-1] {
				return nil, fmt.Errorf("%w: line %d: duplicate node id %d", ErrMalformedInstance, lineNo, id)
			}
			seen[id-1] = true
			in.coords[id-1] = p
			remaining--
			if remaining == 0 {
				state = stHeader
			}
			continue

		case stDepots:
			ids, done, err := parseDepotLine(line, dimension)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInstance, lineNo, err)
			}
			in.depots = append(in.depots, ids...)
			if done {
				state = stHeader
			}
			continue
		}

		key, value := splitKeyword(line)
		switch key {
		case kwEOF:
			state = stDone

		case kwName:
			in.name = value

		case kwComment:
			if in.comment != "" {
				in.comment += " "
			}
			in.comment += value

		case kwType:
			if strings.ToUpper(value) != problemTypeTSP {
				return nil, fmt.Errorf("%w: line %d: %q", ErrUnsupportedProblemType, lineNo, value)
			}

		case kwDimension:
			if dimension != -1 {
				return nil, fmt.Errorf("%w: line %d: DIMENSION repeated", ErrMalformedInstance, lineNo)
			}
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: bad DIMENSION %q", ErrMalformedInstance, lineNo, value)
			}
			if n < MinCities {
				return nil, fmt.Errorf("%w: line %d: DIMENSION %d", ErrTooFewCities, lineNo, n)
			}
			dimension = n
			in.coords = make([]distance.Point, n)
			seen = make([]bool, n)

		case kwEdgeWeight:
			k, err := distance.ParseKind(value)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q: %w", ErrUnsupportedWeightType, lineNo, value, err)
			}
			in.kind = k
			kindSet = true

		case kwCoordSection:
			if dimension < 0 {
				return nil, fmt.Errorf("%w: line %d: %s before DIMENSION", ErrMalformedInstance, lineNo, kwCoordSection)
			}
			if sawCoords {
				return nil, fmt.Errorf("%w: line %d: %s repeated", ErrMalformedInstance, lineNo, kwCoordSection)
			}
			sawCoords = true
			remaining = dimension
			state = stCoords

		case kwDepotSection:
			state = stDepots

		default:
			if isDataLine(line) {
				return nil, fmt.Errorf("%w: line %d: data line %q outside a section (more than DIMENSION=%d coordinates?)",
					ErrMalformedInstance, lineNo, line, dimension)
			}
			in.extra[key] = value
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !sawCoords {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedInstance, kwCoordSection)
	}
	if remaining > 0 {
		return nil, fmt.Errorf("%w: expected %d coordinates, read %d", ErrMalformedInstance, dimension, dimension-remaining)
	}
	if !kindSet {
		return nil, fmt.Errorf("%w: missing %s", ErrUnsupportedWeightType, kwEdgeWeight)
	}

	return in, nil
}

// splitKeyword splits "KEY : VALUE" (or a bare "KEY") into its trimmed parts.
// The key is upper-cased.
func splitKeyword(line string) (string, string) {
	key, value, _ := strings.Cut(line, ":")

	return strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(value)
}

// isDataLine reports whether line starts with an integer field, i.e. looks
// like a node or depot record rather than a "KEY : VALUE" header.
func isDataLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.Atoi(fields[0])

	return err == nil
}

// parseCoordLine parses "id x y" with a 1-based integer id and finite reals.
func parseCoordLine(line string) (int, distance.Point, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, distance.Point{}, fmt.Errorf("want \"id x y\", got %q", line)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, distance.Point{}, fmt.Errorf("bad node id %q", fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || !finite(x) {
		return 0, distance.Point{}, fmt.Errorf("bad x coordinate %q", fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || !finite(y) {
		return 0, distance.Point{}, fmt.Errorf("bad y coordinate %q", fields[2])
	}

	return id, distance.Point{X: x, Y: y}, nil
}

// parseDepotLine converts the 1-based ids on one DEPOT_SECTION line to 0-based
// ids and reports whether the -1 terminator was reached.
func parseDepotLine(line string, dimension int) ([]int, bool, error) {
	var (
		fields = strings.Fields(line)
		ids    = make([]int, 0, len(fields))
		f      string
	)
	for _, f = range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, false, fmt.Errorf("bad depot id %q", f)
		}
		if id == depotTerminator {
			return ids, true, nil
		}
		if id < 1 || id > dimension {
			return nil, false, fmt.Errorf("depot id %d outside 1..%d", id, dimension)
		}
		ids = append(ids, id-1)
	}

	return ids, false, nil
}
