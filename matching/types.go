package matching

import (
	"errors"
	"fmt"
)

// Unmatched is the partner of a vertex that is not covered by the matching.
const Unmatched = -1

// inf marks an unassigned level.
const inf = int(^uint(0) >> 1)

// none marks an absent vertex, blossom or pool cell.
const none = -1

// unscanned marks a DDFS cursor that has not been started in this phase.
const unscanned = -2

// Graph is the read-only adjacency view consumed by the matcher.
//
// Vertices are 0..Order()-1. Neighbor(v, k) returns the index of the k-th
// neighbor of v for 0 ≤ k < Degree(v). The adjacency must be symmetric and
// free of self-loops and parallel edges; violations are reported by Match.
// graph.Graph satisfies this interface.
type Graph interface {
	Order() int
	Degree(v int) int
	Neighbor(v, k int) int
}

// Sentinel errors.
var (
	// ErrNilGraph is returned when Match receives a nil graph.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrNeighborRange indicates a neighbor index outside 0..V-1.
	ErrNeighborRange = errors.New("matching: neighbor index out of range")

	// ErrSelfLoop indicates a vertex listed as its own neighbor.
	ErrSelfLoop = errors.New("matching: self-loop")

	// ErrParallelEdge indicates an edge listed twice by the same endpoint.
	ErrParallelEdge = errors.New("matching: parallel edge")

	// ErrAsymmetric indicates u lists w but w does not list u.
	ErrAsymmetric = errors.New("matching: asymmetric adjacency")

	// ErrMatcherUsed is returned when Run is called twice on one Matcher.
	ErrMatcherUsed = errors.New("matching: matcher already used")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrInvariant reports a broken internal invariant (pool overflow,
	// missing edge, impossible level). It indicates a bug, not bad input.
	ErrInvariant = errors.New("matching: internal invariant violated")
)

// invariantError is the panic payload raised by assertions inside the engine.
// Match converts it into ErrInvariant.
type invariantError struct {
	msg string
}

func (e invariantError) Error() string { return e.msg }

// assertf panics with an invariantError.
func assertf(format string, args ...interface{}) {
	panic(invariantError{msg: fmt.Sprintf(format, args...)})
}

// Stats describes the work performed by one Match call.
type Stats struct {
	Phases        int // MV phases run, including the final unsuccessful one
	GreedyMatched int // pairs matched by the greedy start
	Augmentations int // augmenting paths applied by MV phases
	Blossoms      int // blossoms formed over all phases
	Bridges       int // bridges processed by the double DFS
	SoftFailures  int // augmenting paths that could not be rebuilt or validated
	Certified     int // augmenting paths found by the certification search
}

// Result is the outcome of Match.
type Result struct {
	// Cardinality is the number of matched pairs.
	Cardinality int

	// Partner[v] is the vertex matched to v, or Unmatched.
	Partner []int

	Stats Stats
}

// Pairs returns the matched pairs (u, Partner[u]) with u < Partner[u] in
// increasing order of u.
func (r *Result) Pairs() [][2]int {
	out := make([][2]int, 0, r.Cardinality)
	for u, w := range r.Partner {
		if w != Unmatched && u < w {
			out = append(out, [2]int{u, w})
		}
	}

	return out
}
