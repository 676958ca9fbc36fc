// Package matching computes maximum-cardinality matchings in general
// (non-bipartite) undirected graphs with the Micali–Vazirani algorithm.
//
// What
//
//   - Match(g) returns a Result with the cardinality, the partner of every
//     vertex (Unmatched for single vertices) and run statistics.
//   - g is any Graph: Order, Degree and Neighbor over dense indices 0..V-1.
//     graph.Graph satisfies it directly.
//
// Algorithm
//
//	A degree-ordered greedy pass seeds the matching. Each phase then runs a
//	layered search from all free vertices. Edges between two vertices of the
//	same search depth are bridges; every bridge triggers a double depth-first
//	search that either finds a shortest augmenting path or contracts a
//	blossom and hands its vertices their missing level. Augmenting paths are
//	rebuilt with an explicit work stack, validated, flipped, and their
//	vertices erased for the rest of the phase. A phase without augmentation
//	ends the run.
//
//	For graphs up to CertifyLimit vertices, and after any path that could
//	not be rebuilt, a final Edmonds search certifies the result and applies
//	whatever augmenting paths it still finds.
//
// Determinism
//
//	Results depend only on the adjacency order of g.
//
// Complexity
//
//   - Time:   O(√V · E) for the phases; certification adds O(V · E) per
//     augmentation it performs plus one O(V · E · α) sweep.
//   - Memory: O(V + E), allocated once per Matcher.
//
// Errors
//
//   - ErrNilGraph, ErrOptionViolation.
//   - ErrNeighborRange, ErrSelfLoop, ErrParallelEdge, ErrAsymmetric for
//     malformed adjacency, naming the offending vertices.
//   - ErrInvariant if an internal assertion fires.
package matching
