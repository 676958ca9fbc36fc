// Package bfs computes multi-source breadth-first distances over a
// graph.Graph.
//
// What
//
//   - Seeds every source vertex at depth 0 and explores in non-decreasing
//     distance to the nearest source.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex ID → distance from the source set
//   - MaxDepth: the largest finite distance
//   - Result.Distance reports NaN for vertices that were never reached.
//   - Hook: OnVisit, which may abort the search with an error.
//
// Visited state lives in the vertex flag bit, so a search allocates no
// visited set. Do not run two searches over the same graph concurrently.
//
// Determinism
//
//	Sources are enqueued in the given order and neighbors in adjacency order,
//	so Order is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Distances(g, sinks)
//	if err != nil {
//		// ErrGraphNil, ErrNoSources, ErrSourceNotFound,
//		// ctx.Err() or a wrapped OnVisit error
//	}
//	d := res.Distance("v17") // NaN if unreachable
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrNoSources       if the source list is empty.
//   - ErrSourceNotFound  if a source does not belong to the graph.
package bfs
