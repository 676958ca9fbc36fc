// Package lvmatch is a maximum-cardinality matching library for general
// graphs, with a level reordering routine built on top of it.
//
// Packages:
//
//	graph/    - ordered undirected graph with settable vertex indices
//	builder/  - deterministic fixture graphs (path, cycle, grid, Petersen, ...)
//	bfs/      - multi-source breadth-first distances
//	matching/ - Micali–Vazirani matching in O(√V · E)
//	reorder/  - pseudo-temperature level reordering with per-level matching
//
// The lvmatch command (cmd/lvmatch) exposes match and reorder on graph
// files.
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.Petersen())
//	res, _ := matching.Match(g)
//	fmt.Println(res.Cardinality) // 5
package lvmatch
