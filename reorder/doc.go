// Package reorder renumbers the vertices of a graph by pseudo-temperature
// levels between two vertex sets.
//
// What
//
//	Sinks sit at temperature 0 and sources at temperature 1. Every other
//	vertex gets T = d0/(d0+d1) from its BFS distances to both sets. Vertices
//	are binned into L levels and numbered level by level; inside a level a
//	maximum matching on the induced subgraph decides which neighbors are
//	numbered next to each other.
//
// Why
//
//   - Indices follow the flow from sinks to sources.
//   - Adjacent vertices in the same level end up adjacent in the ordering,
//     which keeps paired unknowns close together in index space.
//
// Options
//
//   - WithSort:           sort the graph container by the new indices.
//   - WithTemperature:    collect T per vertex ID.
//   - WithMinLevels:      floor for L (default 10).
//   - WithMatcherOptions: forwarded to matching.Match.
//   - WithContext, WithLogger.
package reorder
