// Package builder assembles deterministic graph fixtures on top of
// graph.Graph.
//
// Every topology is exposed as a Constructor closure; BuildGraph creates a
// fresh graph, resolves the BuilderOption list into a builderConfig and runs
// the constructors in order against the same graph. Composing several
// constructors in one call therefore yields their union on shared IDs, and
// Disjoint/Prefixed keep the parts apart.
//
// Available topologies:
//
//   - Path(n), Cycle(n), Complete(n)
//   - CompleteBipartite(n1, n2) with "L"/"R" prefixed IDs
//   - Grid(rows, cols) with row-major "r,c" IDs
//   - Petersen()
//   - RandomSparse(n, p) (needs WithSeed or WithRand when 0 < p < 1)
//   - Disjoint(cons...), Prefixed(prefix, con)
//
// Guarantees:
//
//   - Same constructors, same options and the same seed give the same vertex
//     order and the same adjacency order.
//   - Option constructors panic on meaningless input (nil functions);
//     constructors themselves only return sentinel errors wrapped with the
//     method name.
//
// These fixtures back the matching and reorder test suites and the examples.
package builder
