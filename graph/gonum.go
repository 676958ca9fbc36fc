package graph

import (
	"fmt"
	"sort"
	"strconv"

	gonumgraph "gonum.org/v1/gonum/graph"
)

// FromUndirected copies a gonum undirected graph into a new Graph.
//
// Vertices are created in ascending gonum node ID order and named by the
// decimal node ID. Each adjacency list ends up sorted by neighbor node ID, so
// the conversion is deterministic regardless of gonum's map iteration order.
//
// Errors:
//   - ErrLoopNotAllowed: if src contains a self-loop.
//
// Complexity: O(V log V + E log Δ).
func FromUndirected(src gonumgraph.Undirected) (*Graph, error) {
	return FromUndirectedFunc(src, func(n gonumgraph.Node) string {
		return strconv.FormatInt(n.ID(), 10)
	})
}

// FromUndirectedFunc is FromUndirected with vertex IDs chosen by name.
//
// Errors:
//   - ErrEmptyVertexID: if name returns "".
//   - ErrMultiEdgeNotAllowed: if name maps two nodes to one ID.
//   - ErrLoopNotAllowed: if src contains a self-loop.
func FromUndirectedFunc(src gonumgraph.Undirected, name func(gonumgraph.Node) string) (*Graph, error) {
	nodes := gonumgraph.NodesOf(src.Nodes())
	sort.Slice(nodes, func(a, b int) bool { return nodes[a].ID() < nodes[b].ID() })

	g := NewGraph(WithCapacity(len(nodes)))
	ids := make(map[int64]string, len(nodes))
	for _, n := range nodes {
		id := name(n)
		if g.HasVertex(id) {
			return nil, fmt.Errorf("graph: gonum nodes share ID %q: %w", id, ErrMultiEdgeNotAllowed)
		}
		if _, err := g.AddVertex(id); err != nil {
			return nil, err
		}
		ids[n.ID()] = id
	}

	for _, u := range nodes {
		to := gonumgraph.NodesOf(src.From(u.ID()))
		sort.Slice(to, func(a, b int) bool { return to[a].ID() < to[b].ID() })
		for _, w := range to {
			switch {
			case w.ID() == u.ID():
				return nil, fmt.Errorf("graph: gonum node %d: %w", u.ID(), ErrLoopNotAllowed)
			case w.ID() < u.ID():
				continue // added from the other endpoint
			}
			if err := g.AddEdge(ids[u.ID()], ids[w.ID()]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
