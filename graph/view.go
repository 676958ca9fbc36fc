// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Induced keeps the caller's vertex order and each vertex's neighbor order.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package graph

import "fmt"

// Induced returns the subgraph induced by keep as a new Graph.
//
// The i-th vertex of the result is a fresh vertex carrying keep[i].ID() and
// index i. For every u in keep and every neighbor w of u that is also in keep,
// the local copy of w is appended to the local adjacency of u, in u's
// original neighbor order. The source graph is not modified.
//
// Errors:
//   - ErrForeignVertex: if an element of keep does not belong to g.
//   - ErrMultiEdgeNotAllowed: if keep lists the same vertex twice.
//
// Complexity: O(|keep| + Σ deg(u)) time, O(|keep|) extra space.
func (g *Graph) Induced(keep []*Vertex) (*Graph, error) {
	out := NewGraph(WithCapacity(len(keep)))
	local := make(map[*Vertex]*Vertex, len(keep))

	for _, v := range keep {
		if !g.Owns(v) {
			return nil, ErrForeignVertex
		}
		if _, dup := local[v]; dup {
			return nil, fmt.Errorf("graph: %q listed twice: %w", v.id, ErrMultiEdgeNotAllowed)
		}
		lv := &Vertex{id: v.id, index: len(out.vertices), pos: len(out.vertices), owner: out}
		out.vertices = append(out.vertices, lv)
		out.byID[v.id] = lv
		local[v] = lv
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	half := 0
	for _, v := range keep {
		lv := local[v]
		for _, w := range v.adj {
			if lw, ok := local[w]; ok {
				lv.adj = append(lv.adj, lw)
				half++
			}
		}
	}
	out.edges = half / 2

	return out, nil
}
