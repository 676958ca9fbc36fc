// File: methods_edges.go
// Role: Edge insertion, lookup and structural validation.
//
// Determinism:
//   - AddEdge appends to both adjacency lists; neighbor order is insertion order.
package graph

import "fmt"

// AddEdge connects the vertices with IDs from and to, creating missing
// vertices on the fly.
//
// Errors:
//   - ErrEmptyVertexID: if either ID is empty.
//   - ErrLoopNotAllowed: if from == to.
//   - ErrMultiEdgeNotAllowed: if the edge already exists.
//
// Complexity:
//   - Time O(deg(from)) for the duplicate check, Space O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("graph: %q: %w", from, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.addVertexLocked(from)
	w := g.addVertexLocked(to)

	return g.linkLocked(u, w)
}

// Connect links two existing vertex handles of g.
//
// Errors:
//   - ErrForeignVertex: if u or w is not registered in g.
//   - ErrLoopNotAllowed, ErrMultiEdgeNotAllowed: as AddEdge.
func (g *Graph) Connect(u, w *Vertex) error {
	if !g.Owns(u) || !g.Owns(w) {
		return ErrForeignVertex
	}
	if u == w {
		return fmt.Errorf("graph: %q: %w", u.id, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.linkLocked(u, w)
}

func (g *Graph) linkLocked(u, w *Vertex) error {
	// scan the shorter list
	a, b := u, w
	if len(b.adj) < len(a.adj) {
		a, b = b, a
	}
	for _, x := range a.adj {
		if x == b {
			return fmt.Errorf("graph: %q–%q: %w", u.id, w.id, ErrMultiEdgeNotAllowed)
		}
	}
	u.adj = append(u.adj, w)
	w.adj = append(w.adj, u)
	g.edges++

	return nil
}

// HasEdge reports whether the vertices with the given IDs are adjacent.
// Complexity: O(min(deg(u), deg(w))).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	u, okU := g.byID[from]
	w, okW := g.byID[to]
	g.mu.RUnlock()
	if !okU || !okW {
		return false
	}
	if len(w.adj) < len(u.adj) {
		u, w = w, u
	}
	for _, x := range u.adj {
		if x == w {
			return true
		}
	}

	return false
}

// Validate checks the structural invariants of a freshly built or sorted graph:
// index == position for every vertex, mirrored adjacency, no loops and no
// parallel edges.
//
// Errors are wrapped with the offending vertex or edge:
// ErrIndexMismatch, ErrAsymmetric, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(V + Σ deg²) time, O(V) space.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, v := range g.vertices {
		if v.index != i {
			return fmt.Errorf("graph: vertex %q at position %d has index %d: %w",
				v.id, i, v.index, ErrIndexMismatch)
		}
	}

	// stamp[x] == i+1 marks x as a neighbor of vertex i
	stamp := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		for _, w := range v.adj {
			if w == v {
				return fmt.Errorf("graph: %q: %w", v.id, ErrLoopNotAllowed)
			}
			if stamp[w.pos] == i+1 {
				return fmt.Errorf("graph: %q–%q: %w", v.id, w.id, ErrMultiEdgeNotAllowed)
			}
			stamp[w.pos] = i + 1
		}
	}
	for _, v := range g.vertices {
		for _, w := range v.adj {
			found := false
			for _, x := range w.adj {
				if x == v {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("graph: %q lists %q: %w", v.id, w.id, ErrAsymmetric)
			}
		}
	}

	return nil
}
