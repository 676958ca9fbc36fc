// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in container order (position 0..V-1).
//
// Concurrency:
//   - Vertex catalog protected by mu.
package graph

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent) and returns its handle.
//
// A new vertex is appended at position Order() and receives that position as
// its index.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(id), nil
}

// addVertexLocked registers id under an already held write lock.
func (g *Graph) addVertexLocked(id string) *Vertex {
	if v, ok := g.byID[id]; ok {
		return v
	}
	v := &Vertex{id: id, index: len(g.vertices), pos: len(g.vertices), owner: g}
	g.vertices = append(g.vertices, v)
	g.byID[id] = v

	return v
}

// Vertex looks a vertex up by ID.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.byID[id]

	return v, ok
}

// MustVertex looks a vertex up by ID and wraps ErrVertexNotFound with the ID.
func (g *Graph) MustVertex(id string) (*Vertex, error) {
	if v, ok := g.Vertex(id); ok {
		return v, nil
	}

	return nil, fmt.Errorf("graph: %q: %w", id, ErrVertexNotFound)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.Vertex(id)

	return ok
}

// Owns reports whether v is registered in g.
func (g *Graph) Owns(v *Vertex) bool {
	return v != nil && v.owner == g
}

// At returns the vertex at position i.
func (g *Graph) At(i int) *Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[i]
}

// Vertices returns a snapshot of the vertices in container order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Size returns the number of undirected edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Degree returns the degree of the vertex at position i.
func (g *Graph) Degree(i int) int {
	return g.At(i).Degree()
}

// Neighbor returns the position of the k-th neighbor of the vertex at
// position i.
//
// Together with Order and Degree this satisfies matching.Graph in position
// coordinates, whatever the current indices are.
func (g *Graph) Neighbor(i, k int) int {
	return g.At(i).adj[k].pos
}

// ResetIndices assigns every vertex its position as index.
// Complexity: O(V).
func (g *Graph) ResetIndices() {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, v := range g.vertices {
		v.index = i
	}
}

// ClearFlags resets the transient flag of every vertex.
func (g *Graph) ClearFlags() {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.vertices {
		v.flag = false
	}
}

// SortByIndex reorders the container so that position follows index.
// Ties keep their previous relative order. Afterwards index == position
// only if the indices formed a permutation of 0..V-1.
// Complexity: O(V log V).
func (g *Graph) SortByIndex() {
	g.mu.Lock()
	defer g.mu.Unlock()

	sort.SliceStable(g.vertices, func(a, b int) bool {
		return g.vertices[a].index < g.vertices[b].index
	})
	for i, v := range g.vertices {
		v.pos = i
	}
}
