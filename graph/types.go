// Package graph defines the Vertex and Graph types consumed by the matching
// and reorder packages.
//
// A Graph is an ordered sequence of vertices. Every vertex carries an opaque,
// stable string ID, a numeric index that algorithms may reassign, a transient
// flag bit and an ordered adjacency list. Edges are undirected: AddEdge always
// mirrors the edge into both adjacency lists, and parallel edges and
// self-loops are rejected.
//
// The vertex catalog (ordering and ID lookup) is guarded by a sync.RWMutex.
// Per-vertex state (index, flag, adjacency order) is NOT synchronized: the
// algorithms in this module mutate it from a single goroutine.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
//	ErrForeignVertex       - vertex handle belongs to another graph.
//	ErrIndexMismatch       - vertex index differs from its position.
//	ErrAsymmetric          - adjacency is not mirrored.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")

	// ErrForeignVertex indicates a vertex handle that is not registered in the graph.
	ErrForeignVertex = errors.New("graph: vertex belongs to another graph")

	// ErrIndexMismatch indicates that a vertex index does not equal its position.
	ErrIndexMismatch = errors.New("graph: vertex index does not match position")

	// ErrAsymmetric indicates that u lists w as a neighbor but w does not list u.
	ErrAsymmetric = errors.New("graph: adjacency is not symmetric")
)

// Vertex is a node of an undirected Graph.
//
// ID is fixed at creation. Index is the vertex's current numeric index; it is
// equal to the vertex position after NewGraph/AddVertex and after SortByIndex,
// and may be reassigned freely in between (see reorder.ReorderByLevels).
type Vertex struct {
	id    string
	index int
	pos   int // position in owner
	flag  bool
	owner *Graph

	// adj keeps neighbors in insertion order; algorithms rely on this order
	// for reproducible results.
	adj []*Vertex
}

// ID returns the stable identifier of v.
func (v *Vertex) ID() string { return v.id }

// Index returns the current numeric index of v.
func (v *Vertex) Index() int { return v.index }

// SetIndex overwrites the numeric index of v. The graph is not re-sorted.
func (v *Vertex) SetIndex(i int) { v.index = i }

// Flag reports the transient flag bit.
func (v *Vertex) Flag() bool { return v.flag }

// SetFlag sets the transient flag bit.
func (v *Vertex) SetFlag(f bool) { v.flag = f }

// Degree returns the number of neighbors of v.
func (v *Vertex) Degree() int { return len(v.adj) }

// Neighbor returns the k-th neighbor of v in insertion order.
func (v *Vertex) Neighbor(k int) *Vertex { return v.adj[k] }

// Neighbors returns the adjacency list of v. The slice is owned by the graph
// and must not be modified.
func (v *Vertex) Neighbors() []*Vertex { return v.adj }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]*Vertex, 0, n)
			g.byID = make(map[string]*Vertex, n)
		}
	}
}

// Graph is an ordered, undirected, simple graph.
//
// mu protects vertices, byID and edges.
type Graph struct {
	mu sync.RWMutex

	vertices []*Vertex         // position → vertex
	byID     map[string]*Vertex // ID → vertex
	edges    int                // undirected edge count
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		byID: make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
