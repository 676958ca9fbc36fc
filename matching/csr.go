package matching

import "fmt"

// csr is the compressed adjacency of the input graph.
//
// The neighbors of v are adj[start[v]:start[v+1]] in the order given by the
// input graph; edge[k] is the undirected edge id of slot k. Edge e joins
// eu[e] < ev[e]. index maps max(u,v)·V + min(u,v) to the edge id.
type csr struct {
	n      int
	start  []int
	adj    []int
	edge   []int
	eu, ev []int
	index  map[int64]int
}

func edgeKey(n, u, v int) int64 {
	if u < v {
		u, v = v, u
	}

	return int64(u)*int64(n) + int64(v)
}

// buildCSR copies g into CSR form and checks the simple-graph contract.
//
// Errors: ErrNeighborRange, ErrSelfLoop, ErrParallelEdge, ErrAsymmetric,
// wrapped with the offending vertex or edge.
//
// Complexity: O(V + E) expected time, O(V + E) space.
func buildCSR(g Graph) (*csr, error) {
	n := g.Order()
	c := &csr{n: n, start: make([]int, n+1)}

	total := 0
	for v := 0; v < n; v++ {
		c.start[v] = total
		total += g.Degree(v)
	}
	c.start[n] = total
	c.adj = make([]int, total)
	c.edge = make([]int, total)
	c.index = make(map[int64]int, total/2)
	c.eu = make([]int, 0, total/2)
	c.ev = make([]int, 0, total/2)
	mirrored := make([]int, 0, total/2)

	for v := 0; v < n; v++ {
		base := c.start[v]
		for k := 0; k < c.start[v+1]-base; k++ {
			w := g.Neighbor(v, k)
			switch {
			case w < 0 || w >= n:
				return nil, fmt.Errorf("%w: vertex %d lists %d (V=%d)", ErrNeighborRange, v, w, n)
			case w == v:
				return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, v)
			}
			key := edgeKey(n, v, w)
			e, seen := c.index[key]
			if v < w {
				if seen {
					return nil, fmt.Errorf("%w: %d–%d", ErrParallelEdge, v, w)
				}
				e = len(c.eu)
				c.index[key] = e
				c.eu = append(c.eu, v)
				c.ev = append(c.ev, w)
				mirrored = append(mirrored, 0)
			} else {
				if !seen {
					return nil, fmt.Errorf("%w: %d lists %d", ErrAsymmetric, v, w)
				}
				mirrored[e]++
				if mirrored[e] > 1 {
					return nil, fmt.Errorf("%w: %d–%d", ErrParallelEdge, v, w)
				}
			}
			c.adj[base+k] = w
			c.edge[base+k] = e
		}
	}
	for e, cnt := range mirrored {
		if cnt == 0 {
			return nil, fmt.Errorf("%w: %d lists %d", ErrAsymmetric, c.eu[e], c.ev[e])
		}
	}

	return c, nil
}

// edges returns the number of undirected edges.
func (c *csr) edges() int { return len(c.eu) }

// edgeID returns the id of edge u–v, or none.
func (c *csr) edgeID(u, v int) int {
	if e, ok := c.index[edgeKey(c.n, u, v)]; ok {
		return e
	}

	return none
}

// other returns the endpoint of e opposite to v.
func (c *csr) other(e, v int) int {
	if c.eu[e] == v {
		return c.ev[e]
	}

	return c.eu[e]
}
