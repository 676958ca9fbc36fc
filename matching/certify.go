package matching

// certifier runs Edmonds' single-root blossom search. It shares the
// adjacency and the matching with the Matcher but keeps its own scratch.
type certifier struct {
	m       *Matcher
	base    []int
	parent  []int
	used    []bool
	inBloss []bool
	onPath  []bool
	queue   []int
}

// certify searches for an augmenting path from every free vertex and applies
// each one found. It returns the number of augmentations; zero proves the
// matching maximum.
//
// Complexity: O(V · (V + E) · V) worst case, O(V + E) memory.
func (m *Matcher) certify() int {
	c := &certifier{
		m:       m,
		base:    make([]int, m.n),
		parent:  make([]int, m.n),
		used:    make([]bool, m.n),
		inBloss: make([]bool, m.n),
		onPath:  make([]bool, m.n),
		queue:   make([]int, 0, m.n),
	}

	found := 0
	for root := 0; root < m.n; root++ {
		if m.match[root] == Unmatched && c.search(root) {
			found++
		}
	}
	if found > 0 && m.opts.Logger != nil {
		m.opts.Logger.Debug("certification augmented", "paths", found)
	}

	return found
}

// search grows an alternating tree from root, contracting blossoms, and
// augments along the first free vertex it reaches.
func (c *certifier) search(root int) bool {
	m := c.m
	for v := 0; v < m.n; v++ {
		c.base[v] = v
		c.parent[v] = none
		c.used[v] = false
	}
	c.used[root] = true
	c.queue = append(c.queue[:0], root)

	for qh := 0; qh < len(c.queue); qh++ {
		v := c.queue[qh]
		for k := m.g.start[v]; k < m.g.start[v+1]; k++ {
			to := m.g.adj[k]
			if c.base[v] == c.base[to] || m.match[v] == to {
				continue
			}
			if to == root || (m.match[to] != Unmatched && c.parent[m.match[to]] != none) {
				c.contract(v, to)
				continue
			}
			if c.parent[to] != none {
				continue
			}
			c.parent[to] = v
			if m.match[to] == Unmatched {
				c.flip(to)
				return true
			}
			c.used[m.match[to]] = true
			c.queue = append(c.queue, m.match[to])
		}
	}

	return false
}

// contract merges the blossom closed by edge v–to into its base.
func (c *certifier) contract(v, to int) {
	cur := c.lca(v, to)
	for i := range c.inBloss {
		c.inBloss[i] = false
	}
	c.markPath(v, cur, to)
	c.markPath(to, cur, v)
	for i := 0; i < c.m.n; i++ {
		if !c.inBloss[c.base[i]] {
			continue
		}
		c.base[i] = cur
		if !c.used[i] {
			c.used[i] = true
			c.queue = append(c.queue, i)
		}
	}
}

func (c *certifier) lca(a, b int) int {
	m := c.m
	for i := range c.onPath {
		c.onPath[i] = false
	}
	for {
		a = c.base[a]
		c.onPath[a] = true
		if m.match[a] == Unmatched {
			break
		}
		a = c.parent[m.match[a]]
	}
	for {
		b = c.base[b]
		if c.onPath[b] {
			return b
		}
		b = c.parent[m.match[b]]
	}
}

func (c *certifier) markPath(v, b, child int) {
	m := c.m
	for c.base[v] != b {
		c.inBloss[c.base[v]] = true
		c.inBloss[c.base[m.match[v]]] = true
		c.parent[v] = child
		child = m.match[v]
		v = c.parent[m.match[v]]
	}
}

// flip augments along parent/match links ending at the free vertex v.
func (c *certifier) flip(v int) {
	m := c.m
	for v != none {
		pv := c.parent[v]
		ppv := m.match[pv]
		m.match[v] = pv
		m.match[pv] = v
		v = ppv
	}
}
