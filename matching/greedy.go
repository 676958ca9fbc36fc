package matching

import "sort"

// greedy matches vertices in order of increasing degree (ties by index),
// each to its first unmatched neighbor in adjacency order. It returns the
// number of pairs formed.
//
// Complexity: O(V log V + E).
func (m *Matcher) greedy() int {
	order := make([]int, m.n)
	for v := range order {
		order[v] = v
	}
	deg := func(v int) int { return m.g.start[v+1] - m.g.start[v] }
	sort.SliceStable(order, func(a, b int) bool { return deg(order[a]) < deg(order[b]) })

	pairs := 0
	for _, v := range order {
		if m.match[v] != Unmatched {
			continue
		}
		for k := m.g.start[v]; k < m.g.start[v+1]; k++ {
			if w := m.g.adj[k]; m.match[w] == Unmatched {
				m.match[v], m.match[w] = w, v
				pairs++
				break
			}
		}
	}

	return pairs
}
