package matching

// visitedSet tracks visited vertices using generation tokens for O(1) reset.
type visitedSet struct {
	stamp []uint32
	token uint32
}

func newVisitedSet(n int) *visitedSet {
	return &visitedSet{stamp: make([]uint32, n), token: 1}
}

func (s *visitedSet) visit(v int) { s.stamp[v] = s.token }

func (s *visitedSet) visited(v int) bool { return s.stamp[v] == s.token }

// reset starts a new generation; on token overflow the stamps are cleared.
func (s *visitedSet) reset() {
	s.token++
	if s.token == 0 {
		for i := range s.stamp {
			s.stamp[i] = 0
		}
		s.token = 1
	}
}
