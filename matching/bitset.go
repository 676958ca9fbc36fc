package matching

// bitset is a fixed-size set of vertex indices.
type bitset struct {
	words []uint64
}

func newBitset(n int) *bitset {
	return &bitset{words: make([]uint64, (n+63)/64)}
}

func (b *bitset) set(i int) {
	b.words[i>>6] |= 1 << (uint(i) & 63)
}

func (b *bitset) has(i int) bool {
	return b.words[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b *bitset) clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}
