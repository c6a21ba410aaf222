package tables

// unvisited is the build-time sentinel for a pruning-table entry that
// has not yet been reached by the BFS frontier scan.
const unvisited = 15

// packed is a 4-bit-per-entry byte array: the low nibble of byte i
// stores index 2i, the high nibble stores index 2i+1.
type packed []byte

func newPacked(size int) packed {
	p := make(packed, (size+1)/2)
	for i := range p {
		p[i] = unvisited | unvisited<<4
	}
	return p
}

func (p packed) get(i int) int {
	b := p[i/2]
	if i%2 == 0 {
		return int(b & 0x0f)
	}
	return int(b >> 4)
}

func (p packed) set(i, v int) {
	if i%2 == 0 {
		p[i/2] = (p[i/2] &^ 0x0f) | byte(v)
	} else {
		p[i/2] = (p[i/2] &^ 0xf0) | byte(v<<4)
	}
}
