// Package cubie implements the cubie-level model of a 3x3x3 Rubik's
// cube: corner and edge permutations plus orientations, move
// composition, and the integer coordinate encoders/decoders the table
// builder and searcher run on.
package cubie

// Corner piece labels.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge piece labels.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// Face indices, in the order move indices are built from: 3*face+turn.
const (
	U = iota
	R
	F
	D
	L
	B
)

// edgeSentinel marks a "don't care" edge slot in the partial cubies the
// helper coordinate setters build; it is never a meaningful piece value
// in those scratch states (see SetURtoUL/SetUBtoDF/Merge).
const edgeSentinel = 11

// State is the full cubie-level representation: eight corner slots and
// twelve edge slots, each with a permutation and an orientation.
type State struct {
	CornerPerm   [8]int
	CornerOrient [8]int
	EdgePerm     [12]int
	EdgeOrient   [12]int
}

// Solved returns the identity cubie state.
func Solved() State {
	var s State
	for i := 0; i < 8; i++ {
		s.CornerPerm[i] = i
	}
	for i := 0; i < 12; i++ {
		s.EdgePerm[i] = i
	}
	return s
}

// IsSolved reports whether every piece is in its home slot with zero
// orientation.
func (s State) IsSolved() bool {
	solved := Solved()
	return s == solved
}

// multiply composes two cubie states according to the convention
// ApplyMove relies on: the result is "a with b's move applied on top",
// i.e. new[i] = a[b.perm[i]], new_orient[i] = (a.orient[b.perm[i]] +
// b.orient[i]) mod the piece's orientation modulus.
func multiply(a, b State) State {
	var r State
	for i := 0; i < 8; i++ {
		r.CornerPerm[i] = a.CornerPerm[b.CornerPerm[i]]
		r.CornerOrient[i] = (a.CornerOrient[b.CornerPerm[i]] + b.CornerOrient[i]) % 3
	}
	for i := 0; i < 12; i++ {
		r.EdgePerm[i] = a.EdgePerm[b.EdgePerm[i]]
		r.EdgeOrient[i] = (a.EdgeOrient[b.EdgePerm[i]] + b.EdgeOrient[i]) % 2
	}
	return r
}

// ApplyMove applies move index 0..17 (3*face+turn, turn in 0..2 meaning
// turn+1 quarter turns) to s in place.
func (s *State) ApplyMove(move int) {
	face := move / 3
	turns := move%3 + 1
	tmpl := faceTemplate[face]
	cur := *s
	for i := 0; i < turns; i++ {
		cur = multiply(cur, tmpl)
	}
	*s = cur
}

// WithMove returns a copy of s with move applied, leaving s untouched.
func (s State) WithMove(move int) State {
	s.ApplyMove(move)
	return s
}

// cornerParity returns the parity (0 or 1) of CornerPerm's permutation.
func (s State) cornerParity() int {
	return inversionParity(s.CornerPerm[:])
}

// edgeParity returns the parity (0 or 1) of EdgePerm's permutation.
func (s State) edgeParity() int {
	return inversionParity(s.EdgePerm[:])
}

func inversionParity(perm []int) int {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}
