package cubie

// faceTemplate[f] is the cubie state representing a single clockwise
// quarter turn of face f, expressed as corner/edge permutations and
// orientation deltas. ApplyMove composes these onto the current state
// turn+1 times per move.
var faceTemplate = [6]State{
	U: {
		CornerPerm:   [8]int{3, 0, 1, 2, 4, 5, 6, 7},
		CornerOrient: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EdgePerm:     [12]int{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		EdgeOrient:   [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	R: {
		CornerPerm:   [8]int{4, 1, 2, 0, 7, 5, 6, 3},
		CornerOrient: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		EdgePerm:     [12]int{8, 1, 2, 3, 11, 5, 6, 7, 4, 9, 10, 0},
		EdgeOrient:   [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	F: {
		CornerPerm:   [8]int{1, 5, 2, 3, 0, 4, 6, 7},
		CornerOrient: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		EdgePerm:     [12]int{0, 9, 2, 3, 4, 8, 6, 7, 1, 5, 10, 11},
		EdgeOrient:   [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	D: {
		CornerPerm:   [8]int{0, 1, 2, 3, 5, 6, 7, 4},
		CornerOrient: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EdgePerm:     [12]int{0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11},
		EdgeOrient:   [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	L: {
		CornerPerm:   [8]int{0, 2, 6, 3, 4, 1, 5, 7},
		CornerOrient: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		EdgePerm:     [12]int{0, 1, 10, 3, 4, 5, 9, 7, 8, 2, 6, 11},
		EdgeOrient:   [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	B: {
		CornerPerm:   [8]int{0, 1, 3, 7, 4, 5, 2, 6},
		CornerOrient: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		EdgePerm:     [12]int{0, 1, 2, 11, 4, 5, 6, 10, 8, 9, 3, 7},
		EdgeOrient:   [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// NumMoves is the size of the move index space: 6 faces * 3 turns.
const NumMoves = 18

// Phase2Moves lists the ten G1-preserving moves: U and D admit all three
// quarter-turn powers, R/F/L/B only the half turn.
var Phase2Moves = []int{
	3*U + 0, 3*U + 1, 3*U + 2,
	3*D + 0, 3*D + 1, 3*D + 2,
	3*R + 1,
	3*F + 1,
	3*L + 1,
	3*B + 1,
}

// Face returns the face a move index turns.
func Face(move int) int { return move / 3 }
