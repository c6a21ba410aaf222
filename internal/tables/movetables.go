package tables

import "github.com/lennartkoopmans/kociemba/internal/cubie"

// moveTable holds, for one coordinate space, the coordinate reached by
// applying each of the 18 moves from each value in the space's range.
type moveTable [][18]int32

// buildMoveTable iterates every value in [0, size), decodes it with set,
// then for each face applies the face's single quarter turn four times,
// recording the coordinate (via get) after each of the first three
// applications — the fourth restores the scratch cubie to its
// pre-face state so it is ready for the next face without a fresh
// decode.
func buildMoveTable(size int, set func(*cubie.State, int), get func(cubie.State) int) moveTable {
	table := make(moveTable, size)
	for i := 0; i < size; i++ {
		var s cubie.State
		set(&s, i)
		for face := 0; face < 6; face++ {
			quarter := 3 * face
			for t := 0; t < 3; t++ {
				s.ApplyMove(quarter)
				table[i][quarter+t] = int32(get(s))
			}
			s.ApplyMove(quarter) // fourth turn: restores identity on this face
		}
	}
	return table
}

func buildTwistMove() moveTable {
	return buildMoveTable(cubie.TwistRange, (*cubie.State).SetTwist, cubie.State.GetTwist)
}

func buildFlipMove() moveTable {
	return buildMoveTable(cubie.FlipRange, (*cubie.State).SetFlip, cubie.State.GetFlip)
}

func buildSliceMove() moveTable {
	return buildMoveTable(cubie.SliceRange, (*cubie.State).SetSlice, cubie.State.GetSlice)
}

func buildCornerPermMove() moveTable {
	return buildMoveTable(cubie.CornerPermRange, (*cubie.State).SetCornerPerm, cubie.State.GetCornerPerm)
}

func buildUDEdgePermMove() moveTable {
	return buildMoveTable(cubie.UDEdgePermRange, (*cubie.State).SetUDEdgePerm, cubie.State.GetUDEdgePerm)
}

func buildURtoULMove() moveTable {
	return buildMoveTable(cubie.EdgeHelperRange, (*cubie.State).SetURtoUL, cubie.State.GetURtoUL)
}

func buildUBtoDFMove() moveTable {
	return buildMoveTable(cubie.EdgeHelperRange, (*cubie.State).SetUBtoDF, cubie.State.GetUBtoDF)
}

// buildMergeTable computes merge[urToUl][ubToDf] -> udEdgePerm for the
// 336 rows of each helper coordinate that can actually arise; conflicting
// pairs (the two helper coordinates disagree on where a shared edge
// belongs) are stored as -1.
func buildMergeTable() [][]int32 {
	merge := make([][]int32, cubie.EdgeHelperKept)
	for i := range merge {
		row := make([]int32, cubie.EdgeHelperKept)
		var a cubie.State
		a.SetURtoUL(i)
		for j := 0; j < cubie.EdgeHelperKept; j++ {
			var b cubie.State
			b.SetUBtoDF(j)
			udEdgePerm, ok := cubie.MergeURtoULandUBtoDF(a, b)
			if !ok {
				row[j] = -1
				continue
			}
			row[j] = int32(udEdgePerm)
		}
		merge[i] = row
	}
	return merge
}

// ParityAfterMove applies the constant parity-toggling rule: every
// quarter turn (1 or 3 quarter turns) flips parity, every half turn
// preserves it.
func ParityAfterMove(parity, move int) int {
	if move%3 != 1 {
		return 1 - parity
	}
	return parity
}
