package tables

import "github.com/bits-and-blooms/bitset"

// bfsBuild runs a breadth-first search from index 0 (the solved-state
// coordinate combination) over the given move set, using neighbor to
// step from (index, move) to the resulting index, and packs the exact
// distance into a 4-bit nibble per entry.
//
// The BFS frontier is tracked with a bitset rather than a repeated
// full-array scan; both produce the identical packed table, since
// neither changes which move sequences are explored, only how
// already-visited entries are skipped.
func bfsBuild(size int, moves []int, neighbor func(idx, move int) int) packed {
	p := newPacked(size)
	p.set(0, 0)

	frontier := bitset.New(uint(size))
	frontier.Set(0)
	done := 1

	for depth := 0; done < size; depth++ {
		next := bitset.New(uint(size))
		for i, ok := frontier.NextSet(0); ok; i, ok = frontier.NextSet(i + 1) {
			idx := int(i)
			for _, m := range moves {
				nb := neighbor(idx, m)
				if p.get(nb) != unvisited {
					continue
				}
				p.set(nb, depth+1)
				done++
				next.Set(uint(nb))
			}
		}
		frontier = next
	}
	return p
}

var allMoves = func() []int {
	moves := make([]int, 18)
	for i := range moves {
		moves[i] = i
	}
	return moves
}()

func buildSliceTwistPrune(twistMove, sliceMove moveTable) packed {
	const slicePosRange = 495
	size := slicePosRange * 2187
	neighbor := func(idx, move int) int {
		twist := idx / slicePosRange
		slicePos := idx % slicePosRange
		newTwist := int(twistMove[twist][move])
		newSlicePos := int(sliceMove[slicePos*24][move]) / 24
		return slicePosRange*newTwist + newSlicePos
	}
	return bfsBuild(size, allMoves, neighbor)
}

func buildSliceFlipPrune(flipMove, sliceMove moveTable) packed {
	const slicePosRange = 495
	size := slicePosRange * 2048
	neighbor := func(idx, move int) int {
		flip := idx / slicePosRange
		slicePos := idx % slicePosRange
		newFlip := int(flipMove[flip][move])
		newSlicePos := int(sliceMove[slicePos*24][move]) / 24
		return slicePosRange*newFlip + newSlicePos
	}
	return bfsBuild(size, allMoves, neighbor)
}

// buildSliceCornerPrune and buildSliceEdgePrune are restricted to the
// ten G1-preserving moves: within G1 the E-slice edges never leave the
// E-slice positions, so the slice coordinate's combination part stays
// zero and only its 0..23 permutation part (here called sliceLocal)
// moves.
func buildSliceCornerPrune(cornerPermMove, sliceMove moveTable, phase2Moves []int) packed {
	size := 24 * 20160 * 2
	neighbor := func(idx, move int) int {
		parity := idx % 2
		rest := idx / 2
		sliceLocal := rest % 24
		cornerPerm := rest / 24
		newCornerPerm := int(cornerPermMove[cornerPerm][move])
		newSliceLocal := int(sliceMove[sliceLocal][move])
		newParity := ParityAfterMove(parity, move)
		return 2*(24*newCornerPerm+newSliceLocal) + newParity
	}
	return bfsBuild(size, phase2Moves, neighbor)
}

func buildSliceEdgePrune(udEdgePermMove, sliceMove moveTable, phase2Moves []int) packed {
	size := 24 * 20160 * 2
	neighbor := func(idx, move int) int {
		parity := idx % 2
		rest := idx / 2
		sliceLocal := rest % 24
		udEdgePerm := rest / 24
		newUDEdgePerm := int(udEdgePermMove[udEdgePerm][move])
		newSliceLocal := int(sliceMove[sliceLocal][move])
		newParity := ParityAfterMove(parity, move)
		return 2*(24*newUDEdgePerm+newSliceLocal) + newParity
	}
	return bfsBuild(size, phase2Moves, neighbor)
}
