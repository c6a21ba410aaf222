// Package search implements the two-phase IDA* solver: an outer
// iterative-deepening search over all 18 moves that drives the cube
// into the G1 coset, handing off at every candidate leaf to an inner
// iterative-deepening search restricted to the ten G1-preserving moves
// that finishes solving it.
package search

import (
	"time"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
	"github.com/lennartkoopmans/kociemba/internal/tables"
)

// maxSearchDepth bounds both phase-1 and phase-2 move stacks; a
// reachable cube never needs a solution anywhere near this long, so it
// only needs to be large enough that a generous maxDepth argument
// can't overflow it.
const maxSearchDepth = 31

// Error reports why Solve could not produce a solution, carrying the
// historical numeric code assigned to each failure mode.
type Error struct {
	code int
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Code() int     { return e.code }

var (
	// ErrDepthExhausted means no solution of at most maxDepth moves was
	// found; for a verified-legal cube this should not happen at the
	// CLI's default maxDepth of 25.
	ErrDepthExhausted = &Error{code: 7, msg: "search exhausted maxDepth without finding a solution"}
	// ErrTimeout means the search's wall-clock budget ran out first.
	ErrTimeout = &Error{code: 8, msg: "search exceeded its time budget"}
)

// solver holds one solve attempt's scratch state: fixed-size arrays
// indexed by depth, allocated fresh per call and never shared across
// goroutines or solves.
type solver struct {
	tb *tables.Tables

	face [maxSearchDepth + 1]int
	turn [maxSearchDepth + 1]int

	twist     [maxSearchDepth + 1]int
	flip      [maxSearchDepth + 1]int
	slicePos  [maxSearchDepth + 1]int
	sliceFull [maxSearchDepth + 1]int

	// sliceLocal holds the slice coordinate's 0..23 permutation part
	// once the search has entered G1 (phase-2 onward); within G1 the
	// combination part is always zero, so this is sliceFull's value
	// there, tracked separately to keep phase-2's bookkeeping explicit.
	sliceLocal [maxSearchDepth + 1]int

	parity     [maxSearchDepth + 1]int
	cornerPerm [maxSearchDepth + 1]int
	urToUl     [maxSearchDepth + 1]int
	ubToDf     [maxSearchDepth + 1]int
	udEdgePerm [maxSearchDepth + 1]int

	maxDepth    int
	maxPhase2   int
	deadline    time.Time
	solutionLen int
}

// defaultMaxPhase2 is the conventional phase-2 ceiling: 10 extra moves
// after reaching G1. Callers that want the full maxDepth-depthPhase1
// budget honored instead can pass a larger value.
const defaultMaxPhase2 = 10

// Solve searches for a move sequence that, applied to cube, reaches the
// solved state, within maxDepth moves and timeout wall-clock time,
// capping phase-2 at maxPhase2 extra moves once phase-1 reaches G1 (pass
// defaultMaxPhase2 for the conventional cap of 10). The returned slice
// holds move indices (0..17, 3*face+turn); an empty, nil-error result
// means cube was already solved.
func Solve(cube cubie.State, tb *tables.Tables, maxDepth, maxPhase2 int, timeout time.Duration) ([]int, error) {
	if err := cube.Verify(); err != nil {
		return nil, err
	}
	if cube.IsSolved() {
		return nil, nil
	}
	if maxDepth > maxSearchDepth {
		maxDepth = maxSearchDepth
	}
	if maxPhase2 <= 0 {
		maxPhase2 = defaultMaxPhase2
	}

	s := &solver{tb: tb, maxDepth: maxDepth, maxPhase2: maxPhase2, deadline: time.Now().Add(timeout)}
	s.twist[0] = cube.GetTwist()
	s.flip[0] = cube.GetFlip()
	slice := cube.GetSlice()
	s.sliceFull[0] = slice
	s.slicePos[0] = slice / 24
	s.cornerPerm[0] = cube.GetCornerPerm()
	s.parity[0] = cube.GetParity()
	s.urToUl[0] = cube.GetURtoUL()
	s.ubToDf[0] = cube.GetUBtoDF()

	for limit := 1; limit <= maxDepth; limit++ {
		if time.Now().After(s.deadline) {
			return nil, ErrTimeout
		}
		if s.phase1(0, -1, limit) {
			return s.moves(s.solutionLen), nil
		}
	}
	return nil, ErrDepthExhausted
}

func (s *solver) moves(n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = 3*s.face[i+1] + s.turn[i+1]
	}
	return out
}

// canonicalAllowed enforces the move-ordering constraint: never repeat
// a face, and on a commuting opposite-face axis (U/D, R/L, F/B) only
// generate the pair in one order to avoid exploring both of two
// equivalent branches.
func canonicalAllowed(lastFace, newFace int) bool {
	if lastFace < 0 {
		return true
	}
	if newFace == lastFace {
		return false
	}
	switch {
	case lastFace == cubie.U && newFace == cubie.D,
		lastFace == cubie.R && newFace == cubie.L,
		lastFace == cubie.F && newFace == cubie.B:
		return false
	}
	return true
}

// phase1 explores depth-exact DFS nodes for the current outer limit: at
// depth == limit it tests whether the node lies in G1 and, if so, hands
// off to phase-2; otherwise it extends the path by one of the 18 moves.
func (s *solver) phase1(depth, lastFace, limit int) bool {
	if depth == limit {
		h1 := max(s.tb.SliceTwistBound(s.twist[depth], s.slicePos[depth]), s.tb.SliceFlipBound(s.flip[depth], s.slicePos[depth]))
		if h1 != 0 {
			return false
		}
		return s.tryPhase2(depth, lastFace, limit)
	}

	if time.Now().After(s.deadline) {
		return false
	}

	for move := 0; move < cubie.NumMoves; move++ {
		face := move / 3
		if !canonicalAllowed(lastFace, face) {
			continue
		}

		twist := int(s.tb.TwistMove[s.twist[depth]][move])
		flip := int(s.tb.FlipMove[s.flip[depth]][move])
		sliceFull := int(s.tb.SliceMove[s.sliceFull[depth]][move])
		slicePos := sliceFull / 24

		h1 := max(s.tb.SliceTwistBound(twist, slicePos), s.tb.SliceFlipBound(flip, slicePos))
		if h1 > limit-(depth+1) {
			continue
		}

		s.twist[depth+1] = twist
		s.flip[depth+1] = flip
		s.sliceFull[depth+1] = sliceFull
		s.slicePos[depth+1] = slicePos
		s.cornerPerm[depth+1] = int(s.tb.CornerPermMove[s.cornerPerm[depth]][move])
		s.parity[depth+1] = tables.ParityAfterMove(s.parity[depth], move)
		s.urToUl[depth+1] = int(s.tb.URtoULMove[s.urToUl[depth]][move])
		s.ubToDf[depth+1] = int(s.tb.UBtoDFMove[s.ubToDf[depth]][move])
		s.face[depth+1] = face
		s.turn[depth+1] = move % 3

		if s.phase1(depth+1, face, limit) {
			return true
		}
	}
	return false
}

// tryPhase2 attempts to finish solving from the phase-1 leaf at
// depthPhase1, searching only the ten G1-preserving moves. It accepts a
// found solution only when either it needed zero phase-2 moves, or its
// first move doesn't violate the same move-ordering constraint across
// the phase-1/phase-2 boundary.
func (s *solver) tryPhase2(depthPhase1, lastFace, limit int) bool {
	maxPhase2 := s.maxDepth - depthPhase1
	if maxPhase2 > s.maxPhase2 {
		maxPhase2 = s.maxPhase2
	}
	if maxPhase2 < 0 {
		return false
	}

	merged := s.tb.Merge[s.urToUl[depthPhase1]][s.ubToDf[depthPhase1]]
	if merged < 0 {
		return false
	}
	s.udEdgePerm[depthPhase1] = int(merged)
	s.sliceLocal[depthPhase1] = s.sliceFull[depthPhase1] % 24

	h2 := max(
		s.tb.SliceCornerBound(s.cornerPerm[depthPhase1], s.sliceLocal[depthPhase1], s.parity[depthPhase1]),
		s.tb.SliceEdgeBound(s.udEdgePerm[depthPhase1], s.sliceLocal[depthPhase1], s.parity[depthPhase1]),
	)
	if h2 > maxPhase2 {
		return false
	}
	if h2 == 0 {
		s.solutionLen = depthPhase1
		return true
	}

	for limit2 := 1; limit2 <= maxPhase2; limit2++ {
		if time.Now().After(s.deadline) {
			return false
		}
		if s.phase2(depthPhase1, depthPhase1, lastFace, limit2) {
			if !s.acceptBoundary(depthPhase1, lastFace) {
				continue
			}
			s.solutionLen = depthPhase1 + limit2
			return true
		}
	}
	return false
}

// acceptBoundary applies the cross-phase move-ordering check: if
// phase-2 contributed at least one move, its first face must satisfy
// the same canonicalAllowed rule relative to the last phase-1 move.
func (s *solver) acceptBoundary(depthPhase1, lastFace int) bool {
	return canonicalAllowed(lastFace, s.face[depthPhase1+1])
}

// phase2 is phase-1's DFS restricted to cubie.Phase2Moves, tracking
// only the coordinates that matter once the cube lies in G1.
func (s *solver) phase2(depthPhase1, depth, lastFace, limit2 int) bool {
	d := depth - depthPhase1
	if d == limit2 {
		h2 := max(
			s.tb.SliceCornerBound(s.cornerPerm[depth], s.sliceLocal[depth], s.parity[depth]),
			s.tb.SliceEdgeBound(s.udEdgePerm[depth], s.sliceLocal[depth], s.parity[depth]),
		)
		return h2 == 0
	}

	for _, move := range cubie.Phase2Moves {
		face := move / 3
		if !canonicalAllowed(lastFace, face) {
			continue
		}

		cornerPerm := int(s.tb.CornerPermMove[s.cornerPerm[depth]][move])
		udEdgePerm := int(s.tb.UDEdgePermMove[s.udEdgePerm[depth]][move])
		sliceLocal := int(s.tb.SliceMove[s.sliceLocal[depth]][move])
		parity := tables.ParityAfterMove(s.parity[depth], move)

		h2 := max(
			s.tb.SliceCornerBound(cornerPerm, sliceLocal, parity),
			s.tb.SliceEdgeBound(udEdgePerm, sliceLocal, parity),
		)
		if h2 > limit2-(d+1) {
			continue
		}

		s.cornerPerm[depth+1] = cornerPerm
		s.udEdgePerm[depth+1] = udEdgePerm
		s.sliceLocal[depth+1] = sliceLocal
		s.parity[depth+1] = parity
		s.face[depth+1] = face
		s.turn[depth+1] = move % 3

		if s.phase2(depthPhase1, depth+1, face, limit2) {
			return true
		}
	}
	return false
}
