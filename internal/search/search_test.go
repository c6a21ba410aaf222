package search

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
	"github.com/lennartkoopmans/kociemba/internal/tables"
)

func buildTables(t *testing.T) *tables.Tables {
	t.Helper()
	tb, err := tables.Build(zerolog.Nop())
	require.NoError(t, err)
	return tb
}

func scramble(moves ...int) cubie.State {
	s := cubie.Solved()
	for _, m := range moves {
		s.ApplyMove(m)
	}
	return s
}

// replay applies a solution's moves to cube and reports whether the
// result is solved, the way a CLI caller verifies Solve's output.
func replay(cube cubie.State, moves []int) bool {
	for _, m := range moves {
		cube.ApplyMove(m)
	}
	return cube.IsSolved()
}

func TestSolveAlreadySolvedReturnsEmpty(t *testing.T) {
	tb := buildTables(t)
	moves, err := Solve(cubie.Solved(), tb, 25, defaultMaxPhase2, 10*time.Second)
	require.NoError(t, err)
	require.Empty(t, moves)
}

func TestSolveSingleMoveScramble(t *testing.T) {
	tb := buildTables(t)
	cube := scramble(3*cubie.U + 0) // single U
	moves, err := Solve(cube, tb, 25, defaultMaxPhase2, 10*time.Second)
	require.NoError(t, err)
	require.LessOrEqual(t, len(moves), 3)
	require.True(t, replay(cube, moves), "solution %v did not solve the cube", moves)
}

func TestSolveDoubleMoveScramble(t *testing.T) {
	tb := buildTables(t)
	cube := scramble(3*cubie.U+0, 3*cubie.U+0) // U U = U2
	moves, err := Solve(cube, tb, 25, defaultMaxPhase2, 10*time.Second)
	require.NoError(t, err)
	require.LessOrEqual(t, len(moves), 2)
	require.True(t, replay(cube, moves))
}

func TestSolveShortScramble(t *testing.T) {
	tb := buildTables(t)
	// R U R' U', a common short scramble.
	cube := scramble(3*cubie.R+0, 3*cubie.U+0, 3*cubie.R+2, 3*cubie.U+2)
	moves, err := Solve(cube, tb, 25, defaultMaxPhase2, 10*time.Second)
	require.NoError(t, err)
	require.LessOrEqual(t, len(moves), 25)
	require.True(t, replay(cube, moves))
}

func TestSolveSuperflip(t *testing.T) {
	tb := buildTables(t)
	// Superflip: every edge flipped in place, corners untouched. A
	// standard stress case for the two-phase algorithm's worst-case
	// depth; U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2 is one
	// known generator.
	seq := []int{
		3*cubie.U + 0, 3*cubie.R + 1, 3*cubie.F + 0, 3*cubie.B + 0, 3*cubie.R + 0,
		3*cubie.B + 1, 3*cubie.R + 0, 3*cubie.U + 1, 3*cubie.L + 0, 3*cubie.B + 1,
		3*cubie.R + 0, 3*cubie.U + 2, 3*cubie.D + 2, 3*cubie.R + 1, 3*cubie.F + 0,
		3*cubie.R + 2, 3*cubie.L + 0, 3*cubie.B + 1, 3*cubie.U + 1, 3*cubie.F + 1,
	}
	cube := scramble(seq...)
	moves, err := Solve(cube, tb, 25, defaultMaxPhase2, 20*time.Second)
	require.NoError(t, err)
	require.True(t, replay(cube, moves), "solution %v did not solve the cube", moves)
}

func TestSolveRespectsShallowMaxDepth(t *testing.T) {
	tb := buildTables(t)
	// A scramble deep enough that 1 move cannot possibly solve it.
	cube := scramble(3*cubie.R+0, 3*cubie.U+0, 3*cubie.F+0, 3*cubie.L+1)
	_, err := Solve(cube, tb, 1, defaultMaxPhase2, 5*time.Second)
	require.Error(t, err)
	var se *Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, ErrDepthExhausted.Code(), se.Code())
}

func TestSolveRejectsInvalidCube(t *testing.T) {
	tb := buildTables(t)
	var broken cubie.State
	broken.CornerPerm = [8]int{0, 0, 2, 3, 4, 5, 6, 7}
	for i := range broken.EdgePerm {
		broken.EdgePerm[i] = i
	}
	_, err := Solve(broken, tb, 25, defaultMaxPhase2, 5*time.Second)
	require.Error(t, err)
}

func TestCanonicalAllowedRejectsRepeatAndOppositeOrder(t *testing.T) {
	require.False(t, canonicalAllowed(cubie.U, cubie.U))
	require.False(t, canonicalAllowed(cubie.U, cubie.D))
	require.True(t, canonicalAllowed(cubie.D, cubie.U))
	require.True(t, canonicalAllowed(cubie.U, cubie.R))
	require.True(t, canonicalAllowed(-1, cubie.B))
}
