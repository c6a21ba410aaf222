// Package tables builds the move and pruning tables the two-phase
// searcher runs on: seven coordinate move tables, the urToUl/ubToDf
// merge table, and the four packed pruning tables. Build runs once at
// startup and returns an immutable handle; nothing here is package-level
// mutable state, so multiple solvers can share one *Tables across
// goroutines without synchronization.
package tables

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
)

// Tables is the immutable, read-only-after-construction set of
// precomputed coordinate transitions and pruning bounds the searcher
// indexes into. Every field is safe to share across goroutines.
type Tables struct {
	TwistMove      moveTable
	FlipMove       moveTable
	SliceMove      moveTable
	CornerPermMove moveTable
	UDEdgePermMove moveTable
	URtoULMove     moveTable
	UBtoDFMove     moveTable

	Merge [][]int32 // [urToUl][ubToDf] -> udEdgePerm, 336x336, -1 on conflict

	SliceTwistPrune  packed
	SliceFlipPrune   packed
	SliceCornerPrune packed
	SliceEdgePrune   packed
}

// Build computes every table exactly once. It is deterministic: the
// only concurrency is across the four independent pruning-table BFS
// runs, which never share mutable state, so the result does not depend
// on goroutine scheduling.
func Build(log zerolog.Logger) (*Tables, error) {
	start := time.Now()

	t := &Tables{
		TwistMove:      buildTwistMove(),
		FlipMove:       buildFlipMove(),
		SliceMove:      buildSliceMove(),
		CornerPermMove: buildCornerPermMove(),
		UDEdgePermMove: buildUDEdgePermMove(),
		URtoULMove:     buildURtoULMove(),
		UBtoDFMove:     buildUBtoDFMove(),
		Merge:          buildMergeTable(),
	}
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Msg("move and merge tables built")

	pruneStart := time.Now()
	var g errgroup.Group
	g.Go(func() error {
		t.SliceTwistPrune = buildSliceTwistPrune(t.TwistMove, t.SliceMove)
		return nil
	})
	g.Go(func() error {
		t.SliceFlipPrune = buildSliceFlipPrune(t.FlipMove, t.SliceMove)
		return nil
	})
	g.Go(func() error {
		t.SliceCornerPrune = buildSliceCornerPrune(t.CornerPermMove, t.SliceMove, cubie.Phase2Moves)
		return nil
	})
	g.Go(func() error {
		t.SliceEdgePrune = buildSliceEdgePrune(t.UDEdgePermMove, t.SliceMove, cubie.Phase2Moves)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Dur("elapsed", time.Since(pruneStart)).
		Dur("total", time.Since(start)).
		Msg("pruning tables built")

	return t, nil
}

// SliceTwistBound returns the admissible phase-1 lower bound contributed
// by the (twist, slicePos) pruning table.
func (t *Tables) SliceTwistBound(twist, slicePos int) int {
	return t.SliceTwistPrune.get(495*twist + slicePos)
}

// SliceFlipBound returns the admissible phase-1 lower bound contributed
// by the (flip, slicePos) pruning table.
func (t *Tables) SliceFlipBound(flip, slicePos int) int {
	return t.SliceFlipPrune.get(495*flip + slicePos)
}

// SliceCornerBound returns the admissible phase-2 lower bound
// contributed by the (cornerPerm, sliceLocal, parity) pruning table.
// sliceLocal is the slice coordinate's permutation part (0..23); within
// G1 the combination part is always zero.
func (t *Tables) SliceCornerBound(cornerPerm, sliceLocal, parity int) int {
	return t.SliceCornerPrune.get(2*(24*cornerPerm+sliceLocal) + parity)
}

// SliceEdgeBound returns the admissible phase-2 lower bound contributed
// by the (udEdgePerm, sliceLocal, parity) pruning table.
func (t *Tables) SliceEdgeBound(udEdgePerm, sliceLocal, parity int) int {
	return t.SliceEdgePrune.get(2*(24*udEdgePerm+sliceLocal) + parity)
}
