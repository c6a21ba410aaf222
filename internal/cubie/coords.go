package cubie

import "github.com/lennartkoopmans/kociemba/internal/coord"

// Coordinate ranges, per spec: twist 0..2186, flip 0..2047, slice
// 0..11879 (slicePos 0..494), cornerPerm/udEdgePerm 0..20159,
// urToUl/ubToDf 0..1319.
const (
	TwistRange      = 2187
	FlipRange       = 2048
	SliceRange      = 11880
	SlicePosRange   = 495
	CornerPermRange = 20160
	UDEdgePermRange = 20160
	EdgeHelperRange = 1320
	EdgeHelperKept  = 336
)

// GetTwist encodes the first seven corner orientations in base 3; the
// eighth is derived from the sum-to-zero-mod-3 invariant.
func (s State) GetTwist() int {
	ret := 0
	for i := 0; i < 7; i++ {
		ret = ret*3 + s.CornerOrient[i]
	}
	return ret
}

// SetTwist decodes twist and writes CornerOrient, deriving the eighth
// orientation from the invariant.
func (s *State) SetTwist(twist int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		s.CornerOrient[i] = twist % 3
		sum += s.CornerOrient[i]
		twist /= 3
	}
	s.CornerOrient[7] = (3 - sum%3) % 3
}

// GetFlip encodes the first eleven edge orientations in base 2; the
// twelfth is derived from the sum-to-zero-mod-2 invariant.
func (s State) GetFlip() int {
	ret := 0
	for i := 0; i < 11; i++ {
		ret = ret*2 + s.EdgeOrient[i]
	}
	return ret
}

// SetFlip decodes flip and writes EdgeOrient, deriving the twelfth
// orientation from the invariant.
func (s *State) SetFlip(flip int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		s.EdgeOrient[i] = flip % 2
		sum += s.EdgeOrient[i]
		flip /= 2
	}
	s.EdgeOrient[11] = (2 - sum%2) % 2
}

// GetSlice encodes the combined position+permutation of the four
// E-slice edges (FR, FL, BL, BR) among the twelve edge slots.
func (s State) GetSlice() int {
	return coord.EncodeSubset(s.EdgePerm[:], 12, 4, FR)
}

// SetSlice decodes slice, placing the four E-slice edges and filling
// every other slot with the remaining eight edges in ascending order
// (their identity does not matter: GetSlice only reads the E-slice
// edges' positions).
func (s *State) SetSlice(slice int) {
	coord.DecodeSubset(slice, 12, 4, FR, -1, s.EdgePerm[:])
	fillRemaining(s.EdgePerm[:], 12, -1, 0)
}

// GetSlicePos is the combination-only part of GetSlice.
func (s State) GetSlicePos() int {
	return s.GetSlice() / 24
}

// GetCornerPerm encodes the position+permutation of corners URF..DLF
// (0..5) among the eight corner slots.
func (s State) GetCornerPerm() int {
	return coord.EncodeSubset(s.CornerPerm[:], 8, 6, URF)
}

// SetCornerPerm decodes cornerPerm, placing corners 0..5 and filling the
// remaining two slots (6, 7) in order.
func (s *State) SetCornerPerm(idx int) {
	coord.DecodeSubset(idx, 8, 6, URF, -1, s.CornerPerm[:])
	fillRemaining(s.CornerPerm[:], 8, -1, 6)
}

// GetUDEdgePerm encodes the position+permutation of edges UR..DB
// (0..5). Only well-defined when the cube lies in G1 (the E-slice
// edges already occupy FR..BR).
func (s State) GetUDEdgePerm() int {
	return coord.EncodeSubset(s.EdgePerm[:], 12, 6, UR)
}

// SetUDEdgePerm decodes udEdgePerm, placing edges 0..5 in their UD
// slots and edges DL..BR (6..11) filling the remaining six slots in
// order.
func (s *State) SetUDEdgePerm(idx int) {
	coord.DecodeSubset(idx, 12, 6, UR, -1, s.EdgePerm[:])
	fillRemaining(s.EdgePerm[:], 12, -1, DL)
}

// GetURtoUL encodes the position+permutation of edges UR, UF, UL
// (0, 1, 2) among the twelve edge slots.
func (s State) GetURtoUL() int {
	return coord.EncodeSubset(s.EdgePerm[:], 12, 3, UR)
}

// SetURtoUL decodes urToUl, placing edges 0..2 and marking every other
// slot with the sentinel Merge recognizes as "unset".
func (s *State) SetURtoUL(idx int) {
	coord.DecodeSubset(idx, 12, 3, UR, edgeSentinel, s.EdgePerm[:])
}

// GetUBtoDF encodes the position+permutation of edges UB, DR, DF
// (3, 4, 5) among the twelve edge slots.
func (s State) GetUBtoDF() int {
	return coord.EncodeSubset(s.EdgePerm[:], 12, 3, UB)
}

// SetUBtoDF decodes ubToDf, placing edges 3..5 and marking every other
// slot with the sentinel Merge recognizes as "unset".
func (s *State) SetUBtoDF(idx int) {
	coord.DecodeSubset(idx, 12, 3, UB, edgeSentinel, s.EdgePerm[:])
}

// GetParity returns the corner permutation's signature (0 or 1); by the
// global parity invariant it equals the edge permutation's signature.
func (s State) GetParity() int {
	return s.cornerParity()
}

// fillRemaining writes labels base, base+1, ... into every slot of
// perm still holding sentinel, in ascending slot order.
func fillRemaining(perm []int, n, sentinel, base int) {
	next := base
	for i := 0; i < n; i++ {
		if perm[i] == sentinel {
			perm[i] = next
			next++
		}
	}
}

// MergeURtoULandUBtoDF combines a (urToUl set, rest edgeSentinel) and b
// (ubToDf set, rest edgeSentinel) into a's edges overlaid onto b, then
// returns the resulting full UDEdgePerm coordinate. ok is false if the
// two partial placements conflict (same slot claimed by both).
func MergeURtoULandUBtoDF(a, b State) (udEdgePerm int, ok bool) {
	merged := b
	for i := 0; i < 12; i++ {
		if a.EdgePerm[i] != edgeSentinel {
			if merged.EdgePerm[i] != edgeSentinel {
				return -1, false
			}
			merged.EdgePerm[i] = a.EdgePerm[i]
		}
	}
	return coord.EncodeSubset(merged.EdgePerm[:], 12, 6, UR), true
}
