// Package parser reads a cube's sticker layout — as nine lines of ASCII
// sticker characters, or as a 54-character facelet string — and builds
// a cubie.State from it.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
)

// colorToFace maps the six ASCII sticker characters to the home face
// (cubie.U..cubie.B) that color occupies on a solved cube:
// O->U, B->R, W->F, R->D, G->L, Y->B.
var colorToFace = map[byte]int{
	'O': cubie.U,
	'B': cubie.R,
	'W': cubie.F,
	'R': cubie.D,
	'G': cubie.L,
	'Y': cubie.B,
}

// Facelet indices run 0..53, face*9+row*3+col in U,R,F,D,L,B order, each
// face read row-major as viewed from outside it. cornerFacelet[corner]
// lists the three facelet indices that slot touches, clockwise starting
// from its U/D-facing sticker; edgeFacelet is the analogous two-facelet
// table for edges. These are the standard facelet positions a
// cubie-coordinate solver derives its color-to-piece mapping from.
var cornerFacelet = [8][3]int{
	cubie.URF: {8, 9, 20},
	cubie.UFL: {6, 18, 38},
	cubie.ULB: {0, 36, 47},
	cubie.UBR: {2, 45, 11},
	cubie.DFR: {29, 26, 15},
	cubie.DLF: {27, 44, 24},
	cubie.DBL: {33, 53, 42},
	cubie.DRB: {35, 17, 51},
}

var edgeFacelet = [12][2]int{
	cubie.UR: {5, 10},
	cubie.UF: {7, 19},
	cubie.UL: {3, 37},
	cubie.UB: {1, 46},
	cubie.DR: {32, 16},
	cubie.DF: {28, 25},
	cubie.DL: {30, 43},
	cubie.DB: {34, 52},
	cubie.FR: {23, 12},
	cubie.FL: {21, 41},
	cubie.BL: {50, 39},
	cubie.BR: {48, 14},
}

// cornerColor[j] and edgeColor[j] are the home-face colors a solved
// cube shows at piece j's facelet positions, derived once from the
// tables above (a facelet's home color is simply its own face, index/9).
var cornerColor = func() [8][3]int {
	var c [8][3]int
	for j, pos := range cornerFacelet {
		for k, p := range pos {
			c[j][k] = p / 9
		}
	}
	return c
}()

var edgeColor = func() [12][2]int {
	var c [12][2]int
	for j, pos := range edgeFacelet {
		for k, p := range pos {
			c[j][k] = p / 9
		}
	}
	return c
}()

// faceChar is the inverse of colorToFace: the sticker character a face
// displays on a solved cube.
var faceChar = [6]byte{cubie.U: 'O', cubie.R: 'B', cubie.F: 'W', cubie.D: 'R', cubie.L: 'G', cubie.B: 'Y'}

// Render produces the nine-line sticker text for s, the exact inverse
// of Parse/fromFacelet: for each corner/edge slot, place its home-face
// colors at the facelet positions its current orientation puts them.
func Render(s cubie.State) string {
	var facelet [54]int
	for slot, positions := range cornerFacelet {
		piece := s.CornerPerm[slot]
		ori := s.CornerOrient[slot]
		for k := 0; k < 3; k++ {
			facelet[positions[(ori+k)%3]] = cornerColor[piece][k]
		}
	}
	for slot, positions := range edgeFacelet {
		piece := s.EdgePerm[slot]
		ori := s.EdgeOrient[slot]
		if ori == 0 {
			facelet[positions[0]] = edgeColor[piece][0]
			facelet[positions[1]] = edgeColor[piece][1]
		} else {
			facelet[positions[0]] = edgeColor[piece][1]
			facelet[positions[1]] = edgeColor[piece][0]
		}
	}

	row := func(face, r int) string {
		b := make([]byte, 3)
		for c := 0; c < 3; c++ {
			b[c] = faceChar[facelet[face*9+r*3+c]]
		}
		return string(b)
	}

	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString("   " + row(cubie.U, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(row(cubie.L, r) + row(cubie.F, r) + row(cubie.R, r) + row(cubie.B, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString("   " + row(cubie.D, r) + "\n")
	}
	return b.String()
}

// ParseFile opens path and parses it as the nine-line sticker format.
func ParseFile(path string) (cubie.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return cubie.State{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads exactly nine lines from r: lines 0-2 and 6-8 hold the U
// and D faces at columns 3-5, lines 3-5 hold L, F, R, B at columns
// 0-11 in that left-to-right order, three columns each.
func Parse(r io.Reader) (cubie.State, error) {
	sc := bufio.NewScanner(r)
	var lines [9]string
	for i := 0; i < 9; i++ {
		if !sc.Scan() {
			return cubie.State{}, fmt.Errorf("expected 9 lines of cube input, got %d", i)
		}
		lines[i] = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return cubie.State{}, fmt.Errorf("reading cube input: %w", err)
	}

	var facelet [54]int
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			face, err := faceAt(lines[row], col+3)
			if err != nil {
				return cubie.State{}, fmt.Errorf("line %d: %w", row, err)
			}
			facelet[cubie.U*9+row*3+col] = face
		}
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			face, err := faceAt(lines[6+row], col+3)
			if err != nil {
				return cubie.State{}, fmt.Errorf("line %d: %w", 6+row, err)
			}
			facelet[cubie.D*9+row*3+col] = face
		}
	}

	belt := [4]int{cubie.L, cubie.F, cubie.R, cubie.B}
	for row := 0; row < 3; row++ {
		line := lines[3+row]
		for fi, face := range belt {
			for col := 0; col < 3; col++ {
				f, err := faceAt(line, fi*3+col)
				if err != nil {
					return cubie.State{}, fmt.Errorf("line %d: %w", 3+row, err)
				}
				facelet[face*9+row*3+col] = f
			}
		}
	}

	return fromFacelet(facelet)
}

// ParseFacelets parses a 54-character facelet string, one sticker
// character per facelet index (face*9+row*3+col in U,R,F,D,L,B order,
// each face read row-major), the single-line alternative to Parse's
// nine-line grid.
func ParseFacelets(s string) (cubie.State, error) {
	if len(s) != 54 {
		return cubie.State{}, fmt.Errorf("expected 54-character facelet string, got %d characters", len(s))
	}

	var facelet [54]int
	for i := 0; i < 54; i++ {
		face, ok := colorToFace[s[i]]
		if !ok {
			return cubie.State{}, fmt.Errorf("position %d: unrecognized sticker %q", i, s[i])
		}
		facelet[i] = face
	}
	return fromFacelet(facelet)
}

func faceAt(line string, col int) (int, error) {
	if col >= len(line) {
		return 0, fmt.Errorf("column %d missing (line too short)", col)
	}
	face, ok := colorToFace[line[col]]
	if !ok {
		return 0, fmt.Errorf("column %d: unrecognized sticker %q", col, line[col])
	}
	return face, nil
}

// fromFacelet runs the standard facelet-to-cubie derivation: for each
// corner/edge slot, find the rotation whose first facelet carries the
// U/D color, then identify the piece by the remaining facelet colors.
func fromFacelet(facelet [54]int) (cubie.State, error) {
	var s cubie.State

	for slot, positions := range cornerFacelet {
		ori := 0
		for ; ori < 3; ori++ {
			c := facelet[positions[ori]]
			if c == cubie.U || c == cubie.D {
				break
			}
		}
		if ori == 3 {
			return cubie.State{}, fmt.Errorf("corner %d: no U/D sticker among its three facelets", slot)
		}
		col1 := facelet[positions[(ori+1)%3]]
		col2 := facelet[positions[(ori+2)%3]]

		piece := -1
		for j := 0; j < 8; j++ {
			if cornerColor[j][1] == col1 && cornerColor[j][2] == col2 {
				piece = j
				break
			}
		}
		if piece < 0 {
			return cubie.State{}, fmt.Errorf("corner %d: no piece matches colors %d/%d", slot, col1, col2)
		}
		s.CornerPerm[slot] = piece
		s.CornerOrient[slot] = ori
	}

	for slot, positions := range edgeFacelet {
		a := facelet[positions[0]]
		b := facelet[positions[1]]

		piece, ori := -1, 0
		for j := 0; j < 12; j++ {
			switch {
			case edgeColor[j][0] == a && edgeColor[j][1] == b:
				piece, ori = j, 0
			case edgeColor[j][0] == b && edgeColor[j][1] == a:
				piece, ori = j, 1
			default:
				continue
			}
			break
		}
		if piece < 0 {
			return cubie.State{}, fmt.Errorf("edge %d: no piece matches colors %d/%d", slot, a, b)
		}
		s.EdgePerm[slot] = piece
		s.EdgeOrient[slot] = ori
	}

	return s, nil
}
