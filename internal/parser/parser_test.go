package parser

import (
	"strings"
	"testing"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
)

const solvedFile = "" +
	"   OOO\n" +
	"   OOO\n" +
	"   OOO\n" +
	"GGGWWWBBBYYY\n" +
	"GGGWWWBBBYYY\n" +
	"GGGWWWBBBYYY\n" +
	"   RRR\n" +
	"   RRR\n" +
	"   RRR\n"

func TestParseSolvedCube(t *testing.T) {
	s, err := Parse(strings.NewReader(solvedFile))
	if err != nil {
		t.Fatalf("Parse solved file: %v", err)
	}
	if !s.IsSolved() {
		t.Errorf("Parse(solvedFile) = %+v, want solved state", s)
	}
	if err := s.Verify(); err != nil {
		t.Errorf("Verify() on parsed solved cube: %v", err)
	}
}

// toFile renders s back into the nine-line sticker format via Render,
// the exact inverse of fromFacelet/Parse, so scrambled states can be
// round-tripped through the parser without hand-deriving sticker colors.
func toFile(s cubie.State) string {
	return Render(s)
}

func TestParseRoundTripsScrambles(t *testing.T) {
	scrambles := [][]int{
		{3*cubie.U + 0},
		{3*cubie.R + 1},
		{3*cubie.F + 2},
		{3*cubie.R + 0, 3*cubie.U + 0, 3*cubie.R + 2, 3*cubie.U + 2},
	}
	for _, moves := range scrambles {
		want := cubie.Solved()
		for _, m := range moves {
			want.ApplyMove(m)
		}

		got, err := Parse(strings.NewReader(toFile(want)))
		if err != nil {
			t.Fatalf("Parse(toFile(%v)): %v", moves, err)
		}
		if got != want {
			t.Errorf("round trip for %v: got %+v, want %+v", moves, got, want)
		}
	}
}

const solvedFacelets = "OOOOOOOOOBBBBBBBBBWWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYY"

func TestParseFacelets(t *testing.T) {
	s, err := ParseFacelets(solvedFacelets)
	if err != nil {
		t.Fatalf("ParseFacelets(solved): %v", err)
	}
	if !s.IsSolved() {
		t.Errorf("ParseFacelets(solvedFacelets) = %+v, want solved state", s)
	}
}

func TestParseFaceletsWrongLength(t *testing.T) {
	_, err := ParseFacelets("OOO")
	if err == nil {
		t.Fatal("expected error for a facelet string that isn't 54 characters")
	}
}

func TestParseFaceletsUnrecognizedSticker(t *testing.T) {
	bad := "X" + solvedFacelets[1:]
	_, err := ParseFacelets(bad)
	if err == nil {
		t.Fatal("expected error for unrecognized sticker character")
	}
}

func TestParseTooFewLines(t *testing.T) {
	_, err := Parse(strings.NewReader("   OOO\n   OOO\n"))
	if err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestParseUnrecognizedSticker(t *testing.T) {
	bad := strings.Replace(solvedFile, "   OOO\n   OOO\n   OOO", "   XOO\n   OOO\n   OOO", 1)
	_, err := Parse(strings.NewReader(bad))
	if err == nil {
		t.Fatal("expected error for unrecognized sticker character")
	}
}

func TestParseInconsistentColoringFailsOutright(t *testing.T) {
	// Every face solid "O": no piece can have the mixed colors a
	// corner or edge derivation needs, so parsing itself should fail.
	bad := "" +
		"   OOO\n   OOO\n   OOO\n" +
		"OOOOOOOOOOOO\n" +
		"OOOOOOOOOOOO\n" +
		"OOOOOOOOOOOO\n" +
		"   OOO\n   OOO\n   OOO\n"
	_, err := Parse(strings.NewReader(bad))
	if err == nil {
		t.Fatal("expected error for a cube with no consistent piece coloring")
	}
}
