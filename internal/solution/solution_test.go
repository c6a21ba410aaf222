package solution

import "testing"

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestFormatQuarterHalfThreeQuarter(t *testing.T) {
	cases := []struct {
		move int
		want string
	}{
		{3*0 + 0, "U"},
		{3*0 + 1, "UU"},
		{3*0 + 2, "UUU"},
		{3*1 + 1, "RR"},
		{3*5 + 2, "BBB"},
	}
	for _, c := range cases {
		if got := Format([]int{c.move}); got != c.want {
			t.Errorf("Format([%d]) = %q, want %q", c.move, got, c.want)
		}
	}
}

func TestFormatSequence(t *testing.T) {
	// R U R' U' -> R, U, R(three-quarter), U(three-quarter)
	moves := []int{3*1 + 0, 3*0 + 0, 3*1 + 2, 3*0 + 2}
	want := "RURRRUUU"
	if got := Format(moves); got != want {
		t.Errorf("Format(%v) = %q, want %q", moves, got, want)
	}
}

func TestLenMatchesFormatLength(t *testing.T) {
	moves := []int{3*1 + 0, 3*0 + 2, 3*3 + 1}
	if got, want := Len(moves), len(Format(moves)); got != want {
		t.Errorf("Len = %d, want %d (Format length)", got, want)
	}
}
