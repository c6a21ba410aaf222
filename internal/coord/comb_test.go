package coord

import "testing"

func TestChooseEdgeCases(t *testing.T) {
	cases := []struct {
		n, k, want int
	}{
		{5, 0, 1},
		{5, 5, 1},
		{5, 6, 0},
		{5, -1, 0},
		{8, 3, 56},
		{12, 4, 495},
		{0, 0, 1},
	}
	for _, c := range cases {
		if got := Choose(c.n, c.k); got != c.want {
			t.Errorf("Choose(%d, %d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{4, 24},
		{8, 40320},
	}
	for _, c := range cases {
		if got := Factorial(c.n); got != c.want {
			t.Errorf("Factorial(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

// TestEncodeDecodeSubsetRoundTrip checks encode(decode(c)) == c across
// the full coordinate range, the round-trip property every coordinate
// encoder/decoder pair must satisfy.
func TestEncodeDecodeSubsetRoundTrip(t *testing.T) {
	const n, setSize, base, sentinel = 12, 4, 0, -1
	max := Choose(n, setSize) * Factorial(setSize)

	perm := make([]int, n)
	for c := 0; c < max; c++ {
		DecodeSubset(c, n, setSize, base, sentinel, perm)
		got := EncodeSubset(perm, n, setSize, base)
		if got != c {
			t.Fatalf("EncodeSubset(DecodeSubset(%d)) = %d, want %d (perm=%v)", c, got, c, perm)
		}
	}
}

func TestDecodeSubsetFillsSentinel(t *testing.T) {
	const n, setSize, base, sentinel = 8, 3, 0, -1
	perm := make([]int, n)
	DecodeSubset(0, n, setSize, base, sentinel, perm)

	occupied := 0
	for _, p := range perm {
		if p == sentinel {
			continue
		}
		if p < base || p >= base+setSize {
			t.Fatalf("decoded slot holds out-of-range piece %d", p)
		}
		occupied++
	}
	if occupied != setSize {
		t.Errorf("expected %d occupied slots, got %d", setSize, occupied)
	}
}

func TestEncodeSubsetIgnoresOtherLabels(t *testing.T) {
	const n, setSize, base = 6, 2, 4
	// Pieces 4,5 occupy positions 1,3; everything else is a "don't care"
	// sentinel (-1) distinct from the subset's own labels.
	perm := []int{-1, 5, -1, 4, -1, -1}
	idx := EncodeSubset(perm, n, setSize, base)

	var decoded [6]int
	DecodeSubset(idx, n, setSize, base, -1, decoded[:])
	if decoded[1] != 5 || decoded[3] != 4 {
		t.Errorf("round trip placed subset pieces at %v, want 5 at index 1 and 4 at index 3", decoded)
	}
}
