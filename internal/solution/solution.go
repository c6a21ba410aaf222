// Package solution serializes a move-index sequence into a compact
// output format: face letters repeated once per quarter turn, with no
// separators, primes, or numbers.
package solution

import "strings"

// faceLetters indexes by cubie.U..cubie.B (0..5) without importing
// cubie, keeping this package a leaf the CLI and web layers can both
// depend on without pulling in the cubie-level model.
var faceLetters = [6]byte{'U', 'R', 'F', 'D', 'L', 'B'}

// Format renders moves (each 3*face+turn, turn 0..2 meaning 1..3 quarter
// turns) as a single line: a quarter turn emits one letter, a half turn
// two, a three-quarter turn three. An empty slice formats as "".
func Format(moves []int) string {
	var b strings.Builder
	for _, m := range moves {
		face := m / 3
		turns := m%3 + 1
		for i := 0; i < turns; i++ {
			b.WriteByte(faceLetters[face])
		}
	}
	return b.String()
}

// Len reports the character length Format(moves) would produce, without
// allocating, for callers that only need the count.
func Len(moves []int) int {
	n := 0
	for _, m := range moves {
		n += m%3 + 1
	}
	return n
}
