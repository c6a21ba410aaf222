// Package notation parses and prints standard face-turn notation (R,
// U', F2, …) as the move indices internal/cubie and internal/search
// operate on. It sits above internal/solution's positional serializer:
// human-typed scrambles in, cubie move indices out.
package notation

import (
	"fmt"
	"strings"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
)

var faceByLetter = map[byte]int{
	'U': cubie.U,
	'R': cubie.R,
	'F': cubie.F,
	'D': cubie.D,
	'L': cubie.L,
	'B': cubie.B,
}

var letterByFace = [6]byte{'U', 'R', 'F', 'D', 'L', 'B'}

// ParseMove parses a single move token ("R", "U'", "F2") into a cubie
// move index (3*face+turn).
func ParseMove(token string) (int, error) {
	if len(token) == 0 {
		return 0, fmt.Errorf("empty move")
	}

	face, ok := faceByLetter[token[0]]
	if !ok {
		return 0, fmt.Errorf("unknown face %q in move %q", token[0], token)
	}

	turn := 0
	switch token[1:] {
	case "":
		turn = 0
	case "2":
		turn = 1
	case "'":
		turn = 2
	default:
		return 0, fmt.Errorf("unrecognized modifier %q in move %q", token[1:], token)
	}

	return 3*face + turn, nil
}

// ParseSequence parses a whitespace-separated scramble string into move
// indices, in order.
func ParseSequence(sequence string) ([]int, error) {
	fields := strings.Fields(sequence)
	moves := make([]int, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMove renders a cubie move index back into standard notation.
func FormatMove(move int) string {
	face := move / 3
	switch move % 3 {
	case 0:
		return string(letterByFace[face])
	case 1:
		return string(letterByFace[face]) + "2"
	default:
		return string(letterByFace[face]) + "'"
	}
}

// FormatSequence renders a move-index sequence as a space-separated
// scramble string.
func FormatSequence(moves []int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = FormatMove(m)
	}
	return strings.Join(parts, " ")
}

// Optimize collapses consecutive moves on the same face into their net
// quarter-turn count, dropping runs that cancel out entirely (total
// quarter turns a multiple of 4). The two-phase search itself never
// emits adjacent same-face moves (its canonical move ordering forbids
// it), so this mainly cleans up human-entered or hand-concatenated
// scrambles.
func Optimize(moves []int) []int {
	if len(moves) == 0 {
		return moves
	}

	out := make([]int, 0, len(moves))
	for _, m := range moves {
		face, turn := m/3, m%3
		if len(out) > 0 {
			lastFace, lastTurn := out[len(out)-1]/3, out[len(out)-1]%3
			if lastFace == face {
				total := (quarterTurns(lastTurn) + quarterTurns(turn)) % 4
				out = out[:len(out)-1]
				if total != 0 {
					out = append(out, 3*face+turnFromQuarterTurns(total))
				}
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// quarterTurns converts a cubie turn (0=CW, 1=half, 2=CCW) to a net
// clockwise quarter-turn count in 1..3.
func quarterTurns(turn int) int {
	switch turn {
	case 0:
		return 1
	case 1:
		return 2
	default:
		return 3
	}
}

// turnFromQuarterTurns is quarterTurns' inverse for a nonzero count.
func turnFromQuarterTurns(n int) int {
	switch n {
	case 1:
		return 0
	case 2:
		return 1
	default:
		return 2
	}
}
