package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
	"github.com/lennartkoopmans/kociemba/internal/notation"
	"github.com/lennartkoopmans/kociemba/internal/parser"
	"github.com/lennartkoopmans/kociemba/internal/search"
	"github.com/lennartkoopmans/kociemba/internal/solution"
	"github.com/lennartkoopmans/kociemba/internal/tables"
)

var solveCmd = &cobra.Command{
	Use:   "solve <input_file> <output_file>",
	Short: "Solve a scrambled cube read from a sticker file",
	Long: `Solve reads a cube state from input_file in the nine-line sticker
format, runs the two-phase search, and writes the solution string to
output_file.

Exit behavior: a missing argument prints usage and exits nonzero; an
invalid cube or an unsolvable-within-limit search prints "Error N" and
exits nonzero; success writes the solution and exits zero.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, outputFile := args[0], args[1]
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		timeoutSeconds, _ := cmd.Flags().GetInt("timeout")
		maxPhase2, _ := cmd.Flags().GetInt("max-phase2")
		scramble, _ := cmd.Flags().GetString("scramble")

		var cube cubie.State
		if scramble != "" {
			moves, err := notation.ParseSequence(scramble)
			if err != nil {
				return fmt.Errorf("parsing scramble: %w", err)
			}
			cube = cubie.Solved()
			for _, m := range moves {
				cube.ApplyMove(m)
			}
		} else {
			var err error
			cube, err = parser.ParseFile(inputFile)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputFile, err)
			}
		}

		tb, err := tables.Build(log)
		if err != nil {
			return fmt.Errorf("building tables: %w", err)
		}

		moves, err := search.Solve(cube, tb, maxDepth, maxPhase2, time.Duration(timeoutSeconds)*time.Second)
		if err != nil {
			type coder interface{ Code() int }
			if c, ok := err.(coder); ok {
				fmt.Fprintf(os.Stderr, "Error %d\n", c.Code())
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}

		out := solution.Format(moves)
		if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outputFile, err)
		}

		log.Info().
			Str("input", inputFile).
			Str("output", outputFile).
			Int("moveCount", len(moves)).
			Msg("solved")
		return nil
	},
}

func init() {
	solveCmd.Flags().Int("max-depth", 25, "Maximum total move count the search will consider")
	solveCmd.Flags().Int("timeout", 10, "Wall-clock search budget, in seconds")
	solveCmd.Flags().Int("max-phase2", 10, "Maximum phase-2 move count appended after reaching G1")
	solveCmd.Flags().String("scramble", "", "Build the input cube from a scramble string instead of input_file")
}
