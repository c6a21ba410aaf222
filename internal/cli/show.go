package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
	"github.com/lennartkoopmans/kociemba/internal/notation"
	"github.com/lennartkoopmans/kociemba/internal/parser"
)

var showCmd = &cobra.Command{
	Use:   "show [input_file]",
	Short: "Print a cube's unfolded sticker diagram",
	Long: `Show prints the nine-line sticker diagram for a cube. With no
arguments it shows the solved cube; --scramble builds the cube from a
scramble string instead of reading input_file.

Examples:
  kociemba show
  kociemba show --scramble "R U R' U'"
  kociemba show cube.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble, _ := cmd.Flags().GetString("scramble")
		optimize, _ := cmd.Flags().GetBool("optimize")

		var cube cubie.State
		switch {
		case scramble != "":
			moves, err := notation.ParseSequence(scramble)
			if err != nil {
				return fmt.Errorf("parsing scramble: %w", err)
			}
			if optimize {
				optimized := notation.Optimize(moves)
				fmt.Fprintf(os.Stderr, "optimized scramble: %s\n", notation.FormatSequence(optimized))
				moves = optimized
			}
			cube = cubie.Solved()
			for _, m := range moves {
				cube.ApplyMove(m)
			}
		case len(args) == 1:
			var err error
			cube, err = parser.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
		default:
			cube = cubie.Solved()
		}

		fmt.Print(parser.Render(cube))
		if err := cube.Verify(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().String("scramble", "", "Show the cube after applying a scramble string instead of reading a file")
	showCmd.Flags().Bool("optimize", false, "Collapse redundant same-face moves in --scramble before applying it")
}
