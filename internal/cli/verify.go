package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lennartkoopmans/kociemba/internal/parser"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <input_file>",
	Short: "Check a sticker file's structural invariants",
	Long: `Verify reads a cube state from input_file and checks its
structural invariants (edge permutation, edge parity, corner
permutation, corner parity, parity match), printing "OK" or
"Error N" and exiting 0 or nonzero accordingly.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")

		cube, err := parser.ParseFile(args[0])
		if err != nil {
			if !headless {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
			}
			os.Exit(1)
		}

		if err := cube.Verify(); err != nil {
			type coder interface{ Code() int }
			if c, ok := err.(coder); ok {
				if !headless {
					fmt.Printf("Error %d: %v\n", c.Code(), err)
				} else {
					fmt.Printf("Error %d\n", c.Code())
				}
			} else if !headless {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Println("OK")
		os.Exit(0)
	},
}

func init() {
	verifyCmd.Flags().Bool("headless", false, "Print only \"OK\" or \"Error N\"")
}
