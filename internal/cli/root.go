// Package cli wires the solver, parser, and table builder into a cobra
// command tree: one rootCmd, subcommands registered in init(), flags
// carrying the solver's tunables as defaults.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "kociemba",
	Short:   "A two-phase Rubik's cube solver",
	Long:    `Kociemba solves a scrambled 3x3x3 cube using Herbert Kociemba's two-phase algorithm.`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	},
}

// log is the single structured logger threaded through every
// subcommand; the search hot path never receives it, since per-node
// logging would dominate a search that explores millions of nodes.
var log zerolog.Logger

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
}
