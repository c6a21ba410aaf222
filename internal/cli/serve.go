package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lennartkoopmans/kociemba/internal/tables"
	"github.com/lennartkoopmans/kociemba/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON solve-over-HTTP server",
	Long: `Serve starts an HTTP server exposing POST /api/solve and
GET /api/health. It builds the move and pruning tables once at startup
and shares the resulting handle across every request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		timeoutSeconds, _ := cmd.Flags().GetInt("timeout")
		maxPhase2, _ := cmd.Flags().GetInt("max-phase2")

		tb, err := tables.Build(log)
		if err != nil {
			return fmt.Errorf("building tables: %w", err)
		}

		server := web.NewServer(tb, log, web.Limits{
			MaxDepth:       maxDepth,
			MaxPhase2:      maxPhase2,
			TimeoutSeconds: timeoutSeconds,
		})

		addr := host + ":" + port
		log.Info().Str("addr", addr).Msg("starting server")
		return server.Start(addr)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().Int("max-depth", 25, "Maximum total move count the search will consider")
	serveCmd.Flags().Int("timeout", 10, "Wall-clock search budget per request, in seconds")
	serveCmd.Flags().Int("max-phase2", 10, "Maximum phase-2 move count appended after reaching G1")
}
