// Package web exposes the two-phase solver as JSON-over-HTTP: POST
// /api/solve and GET /api/health, built on a gorilla/mux router. It
// carries no shell-out endpoint and no static/terminal playground —
// see DESIGN.md for why handleExec was dropped rather than adapted.
package web

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/lennartkoopmans/kociemba/internal/tables"
)

// Limits bounds every request's search, mirroring the CLI's solve/serve
// flags so both entry points share the same defaults.
type Limits struct {
	MaxDepth       int
	MaxPhase2      int
	TimeoutSeconds int
}

func (l Limits) timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

type Server struct {
	router *mux.Router
	tb     *tables.Tables
	log    zerolog.Logger
	limits Limits
}

// NewServer builds a router sharing tb (an immutable, already-built
// table handle) and log across every request.
func NewServer(tb *tables.Tables, log zerolog.Logger, limits Limits) *Server {
	s := &Server{
		router: mux.NewRouter(),
		tb:     tb,
		log:    log,
		limits: limits,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}
