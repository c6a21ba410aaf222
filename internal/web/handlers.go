package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/lennartkoopmans/kociemba/internal/cubie"
	"github.com/lennartkoopmans/kociemba/internal/notation"
	"github.com/lennartkoopmans/kociemba/internal/parser"
	"github.com/lennartkoopmans/kociemba/internal/search"
	"github.com/lennartkoopmans/kociemba/internal/solution"
)

// SolveRequest carries either a cube layout (Cube, as nine-line sticker
// text or a 54-character facelet string) or a scramble string
// (Scramble) applied to a solved cube; Scramble wins if both are set.
type SolveRequest struct {
	Cube     string `json:"cube"`
	Scramble string `json:"scramble"`
}

type SolveResponse struct {
	Solution  string `json:"solution"`
	MoveCount int    `json:"moveCount"`
	Duration  string `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	var cube cubie.State
	switch {
	case strings.TrimSpace(req.Scramble) != "":
		moves, err := notation.ParseSequence(req.Scramble)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		cube = cubie.Solved()
		for _, m := range moves {
			cube.ApplyMove(m)
		}
	case strings.TrimSpace(req.Cube) != "":
		trimmed := strings.TrimSpace(req.Cube)
		var err error
		if len(trimmed) == 54 && !strings.ContainsAny(trimmed, "\n\r") {
			cube, err = parser.ParseFacelets(trimmed)
		} else {
			cube, err = parser.Parse(strings.NewReader(req.Cube))
		}
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request must set cube or scramble"})
		return
	}

	start := time.Now()
	moves, err := search.Solve(cube, s.tb, s.limits.MaxDepth, s.limits.MaxPhase2, s.limits.timeout())
	elapsed := time.Since(start)
	if err != nil {
		type coder interface{ Code() int }
		resp := errorResponse{Error: err.Error()}
		if c, ok := err.(coder); ok {
			resp.Code = c.Code()
		}
		s.log.Warn().Err(err).Msg("solve request failed")
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		Solution:  solution.Format(moves),
		MoveCount: len(moves),
		Duration:  elapsed.String(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
