// Package server exposes the board solver over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"pathboard/internal/board"
	"pathboard/internal/nav"
	"pathboard/internal/render"
)

type Server struct {
	logger *slog.Logger
	render render.Options
	mux    *http.ServeMux
}

func New(logger *slog.Logger, renderOpts render.Options) *Server {
	s := &Server{
		logger: logger,
		render: renderOpts,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("/api/solve", s.handleSolve)
	s.mux.HandleFunc("/api/gif", s.handleGIF)
	return s
}

// Handler returns the full handler chain.
func (s *Server) Handler() http.Handler {
	return corsMiddleware(s.mux)
}

type solveRequest struct {
	Board string `json:"board"`
}

type pathPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type solveResponse struct {
	Path       []pathPoint `json:"path"`
	ReachedEnd bool        `json:"reachedEnd"`
	Cost       float64     `json:"cost"`
	Solution   string      `json:"solution"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// solveBoard runs the full parse → search pipeline for one request body.
func (s *Server) solveBoard(w http.ResponseWriter, r *http.Request) (*board.Board, []nav.Coord, bool) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST only"})
		return nil, nil, false
	}
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return nil, nil, false
	}
	b, err := board.Parse(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, nil, false
	}
	path, err := b.Solve()
	if err != nil {
		// Parse output always satisfies the search preconditions, so this is
		// an internal fault, not a client one.
		s.logger.Error("search failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return nil, nil, false
	}
	s.logger.Info("solved board",
		"size", b.Grid.Width*b.Grid.Height,
		"steps", len(path),
		"reachedEnd", path[len(path)-1] == b.End,
	)
	return b, path, true
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	b, path, ok := s.solveBoard(w, r)
	if !ok {
		return
	}
	resp := solveResponse{
		Path:       make([]pathPoint, 0, len(path)),
		ReachedEnd: path[len(path)-1] == b.End,
		Cost:       nav.PathCost(path),
		Solution:   board.FormatSolution(b, path),
	}
	for _, c := range path {
		resp.Path = append(resp.Path, pathPoint{X: c.X, Y: c.Y})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGIF(w http.ResponseWriter, r *http.Request) {
	b, path, ok := s.solveBoard(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.EncodeGIF(&buf, b, path, s.render); err != nil {
		s.logger.Error("rendering failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/gif")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error("writing gif response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// corsMiddleware allows browser frontends to call the API directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
