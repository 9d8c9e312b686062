package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rickgao/options-data/internal/analyzer"
)

// Runner runs one analysis pass. Satisfied by *analyzer.Analyzer.
type Runner interface {
	Run(ctx context.Context) (*analyzer.Result, error)
}

// Server serves the analyzer API.
type Server struct {
	analyzer Runner
	router   *mux.Router
	logger   *slog.Logger
}

// New creates a Server around an analyzer.
func New(a Runner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		analyzer: a,
		logger:   logger,
	}

	r := mux.NewRouter()
	r.Use(s.requestID, s.logRequests, corsHeaders)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/options/top", s.handleTopOptions).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleTopOptions runs the analysis pipeline and maps its result onto HTTP
// status codes.
func (s *Server) handleTopOptions(w http.ResponseWriter, r *http.Request) {
	res, err := s.analyzer.Run(r.Context())
	if err != nil {
		s.logger.Error("analysis run failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, &analyzer.Result{
			Error: err.Error(),
		})
		return
	}

	status := http.StatusOK
	switch res.Kind {
	case analyzer.FailureNoData:
		status = http.StatusNotFound
	case analyzer.FailureQuery, analyzer.FailureTimeout:
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, res)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
