package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/petalhq/petal/internal/llm"
	"github.com/petalhq/petal/internal/store"
)

// Server is the petal HTTP API server.
type Server struct {
	store   *store.Store
	llm     llm.Client // nil when no summarizer is configured
	router  chi.Router
	version string
	started time.Time
	now     func() time.Time
}

// New creates a new Server over the given store. client may be nil, in
// which case the summary endpoints return 503.
func New(st *store.Store, client llm.Client, version string) *Server {
	s := &Server{
		store:   st,
		llm:     client,
		version: version,
		started: time.Now(),
		now:     time.Now,
	}
	s.routes()
	return s
}

// SetClock overrides the reference-date source for week views. Tests only.
func (s *Server) SetClock(now func() time.Time) { s.now = now }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/logs", s.handleUpsertLog)
		r.Get("/logs", s.handleListLogs)
		r.Get("/logs/{date}", s.handleGetLog)
		r.Delete("/logs/{date}", s.handleDeleteLog)
		r.Get("/logs/{date}/summary", s.handleDaySummary)

		r.Get("/week", s.handleWeek)
		r.Get("/week/stats", s.handleWeekStats)
		r.Get("/week/summary", s.handleWeekSummary)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  s.version,
		"uptime":   time.Since(s.started).Seconds(),
		"data_dir": s.store.Dir(),
		"llm":      s.llm != nil,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
