package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/petalhq/petal/internal/engine"
	"github.com/petalhq/petal/internal/llm"
	"github.com/petalhq/petal/internal/store"
)

func (s *Server) handleUpsertLog(w http.ResponseWriter, r *http.Request) {
	var sub engine.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := engine.Validate(sub); err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success":    false,
				"error":      ve.Error(),
				"violations": ve.Violations,
			})
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, created, err := s.store.Upsert(sub.Record())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save log")
		return
	}

	message := "Log updated successfully"
	if created {
		message = "Log saved successfully"
	}
	log.Printf("saved log for %s", stored.Date)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": message,
		"created": created,
		"data":    stored,
	})
}

func (s *Server) handleGetLog(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !store.ValidDateKey(date) {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	rec, err := s.store.GetByDate(date)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "log not found for this date")
		return
	case errors.Is(err, store.ErrCorrupt):
		log.Printf("get log %s: %v", date, err)
		writeError(w, http.StatusInternalServerError, "failed to read log file")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to read log file")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    rec,
	})
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	records, corrupt, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read logs directory")
		return
	}
	for _, date := range corrupt {
		log.Printf("list logs: skipping corrupted file for %s", date)
	}

	// Newest first.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    records,
		"count":   len(records),
		"skipped": len(corrupt),
	})
}

func (s *Server) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !store.ValidDateKey(date) {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	err := s.store.Delete(date)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "log not found for this date")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to delete log file")
		return
	}

	log.Printf("deleted log for %s", date)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Log deleted successfully",
	})
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	window, err := engine.BuildWindow(s.store, s.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build week view")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"range": engine.WindowRange(window),
		"days":  window,
	})
}

func (s *Server) handleWeekStats(w http.ResponseWriter, r *http.Request) {
	window, err := engine.BuildWindow(s.store, s.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build week view")
		return
	}

	writeJSON(w, http.StatusOK, engine.Aggregate(window))
}

func (s *Server) handleDaySummary(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !store.ValidDateKey(date) {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}
	if s.llm == nil {
		writeError(w, http.StatusServiceUnavailable, "summarizer not configured")
		return
	}

	rec, err := s.store.GetByDate(date)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "log not found for this date")
		return
	case err != nil:
		log.Printf("day summary %s: %v", date, err)
		writeError(w, http.StatusInternalServerError, "failed to read log file")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	resp, err := s.llm.Complete(ctx, llm.DaySummaryPrompt(rec))
	if err != nil {
		log.Printf("day summary %s: %v", date, err)
		writeError(w, http.StatusBadGateway, "summary generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":    date,
		"petals":  engine.Score(rec),
		"summary": resp.Content,
	})
}

func (s *Server) handleWeekSummary(w http.ResponseWriter, r *http.Request) {
	if s.llm == nil {
		writeError(w, http.StatusServiceUnavailable, "summarizer not configured")
		return
	}

	window, err := engine.BuildWindow(s.store, s.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build week view")
		return
	}
	stats := engine.Aggregate(window)

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	resp, err := s.llm.Complete(ctx, llm.WeekSummaryPrompt(stats, window))
	if err != nil {
		log.Printf("week summary: %v", err)
		writeError(w, http.StatusBadGateway, "summary generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"range":   engine.WindowRange(window),
		"stats":   stats,
		"summary": resp.Content,
	})
}
