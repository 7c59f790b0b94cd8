package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thedevsaddam/govalidator"

	"github.com/kuralverse/thirukural-api/apimodels"
	"github.com/kuralverse/thirukural-api/internal/explainer"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalyzeRequest

	rules := govalidator.MapData{
		"number":      []string{"required", "numeric", "min:1"},
		"kural":       []string{"required"},
		"translation": []string{"required"},
	}
	opts := govalidator.Options{
		Request: r,
		Data:    &req,
		Rules:   rules,
	}
	if e := govalidator.New(opts).ValidateJSON(); len(e) > 0 {
		slog.Debug("analyze request failed validation", "errors", e)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": e})
		return
	}

	// govalidator's required rule accepts whitespace-only strings
	if strings.TrimSpace(req.Kural) == "" || strings.TrimSpace(req.Translation) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "kural and translation must be non-empty",
		})
		return
	}

	result, err := s.explainer.Explain(r.Context(), req)
	if err != nil {
		if errors.Is(err, explainer.ErrInvalidRequest) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		slog.Error("analyze request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		return
	}

	slog.Debug("analyze request completed", "number", result.Number,
		"external_call_used", result.ExternalCallUsed)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Random()
	if err != nil {
		slog.Error("random request failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "dataset unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
