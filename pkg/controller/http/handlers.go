package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
	"github.com/secmon-lab/briareos/pkg/usecase"
	"github.com/secmon-lab/briareos/pkg/utils/errutil"
	"github.com/secmon-lab/briareos/pkg/utils/safe"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

type classifyRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type classifyResponse struct {
	*model.Result
	ProcessingMS float64 `json:"processing_time_ms"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid classify request body"), http.StatusBadRequest)
		return
	}

	sessionID := model.SessionID(req.SessionID)
	if sessionID == "" {
		sessionID = model.NewSessionID()
	}

	result, err := s.uc.Classify(r.Context(), sessionID, req.Message)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	s.maybeSweep(r.Context())

	respondJSON(w, r, http.StatusOK, classifyResponse{
		Result:       result,
		ProcessingMS: float64(result.ProcessingTime) / float64(time.Millisecond),
	})
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(chi.URLParam(r, "sessionID"))

	if err := s.uc.ClearSession(r.Context(), sessionID); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]string{
		"status":     "cleared",
		"session_id": sessionID.String(),
	})
}

func (s *Server) handleExportSession(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(chi.URLParam(r, "sessionID"))

	blob, err := s.uc.ExportSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, blob)
}

func (s *Server) handleImportSession(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(chi.URLParam(r, "sessionID"))

	var blob model.SessionExport
	if err := json.NewDecoder(r.Body).Decode(&blob); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid import request body"), http.StatusBadRequest)
		return
	}

	if err := s.uc.ImportSession(r.Context(), sessionID, &blob); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]string{
		"status":     "imported",
		"session_id": sessionID.String(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.uc.Stats(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, stats)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	type categoryResponse struct {
		ID           string `json:"id"`
		Description  string `json:"description"`
		Priority     string `json:"priority"`
		Agent        string `json:"agent"`
		KeywordCount int    `json:"keyword_count"`
	}

	tax := s.uc.Engine().Taxonomy()
	categories := make([]categoryResponse, 0)
	for _, id := range tax.Categories() {
		categories = append(categories, categoryResponse{
			ID:           id.String(),
			Description:  tax.Description(id),
			Priority:     tax.Tier(id).String(),
			Agent:        tax.Agent(id).String(),
			KeywordCount: len(tax.Keywords(id)),
		})
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	type agentResponse struct {
		ID             string `json:"id"`
		Specialization string `json:"specialization"`
	}

	agents := make([]agentResponse, 0)
	for _, agent := range types.AllAgentTypes() {
		agents = append(agents, agentResponse{
			ID:             agent.String(),
			Specialization: agent.Specialization(),
		})
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"agents": agents})
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	removed, err := s.uc.Sweep(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"status":  "swept",
		"removed": removed,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := s.uc.Stats(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"status":     "ok",
		"categories": len(s.uc.Engine().Taxonomy().Categories()),
		"sessions":   stats.TotalSessions,
	})
}
