package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/talent-pipeline/internal/health"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// handleGetThresholds returns the organization's active thresholds, creating
// the defaults if none exist yet.
func (s *Server) handleGetThresholds(w http.ResponseWriter, r *http.Request) {
	orgID, ok := s.orgID(w, r)
	if !ok {
		return
	}

	thresholds, err := s.store.EnsureThresholds(r.Context(), orgID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, thresholds)
}

// handleUpdateThresholds replaces the organization's active thresholds.
// Validation failures report every violation, not just the first.
func (s *Server) handleUpdateThresholds(w http.ResponseWriter, r *http.Request) {
	orgID, ok := s.orgID(w, r)
	if !ok {
		return
	}

	var thresholds types.HealthThresholds
	if err := json.NewDecoder(r.Body).Decode(&thresholds); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	thresholds.OrganizationID = orgID

	saved, err := s.store.SaveThresholds(r.Context(), &thresholds)
	if err != nil {
		var invalid *health.InvalidThresholdsError
		if errors.As(err, &invalid) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":      "invalid thresholds",
				"violations": invalid.Violations,
			})
			return
		}
		s.logger.Error("failed to save thresholds", zap.String("org", orgID.String()), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.logger.Info("thresholds updated", zap.String("org", orgID.String()))
	s.jsonResponse(w, http.StatusOK, saved)
}
