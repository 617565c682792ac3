package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// orgID parses the {id} path value as a UUID.
func (s *Server) orgID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid organization ID")
		return uuid.Nil, false
	}
	return id, true
}

// handleCalculateHealth runs a fresh health calculation for the organization
// and appends the record to its history.
func (s *Server) handleCalculateHealth(w http.ResponseWriter, r *http.Request) {
	orgID, ok := s.orgID(w, r)
	if !ok {
		return
	}

	snapshot, err := s.store.GetOrganizationSnapshot(r.Context(), orgID)
	if err != nil {
		s.logger.Error("failed to load snapshot", zap.String("org", orgID.String()), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	thresholds, err := s.store.EnsureThresholds(r.Context(), orgID)
	if err != nil {
		s.logger.Error("failed to load thresholds", zap.String("org", orgID.String()), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := s.calculator.Calculate(snapshot, thresholds)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	saved, err := s.store.InsertHealthRecord(r.Context(), record)
	if err != nil {
		s.logger.Error("failed to save health record", zap.String("org", orgID.String()), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.logger.Info("health calculated",
		zap.String("org", orgID.String()),
		zap.Int("score", saved.HealthScore),
		zap.String("status", saved.Status))
	s.jsonResponse(w, http.StatusOK, saved)
}

// handleLatestHealth returns the most recent health record.
func (s *Server) handleLatestHealth(w http.ResponseWriter, r *http.Request) {
	orgID, ok := s.orgID(w, r)
	if !ok {
		return
	}

	record, err := s.store.LatestHealthRecord(r.Context(), orgID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "no health record for organization")
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// handleHealthTrend returns the score history of the last N days
// (?days=N, default 30).
func (s *Server) handleHealthTrend(w http.ResponseWriter, r *http.Request) {
	orgID, ok := s.orgID(w, r)
	if !ok {
		return
	}

	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	points, err := s.store.HealthTrend(r.Context(), orgID, days)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"organization_id": orgID,
		"days":            days,
		"trend":           points,
	})
}
