package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// handleMatch scores one candidate against one job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.engine.Score(req.Candidate, req.Job)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleBatchMatch scores a set of candidates against one job. Candidates
// that cannot be scored come back with a null result rather than a score.
func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := s.engine.ScoreAll(r.Context(), req.Candidates, req.Job)
	if err != nil {
		s.logger.Error("batch scoring failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":  req.Job.ID,
		"matches": matches,
	})
}

// handleBias analyzes a job posting for biased language.
func (s *Server) handleBias(w http.ResponseWriter, r *http.Request) {
	var req types.BiasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis := s.analyzer.AnalyzePosting(req.Title, req.Description)
	s.jsonResponse(w, http.StatusOK, analysis)
}
