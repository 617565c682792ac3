package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Recommended action bands derived from the final match score
const (
	ActionStrongMatch    = "Strong Match - Schedule Interview"
	ActionGoodMatch      = "Good Match - Consider"
	ActionBorderline     = "Borderline - May Need Training"
	ActionNotRecommended = "Not Recommended"
)

// MatchResult is the outcome of scoring one candidate against one job.
// It is created fresh per scoring call and never persisted by this core.
type MatchResult struct {
	MatchScore         int      `json:"match_score"` // 0-100
	TechnicalMatch     int      `json:"technical_match"`
	ExperienceFit      int      `json:"experience_fit"`
	CulturalFit        int      `json:"cultural_fit"`
	SuccessProbability int      `json:"success_probability"`
	MatchingSkills     []string `json:"matching_skills"`
	MissingSkills      []string `json:"missing_skills"`
	RecommendedAction  string   `json:"recommended_action"`
}

// CandidateMatch pairs a candidate with its match result in a batch scoring
// run. Result is nil when the candidate could not be scored at all (missing
// snapshot); callers must treat nil as "unscored", not as a low score.
type CandidateMatch struct {
	CandidateID uuid.UUID    `json:"candidate_id,omitempty"`
	Name        string       `json:"name,omitempty"`
	Result      *MatchResult `json:"result"`
}

// MatchRequest is the HTTP request body for scoring one candidate against one job.
type MatchRequest struct {
	Candidate *Candidate `json:"candidate" validate:"required"`
	Job       *Job       `json:"job" validate:"required"`
}

// BatchMatchRequest scores many candidates against one job.
type BatchMatchRequest struct {
	Candidates []*Candidate `json:"candidates" validate:"required,min=1"`
	Job        *Job         `json:"job" validate:"required"`
}

// BiasRequest is the HTTP request body for bias analysis of a job posting.
// Title is optional; when present it is analyzed together with the description.
type BiasRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description" validate:"required"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BiasRequest using the validator.
func (r *BiasRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
