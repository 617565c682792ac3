// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Job status constants
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Application status constants
const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusScreening = "screening"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffer     = "offer"
	ApplicationStatusHired     = "hired"
	ApplicationStatusRejected  = "rejected"
)

// Candidate is a read-only snapshot of a candidate profile as supplied by the
// persistence layer. Scoring never mutates it.
type Candidate struct {
	ID             uuid.UUID `json:"id,omitempty"`
	Name           string    `json:"name,omitempty"`
	Skills         []string  `json:"skills"`
	Experience     float64   `json:"experience"` // years, >= 0
	Education      []string  `json:"education,omitempty"`
	CurrentCompany string    `json:"current_company,omitempty"`
	Status         string    `json:"status,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// Job is a read-only snapshot of a job posting.
type Job struct {
	ID               uuid.UUID `json:"id,omitempty"`
	Title            string    `json:"title"`
	RequiredSkills   []string  `json:"required_skills"`
	NiceToHaveSkills []string  `json:"nice_to_have_skills,omitempty"`
	Experience       float64   `json:"experience"` // required years, >= 0
	Status           string    `json:"status,omitempty"`
	PostedAt         time.Time `json:"posted_at,omitempty"`
}

// Application links a candidate to a job. UpdatedAt is the timestamp of the
// latest status change; for hired applications it marks the hire date.
type Application struct {
	ID          uuid.UUID `json:"id,omitempty"`
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrgSnapshot is the full read-only view of an organization's pipeline used by
// the health calculator. Jobs and Applications being nil (as opposed to empty)
// means the aggregate could not be obtained.
type OrgSnapshot struct {
	OrganizationID uuid.UUID     `json:"organization_id"`
	Candidates     []Candidate   `json:"candidates"`
	Jobs           []Job         `json:"jobs"`
	Applications   []Application `json:"applications"`
	AsOf           time.Time     `json:"as_of,omitempty"` // zero value means "now"
}
