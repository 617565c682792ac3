package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// -----------------------------------------------------------------------------
// Organization Snapshot Methods
// -----------------------------------------------------------------------------

// GetOrganizationSnapshot loads the candidates, jobs, and applications of an
// organization into a single read-only view for health calculation. Slices are
// non-nil even when empty; a query failure surfaces as an error instead of a
// partial snapshot.
func (db *DB) GetOrganizationSnapshot(ctx context.Context, orgID uuid.UUID) (*types.OrgSnapshot, error) {
	candidates, err := db.listCandidates(ctx, orgID)
	if err != nil {
		return nil, err
	}

	jobs, err := db.listJobs(ctx, orgID)
	if err != nil {
		return nil, err
	}

	applications, err := db.listApplications(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return &types.OrgSnapshot{
		OrganizationID: orgID,
		Candidates:     candidates,
		Jobs:           jobs,
		Applications:   applications,
		AsOf:           time.Now().UTC(),
	}, nil
}

// GetCandidate retrieves a single candidate by ID, or nil if not found
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	var c types.Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(skills, '{}'), experience, COALESCE(education, '{}'),
		        COALESCE(current_company, ''), status, created_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Skills, &c.Experience, &c.Education,
		&c.CurrentCompany, &c.Status, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

// GetJob retrieves a single job by ID, or nil if not found
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	var j types.Job
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(required_skills, '{}'), COALESCE(nice_to_have_skills, '{}'),
		        experience, status, posted_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.Title, &j.RequiredSkills, &j.NiceToHaveSkills,
		&j.Experience, &j.Status, &j.PostedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

func (db *DB) listCandidates(ctx context.Context, orgID uuid.UUID) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(skills, '{}'), experience, COALESCE(education, '{}'),
		        COALESCE(current_company, ''), status, created_at
		 FROM candidates WHERE organization_id = $1 ORDER BY created_at ASC`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.Candidate{}
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Skills, &c.Experience, &c.Education,
			&c.CurrentCompany, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (db *DB) listJobs(ctx context.Context, orgID uuid.UUID) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, COALESCE(required_skills, '{}'), COALESCE(nice_to_have_skills, '{}'),
		        experience, status, posted_at
		 FROM jobs WHERE organization_id = $1 ORDER BY posted_at ASC`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.Job{}
	for rows.Next() {
		var j types.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.RequiredSkills, &j.NiceToHaveSkills,
			&j.Experience, &j.Status, &j.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (db *DB) listApplications(ctx context.Context, orgID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.job_id, a.candidate_id, a.status, a.created_at, a.updated_at
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.organization_id = $1
		 ORDER BY a.created_at ASC`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	applications := []types.Application{}
	for rows.Next() {
		var a types.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}
