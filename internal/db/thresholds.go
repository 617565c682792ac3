package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/health"
	"github.com/jonathan/talent-pipeline/internal/metrics"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// -----------------------------------------------------------------------------
// Health Threshold Methods
// -----------------------------------------------------------------------------

const thresholdColumns = `id, organization_id,
	min_candidates_per_job, critical_candidates_per_job,
	min_weekly_applications, critical_weekly_applications,
	max_time_to_fill, critical_time_to_fill,
	min_diversity_ratio, critical_diversity_ratio,
	healthy_score_min, warning_score_min,
	weight_candidate_volume, weight_application_rate, weight_time_to_fill, weight_diversity_ratio,
	alert_enabled, email_alerts, in_app_alerts, alert_frequency,
	is_active, created_at, updated_at`

// GetActiveThresholds retrieves the active threshold set for an organization,
// or nil if the organization has never configured one.
func (db *DB) GetActiveThresholds(ctx context.Context, orgID uuid.UUID) (*types.HealthThresholds, error) {
	var t types.HealthThresholds
	err := db.pool.QueryRow(ctx,
		`SELECT `+thresholdColumns+`
		 FROM health_thresholds
		 WHERE organization_id = $1 AND is_active = true
		 ORDER BY updated_at DESC LIMIT 1`,
		orgID,
	).Scan(&t.ID, &t.OrganizationID,
		&t.MinCandidatesPerJob, &t.CriticalCandidatesPerJob,
		&t.MinWeeklyApplications, &t.CriticalWeeklyApplications,
		&t.MaxTimeToFill, &t.CriticalTimeToFill,
		&t.MinDiversityRatio, &t.CriticalDiversityRatio,
		&t.HealthyScoreMin, &t.WarningScoreMin,
		&t.Weights.CandidateVolume, &t.Weights.ApplicationRate, &t.Weights.TimeToFill, &t.Weights.DiversityRatio,
		&t.AlertEnabled, &t.EmailAlerts, &t.InAppAlerts, &t.AlertFrequency,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get thresholds: %w", err)
	}
	return &t, nil
}

// SaveThresholds validates and stores a new active threshold set for the
// organization, deactivating any previous set. Invalid thresholds are rejected
// with an InvalidThresholdsError listing every violation.
func (db *DB) SaveThresholds(ctx context.Context, t *types.HealthThresholds) (*types.HealthThresholds, error) {
	if violations := metrics.ValidateThresholds(t); len(violations) > 0 {
		return nil, &health.InvalidThresholdsError{Violations: violations}
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE health_thresholds SET is_active = false, updated_at = NOW()
		 WHERE organization_id = $1 AND is_active = true`,
		t.OrganizationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate previous thresholds: %w", err)
	}

	saved := *t
	err = tx.QueryRow(ctx,
		`INSERT INTO health_thresholds (organization_id,
			min_candidates_per_job, critical_candidates_per_job,
			min_weekly_applications, critical_weekly_applications,
			max_time_to_fill, critical_time_to_fill,
			min_diversity_ratio, critical_diversity_ratio,
			healthy_score_min, warning_score_min,
			weight_candidate_volume, weight_application_rate, weight_time_to_fill, weight_diversity_ratio,
			alert_enabled, email_alerts, in_app_alerts, alert_frequency,
			is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, true)
		 RETURNING id, created_at, updated_at`,
		t.OrganizationID,
		t.MinCandidatesPerJob, t.CriticalCandidatesPerJob,
		t.MinWeeklyApplications, t.CriticalWeeklyApplications,
		t.MaxTimeToFill, t.CriticalTimeToFill,
		t.MinDiversityRatio, t.CriticalDiversityRatio,
		t.HealthyScoreMin, t.WarningScoreMin,
		t.Weights.CandidateVolume, t.Weights.ApplicationRate, t.Weights.TimeToFill, t.Weights.DiversityRatio,
		t.AlertEnabled, t.EmailAlerts, t.InAppAlerts, t.AlertFrequency,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save thresholds: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit thresholds: %w", err)
	}

	saved.IsActive = true
	return &saved, nil
}

// EnsureThresholds returns the organization's active thresholds, creating and
// persisting the defaults when none exist yet.
func (db *DB) EnsureThresholds(ctx context.Context, orgID uuid.UUID) (*types.HealthThresholds, error) {
	existing, err := db.GetActiveThresholds(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	defaults := metrics.DefaultThresholds(orgID)
	return db.SaveThresholds(ctx, defaults)
}
