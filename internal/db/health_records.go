package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// -----------------------------------------------------------------------------
// Health Record Methods
// -----------------------------------------------------------------------------

// InsertHealthRecord appends a calculated health record to the organization's
// history. Records are never updated; trend queries read the history as-is.
func (db *DB) InsertHealthRecord(ctx context.Context, record *types.HealthRecord) (*types.HealthRecord, error) {
	metricsJSON, err := json.Marshal(record.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metrics: %w", err)
	}
	alertsJSON, err := json.Marshal(record.Alerts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal alerts: %w", err)
	}

	saved := *record
	err = db.pool.QueryRow(ctx,
		`INSERT INTO health_records (organization_id, calculated_at, health_score, status,
			metrics, triggers, recommendations, alerts)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		record.CalculatedBy, record.Timestamp, record.HealthScore, record.Status,
		metricsJSON, record.Triggers, record.Recommendations, alertsJSON,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert health record: %w", err)
	}
	return &saved, nil
}

// LatestHealthRecord retrieves the most recent health record for an
// organization, or nil if none has been calculated yet.
func (db *DB) LatestHealthRecord(ctx context.Context, orgID uuid.UUID) (*types.HealthRecord, error) {
	var record types.HealthRecord
	var metricsJSON, alertsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, organization_id, calculated_at, health_score, status,
		        metrics, COALESCE(triggers, '{}'), COALESCE(recommendations, '{}'), alerts
		 FROM health_records
		 WHERE organization_id = $1
		 ORDER BY calculated_at DESC LIMIT 1`,
		orgID,
	).Scan(&record.ID, &record.CalculatedBy, &record.Timestamp, &record.HealthScore,
		&record.Status, &metricsJSON, &record.Triggers, &record.Recommendations, &alertsJSON)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest health record: %w", err)
	}

	if err := json.Unmarshal(metricsJSON, &record.Metrics); err != nil {
		return nil, fmt.Errorf("failed to parse metrics: %w", err)
	}
	if len(alertsJSON) > 0 {
		if err := json.Unmarshal(alertsJSON, &record.Alerts); err != nil {
			return nil, fmt.Errorf("failed to parse alerts: %w", err)
		}
	}
	return &record, nil
}

// HealthTrend retrieves the health score history of the last N days as compact
// trend points in chronological order.
func (db *DB) HealthTrend(ctx context.Context, orgID uuid.UUID, days int) ([]types.TrendPoint, error) {
	if days <= 0 {
		days = 30
	}

	rows, err := db.pool.Query(ctx,
		`SELECT calculated_at, health_score, status
		 FROM health_records
		 WHERE organization_id = $1 AND calculated_at >= NOW() - make_interval(days => $2)
		 ORDER BY calculated_at ASC`,
		orgID, days,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query health trend: %w", err)
	}
	defer rows.Close()

	points := []types.TrendPoint{}
	for rows.Next() {
		var p types.TrendPoint
		if err := rows.Scan(&p.Timestamp, &p.HealthScore, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan trend point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
