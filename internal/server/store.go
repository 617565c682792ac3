package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// Store is the persistence surface the handlers depend on. *db.DB satisfies
// it; tests substitute an in-memory implementation.
type Store interface {
	GetOrganizationSnapshot(ctx context.Context, orgID uuid.UUID) (*types.OrgSnapshot, error)

	GetActiveThresholds(ctx context.Context, orgID uuid.UUID) (*types.HealthThresholds, error)
	SaveThresholds(ctx context.Context, t *types.HealthThresholds) (*types.HealthThresholds, error)
	EnsureThresholds(ctx context.Context, orgID uuid.UUID) (*types.HealthThresholds, error)

	InsertHealthRecord(ctx context.Context, record *types.HealthRecord) (*types.HealthRecord, error)
	LatestHealthRecord(ctx context.Context, orgID uuid.UUID) (*types.HealthRecord, error)
	HealthTrend(ctx context.Context, orgID uuid.UUID, days int) ([]types.TrendPoint, error)

	Ping(ctx context.Context) error
	Close()
}
