package health

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-pipeline/internal/metrics"
	"github.com/jonathan/talent-pipeline/internal/types"
	"github.com/jonathan/talent-pipeline/internal/vocab"
)

func defaultCalculator(t *testing.T) *Calculator {
	t.Helper()
	language, err := vocab.DefaultLanguage()
	require.NoError(t, err)
	return NewCalculator(language)
}

func strugglingSnapshot(orgID uuid.UUID, asOf time.Time) *types.OrgSnapshot {
	openJob := types.Job{
		ID:       uuid.New(),
		Title:    "Backend Engineer",
		Status:   types.JobStatusOpen,
		PostedAt: asOf.Add(-40 * 24 * time.Hour),
	}
	closedJob := types.Job{
		ID:       uuid.New(),
		Title:    "Data Analyst",
		Status:   types.JobStatusClosed,
		PostedAt: asOf.Add(-90 * 24 * time.Hour),
	}

	applications := []types.Application{
		// recent applications against the open job
		{ID: uuid.New(), JobID: openJob.ID, Status: types.ApplicationStatusApplied, CreatedAt: asOf.Add(-24 * time.Hour), UpdatedAt: asOf.Add(-24 * time.Hour)},
		{ID: uuid.New(), JobID: openJob.ID, Status: types.ApplicationStatusApplied, CreatedAt: asOf.Add(-24 * time.Hour), UpdatedAt: asOf.Add(-24 * time.Hour)},
		{ID: uuid.New(), JobID: openJob.ID, Status: types.ApplicationStatusScreening, CreatedAt: asOf.Add(-24 * time.Hour), UpdatedAt: asOf.Add(-24 * time.Hour)},
		{ID: uuid.New(), JobID: openJob.ID, Status: types.ApplicationStatusApplied, CreatedAt: asOf.Add(-24 * time.Hour), UpdatedAt: asOf.Add(-24 * time.Hour)},
		// hire 30 days after posting, outside the weekly window
		{ID: uuid.New(), JobID: openJob.ID, Status: types.ApplicationStatusHired, CreatedAt: asOf.Add(-20 * 24 * time.Hour), UpdatedAt: openJob.PostedAt.Add(30 * 24 * time.Hour)},
	}

	return &types.OrgSnapshot{
		OrganizationID: orgID,
		Candidates: []types.Candidate{
			{ID: uuid.New(), Name: "Priya Patel"},
			{ID: uuid.New(), Name: "John Smith"},
		},
		Jobs:         []types.Job{openJob, closedJob},
		Applications: applications,
		AsOf:         asOf,
	}
}

func TestCalculate_StrugglingPipeline(t *testing.T) {
	c := defaultCalculator(t)
	orgID := uuid.New()
	asOf := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	record, err := c.Calculate(strugglingSnapshot(orgID, asOf), nil)
	require.NoError(t, err)

	m := record.Metrics
	assert.Equal(t, 2, m.ActiveCandidates)
	assert.Equal(t, 1, m.OpenPositions)
	assert.Equal(t, 4, m.WeeklyApplications)
	assert.Equal(t, 30, m.AvgTimeToFill)
	assert.Equal(t, 1.0, m.CandidateToJobRatio)
	assert.Equal(t, 0.5, m.DiversityRatio)

	// 2 candidates per open position against a target of 10
	assert.Equal(t, 20, m.CandidateVolumeHealth)
	// 4 weekly applications against a target of 20
	assert.Equal(t, 20, m.ApplicationRateHealth)
	assert.Equal(t, 100, m.TimeToFillHealth)
	assert.Equal(t, 100, m.DiversityHealth)

	// 20*0.4 + 20*0.3 + 100*0.2 + 100*0.1 = 44
	assert.Equal(t, 44, record.HealthScore)
	assert.Equal(t, types.StatusCritical, record.Status)

	assert.Equal(t, []string{
		types.TriggerLowCandidateVolume,
		types.TriggerLowApplicationRate,
	}, record.Triggers)

	assert.Equal(t, orgID, record.CalculatedBy)
	assert.Equal(t, asOf, record.Timestamp)
}

func TestCalculate_StrugglingPipelineAlerts(t *testing.T) {
	c := defaultCalculator(t)
	asOf := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	record, err := c.Calculate(strugglingSnapshot(uuid.New(), asOf), nil)
	require.NoError(t, err)

	require.Len(t, record.Alerts, 2)
	assert.Equal(t, types.SeverityCritical, record.Alerts[0].Severity)
	assert.Equal(t, "Pipeline Health Critical", record.Alerts[0].Title)
	assert.Len(t, record.Alerts[0].QuickActions, 3)
	assert.Equal(t, "Application Rate Critical", record.Alerts[1].Title)

	// recommendations union both triggers' action lists
	assert.Len(t, record.Recommendations, 8)
	assert.Equal(t, "Post new jobs to attract more candidates", record.Recommendations[0])
}

func TestCalculate_HealthyPipeline(t *testing.T) {
	c := defaultCalculator(t)
	asOf := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	candidates := make([]types.Candidate, 0, 10)
	for i := 0; i < 10; i++ {
		name := "Alex Chen"
		if i%2 == 0 {
			name = "Sam Jones"
		}
		candidates = append(candidates, types.Candidate{ID: uuid.New(), Name: name})
	}

	applications := make([]types.Application, 0, 20)
	for i := 0; i < 20; i++ {
		applications = append(applications, types.Application{
			ID:        uuid.New(),
			JobID:     uuid.New(),
			Status:    types.ApplicationStatusApplied,
			CreatedAt: asOf.Add(-2 * 24 * time.Hour),
			UpdatedAt: asOf.Add(-2 * 24 * time.Hour),
		})
	}

	snapshot := &types.OrgSnapshot{
		OrganizationID: uuid.New(),
		Candidates:     candidates,
		Jobs:           []types.Job{{ID: uuid.New(), Status: types.JobStatusOpen, PostedAt: asOf.Add(-10 * 24 * time.Hour)}},
		Applications:   applications,
		AsOf:           asOf,
	}

	record, err := c.Calculate(snapshot, nil)
	require.NoError(t, err)

	assert.Equal(t, types.StatusHealthy, record.Status)
	assert.GreaterOrEqual(t, record.HealthScore, 80)
	assert.Empty(t, record.Triggers)
	assert.Empty(t, record.Alerts)
	assert.Empty(t, record.Recommendations)
}

func TestCalculate_DataUnavailable(t *testing.T) {
	c := defaultCalculator(t)

	_, err := c.Calculate(nil, nil)
	assert.ErrorIs(t, err, ErrDataUnavailable)

	_, err = c.Calculate(&types.OrgSnapshot{Applications: []types.Application{}}, nil)
	assert.ErrorIs(t, err, ErrDataUnavailable)

	_, err = c.Calculate(&types.OrgSnapshot{Jobs: []types.Job{}}, nil)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestCalculate_EmptyAggregatesAreNotMissing(t *testing.T) {
	c := defaultCalculator(t)

	record, err := c.Calculate(&types.OrgSnapshot{
		OrganizationID: uuid.New(),
		Jobs:           []types.Job{},
		Applications:   []types.Application{},
	}, nil)
	require.NoError(t, err)

	// no open positions is healthy volume; no candidates is zero diversity
	assert.Equal(t, 100, record.Metrics.CandidateVolumeHealth)
	assert.Equal(t, 0, record.Metrics.DiversityHealth)
}

func TestCalculate_RejectsInvalidThresholds(t *testing.T) {
	c := defaultCalculator(t)
	asOf := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	thresholds := metrics.DefaultThresholds(uuid.New())
	thresholds.Weights.CandidateVolume = 50 // weights no longer sum to 100

	_, err := c.Calculate(strugglingSnapshot(uuid.New(), asOf), thresholds)
	require.Error(t, err)

	var invalid *InvalidThresholdsError
	require.True(t, errors.As(err, &invalid))
	assert.Len(t, invalid.Violations, 1)
}

func TestCalculate_RejectsZeroTargets(t *testing.T) {
	c := defaultCalculator(t)
	asOf := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// a zero application target would divide the weekly count by zero and
	// push a NaN sub-score into the record
	thresholds := metrics.DefaultThresholds(uuid.New())
	thresholds.MinWeeklyApplications = 0

	record, err := c.Calculate(strugglingSnapshot(uuid.New(), asOf), thresholds)
	require.Error(t, err)
	assert.Nil(t, record)

	var invalid *InvalidThresholdsError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, invalid.Violations, "Minimum weekly applications must be at least 1")
}

func TestAverageTimeToFill_CeilsPartialDays(t *testing.T) {
	posted := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	job := types.Job{ID: uuid.New(), Status: types.JobStatusOpen, PostedAt: posted}

	apps := []types.Application{{
		JobID:     job.ID,
		Status:    types.ApplicationStatusHired,
		UpdatedAt: posted.Add(10*24*time.Hour + time.Hour), // 10 days and one hour
	}}

	assert.Equal(t, 11.0, averageTimeToFill([]types.Job{job}, apps))
}

func TestAverageTimeToFill_NoHires(t *testing.T) {
	assert.Equal(t, 0.0, averageTimeToFill(nil, nil))
}

func TestCountDiverseCandidates(t *testing.T) {
	c := defaultCalculator(t)

	count := c.countDiverseCandidates([]types.Candidate{
		{Name: "Priya Patel"},
		{Name: "Wei Chen"},
		{Name: "John Smith"},
		{Name: ""},
	})
	assert.Equal(t, 2, count)
}
