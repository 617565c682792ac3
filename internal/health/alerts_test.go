package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-pipeline/internal/types"
)

func healthyMetrics() types.HealthMetrics {
	return types.HealthMetrics{
		CandidateVolumeHealth: 100,
		ApplicationRateHealth: 100,
		TimeToFillHealth:      100,
		DiversityHealth:       100,
	}
}

func TestGenerateRecommendations_Empty(t *testing.T) {
	assert.Empty(t, generateRecommendations(nil))
}

func TestGenerateRecommendations_TriggerOrder(t *testing.T) {
	recs := generateRecommendations([]string{
		types.TriggerLowDiversityRatio,
		types.TriggerLowCandidateVolume,
	})

	require.Len(t, recs, 8)
	assert.Equal(t, "Review job posting language for inclusivity", recs[0])
	assert.Equal(t, "Post new jobs to attract more candidates", recs[4])
}

func TestGenerateRecommendations_Deduplicates(t *testing.T) {
	recs := generateRecommendations([]string{
		types.TriggerLowCandidateVolume,
		types.TriggerLowCandidateVolume,
	})
	assert.Len(t, recs, 4)
}

func TestGenerateAlerts_NoAlertsWhenHealthy(t *testing.T) {
	assert.Empty(t, generateAlerts(healthyMetrics()))
}

func TestGenerateAlerts_CandidateVolumeCritical(t *testing.T) {
	m := healthyMetrics()
	m.CandidateVolumeHealth = 29

	alerts := generateAlerts(m)
	require.Len(t, alerts, 1)
	assert.Equal(t, types.TriggerLowCandidateVolume, alerts[0].Type)
	assert.Equal(t, types.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "Pipeline Health Critical", alerts[0].Title)
	assert.Len(t, alerts[0].Recommendations, 4)
	assert.Len(t, alerts[0].QuickActions, 3)
	assert.Equal(t, "navigateToJobCreation", alerts[0].QuickActions[0].Action)
}

func TestGenerateAlerts_CandidateVolumeWarningBand(t *testing.T) {
	m := healthyMetrics()
	m.CandidateVolumeHealth = 45

	alerts := generateAlerts(m)
	require.Len(t, alerts, 1)
	assert.Equal(t, types.SeverityWarning, alerts[0].Severity)
	assert.Equal(t, "Low Candidate Volume", alerts[0].Title)
	assert.Len(t, alerts[0].QuickActions, 1)
}

func TestGenerateAlerts_NoVolumeAlertAtAdvisoryFloor(t *testing.T) {
	m := healthyMetrics()
	m.CandidateVolumeHealth = 60

	assert.Empty(t, generateAlerts(m))
}

func TestGenerateAlerts_OtherMetricsBelowFloor(t *testing.T) {
	m := healthyMetrics()
	m.ApplicationRateHealth = 10
	m.TimeToFillHealth = 10
	m.DiversityHealth = 10

	alerts := generateAlerts(m)
	require.Len(t, alerts, 3)
	assert.Equal(t, "Application Rate Critical", alerts[0].Title)
	assert.Equal(t, types.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "Extended Time-to-Fill", alerts[1].Title)
	assert.Equal(t, types.SeverityWarning, alerts[1].Severity)
	assert.Equal(t, "Diversity Concerns", alerts[2].Title)
	assert.Equal(t, types.SeverityWarning, alerts[2].Severity)
}

func TestGenerateAlerts_AdvisoryOnlyMetricsDoNotAlert(t *testing.T) {
	// between the alert floor and the advisory floor only candidate volume
	// produces an alert
	m := healthyMetrics()
	m.ApplicationRateHealth = 45
	m.TimeToFillHealth = 45
	m.DiversityHealth = 45

	assert.Empty(t, generateAlerts(m))
}
