package metrics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// Default threshold values applied when an organization has no stored
// configuration.
const (
	DefaultMinCandidatesPerJob      = 10.0
	DefaultCriticalCandidatesPerJob = 5.0

	DefaultMinWeeklyApplications      = 20.0
	DefaultCriticalWeeklyApplications = 10.0

	DefaultMaxTimeToFill      = 30.0
	DefaultCriticalTimeToFill = 60.0

	DefaultMinDiversityRatio      = 0.2
	DefaultCriticalDiversityRatio = 0.1

	DefaultHealthyScoreMin = 80
	DefaultWarningScoreMin = 60
)

// Default weight vector (percent-of-100)
const (
	DefaultCandidateVolumeWeight = 40
	DefaultApplicationRateWeight = 30
	DefaultTimeToFillWeight      = 20
	DefaultDiversityRatioWeight  = 10
)

// DefaultThresholds returns the documented default threshold configuration for
// an organization.
func DefaultThresholds(organizationID uuid.UUID) *types.HealthThresholds {
	return &types.HealthThresholds{
		OrganizationID:             organizationID,
		MinCandidatesPerJob:        DefaultMinCandidatesPerJob,
		CriticalCandidatesPerJob:   DefaultCriticalCandidatesPerJob,
		MinWeeklyApplications:      DefaultMinWeeklyApplications,
		CriticalWeeklyApplications: DefaultCriticalWeeklyApplications,
		MaxTimeToFill:              DefaultMaxTimeToFill,
		CriticalTimeToFill:         DefaultCriticalTimeToFill,
		MinDiversityRatio:          DefaultMinDiversityRatio,
		CriticalDiversityRatio:     DefaultCriticalDiversityRatio,
		HealthyScoreMin:            DefaultHealthyScoreMin,
		WarningScoreMin:            DefaultWarningScoreMin,
		Weights: types.ThresholdWeights{
			CandidateVolume: DefaultCandidateVolumeWeight,
			ApplicationRate: DefaultApplicationRateWeight,
			TimeToFill:      DefaultTimeToFillWeight,
			DiversityRatio:  DefaultDiversityRatioWeight,
		},
		AlertEnabled:   true,
		EmailAlerts:    true,
		InAppAlerts:    true,
		AlertFrequency: types.AlertFrequencyImmediate,
		IsActive:       true,
	}
}

// ValidateThresholds checks a threshold configuration's invariants and returns
// a list of human-readable violations. An empty list means the configuration
// is valid. It never panics or errors; invalid configuration is data, not a
// program fault.
func ValidateThresholds(t *types.HealthThresholds) []string {
	var violations []string

	// Count and day targets divide raw metrics, so zero or negative values
	// would produce unbounded sub-scores.
	targets := []struct {
		name  string
		value float64
	}{
		{"Minimum candidates per job", t.MinCandidatesPerJob},
		{"Critical candidates per job", t.CriticalCandidatesPerJob},
		{"Minimum weekly applications", t.MinWeeklyApplications},
		{"Critical weekly applications", t.CriticalWeeklyApplications},
		{"Maximum time to fill", t.MaxTimeToFill},
		{"Critical time to fill", t.CriticalTimeToFill},
	}
	for _, target := range targets {
		if target.value < 1 {
			violations = append(violations,
				fmt.Sprintf("%s must be at least 1", target.name))
		}
	}

	if t.MinDiversityRatio <= 0 || t.MinDiversityRatio > 1 {
		violations = append(violations,
			"Minimum diversity ratio must be greater than 0 and at most 1")
	}
	if t.CriticalDiversityRatio < 0 || t.CriticalDiversityRatio > 1 {
		violations = append(violations,
			"Critical diversity ratio must be between 0 and 1")
	}

	totalWeight := t.Weights.CandidateVolume + t.Weights.ApplicationRate +
		t.Weights.TimeToFill + t.Weights.DiversityRatio
	if totalWeight != 100 {
		violations = append(violations,
			fmt.Sprintf("Metric weights must sum to 100, currently sum to %d", totalWeight))
	}

	if t.WarningScoreMin >= t.HealthyScoreMin {
		violations = append(violations,
			"Warning score minimum must be less than healthy score minimum")
	}

	if t.CriticalDiversityRatio >= t.MinDiversityRatio {
		violations = append(violations,
			"Critical diversity ratio must be less than minimum diversity ratio")
	}

	return violations
}
