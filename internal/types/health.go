package types

import (
	"time"

	"github.com/google/uuid"
)

// Health status constants
const (
	StatusHealthy  = "healthy"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// Trigger names emitted when a sub-metric falls below its floor
const (
	TriggerLowCandidateVolume = "LOW_CANDIDATE_VOLUME"
	TriggerLowApplicationRate = "LOW_APPLICATION_RATE"
	TriggerHighTimeToFill     = "HIGH_TIME_TO_FILL"
	TriggerLowDiversityRatio  = "LOW_DIVERSITY_RATIO"
)

// Alert severity constants
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Alert frequency constants
const (
	AlertFrequencyImmediate = "immediate"
	AlertFrequencyHourly    = "hourly"
	AlertFrequencyDaily     = "daily"
	AlertFrequencyWeekly    = "weekly"
)

// ThresholdWeights is the weight vector governing how the four sub-scores are
// combined. Components are percent-of-100 and must sum to exactly 100.
type ThresholdWeights struct {
	CandidateVolume int `json:"candidate_volume"`
	ApplicationRate int `json:"application_rate"`
	TimeToFill      int `json:"time_to_fill"`
	DiversityRatio  int `json:"diversity_ratio"`
}

// HealthThresholds is the per-organization threshold configuration. One active
// set exists per organization; updates must pass validation before being saved.
type HealthThresholds struct {
	ID             uuid.UUID `json:"id,omitempty"`
	OrganizationID uuid.UUID `json:"organization_id"`

	MinCandidatesPerJob      float64 `json:"min_candidates_per_job"`
	CriticalCandidatesPerJob float64 `json:"critical_candidates_per_job"`

	MinWeeklyApplications      float64 `json:"min_weekly_applications"`
	CriticalWeeklyApplications float64 `json:"critical_weekly_applications"`

	MaxTimeToFill      float64 `json:"max_time_to_fill"` // days
	CriticalTimeToFill float64 `json:"critical_time_to_fill"`

	MinDiversityRatio      float64 `json:"min_diversity_ratio"`
	CriticalDiversityRatio float64 `json:"critical_diversity_ratio"`

	HealthyScoreMin int `json:"healthy_score_min"`
	WarningScoreMin int `json:"warning_score_min"`

	Weights ThresholdWeights `json:"weights"`

	AlertEnabled   bool   `json:"alert_enabled"`
	EmailAlerts    bool   `json:"email_alerts"`
	InAppAlerts    bool   `json:"in_app_alerts"`
	AlertFrequency string `json:"alert_frequency"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// HealthMetrics holds the raw counts and the four sub-health scores of one
// health calculation.
type HealthMetrics struct {
	ActiveCandidates    int     `json:"active_candidates"`
	WeeklyApplications  int     `json:"weekly_applications"`
	AvgTimeToFill       int     `json:"avg_time_to_fill"` // days
	OpenPositions       int     `json:"open_positions"`
	CandidateToJobRatio float64 `json:"candidate_to_job_ratio"`
	DiversityRatio      float64 `json:"diversity_ratio"`

	CandidateVolumeHealth int `json:"candidate_volume_health"`
	ApplicationRateHealth int `json:"application_rate_health"`
	TimeToFillHealth      int `json:"time_to_fill_health"`
	DiversityHealth       int `json:"diversity_health"`
}

// QuickAction is a UI affordance attached to an alert.
type QuickAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Alert is a structured alert produced when a sub-metric falls below the
// alerting floor. Alerts are regenerated on every calculation; deduplication
// and acknowledgement belong to the notification layer.
type Alert struct {
	Type            string        `json:"type"`
	Severity        string        `json:"severity"`
	Title           string        `json:"title"`
	Message         string        `json:"message"`
	Recommendations []string      `json:"recommendations"`
	QuickActions    []QuickAction `json:"quick_actions"`
}

// HealthRecord is the persisted, append-only outcome of one pipeline health
// calculation. Historical records accumulate to support trend queries.
type HealthRecord struct {
	ID              uuid.UUID     `json:"id,omitempty"`
	Timestamp       time.Time     `json:"timestamp"`
	HealthScore     int           `json:"health_score"` // 0-100
	Status          string        `json:"status"`
	Metrics         HealthMetrics `json:"metrics"`
	Triggers        []string      `json:"triggers"`
	Recommendations []string      `json:"recommendations"`
	Alerts          []Alert       `json:"alerts"`
	CalculatedBy    uuid.UUID     `json:"calculated_by"` // organization ID
}

// TrendPoint is a compact view of one historical health record.
type TrendPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	HealthScore int       `json:"health_score"`
	Status      string    `json:"status"`
}
