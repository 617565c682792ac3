package health

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonathan/talent-pipeline/internal/metrics"
	"github.com/jonathan/talent-pipeline/internal/types"
	"github.com/jonathan/talent-pipeline/internal/vocab"
)

// Two-tier trigger floors: sub-scores below RecommendationFloor produce
// advisory triggers and recommendation text; sub-scores below AlertFloor
// additionally produce urgent alert objects.
const (
	RecommendationFloor = 60
	AlertFloor          = 30
)

// recentApplicationWindow is the trailing window for the weekly application count.
const recentApplicationWindow = 7 * 24 * time.Hour

// Calculator computes pipeline health records from organization snapshots.
// Each calculation reads a fresh snapshot and emits a brand-new record; the
// calculator itself holds no mutable state.
type Calculator struct {
	nameIndicators []string
}

// NewCalculator builds a calculator using the given language vocabulary's
// diversity name indicators.
func NewCalculator(language *vocab.Language) *Calculator {
	indicators := make([]string, len(language.DiversityNameIndicators))
	for i, ind := range language.DiversityNameIndicators {
		indicators[i] = strings.ToLower(ind)
	}
	return &Calculator{nameIndicators: indicators}
}

// Calculate derives the health record for one organization snapshot. The
// caller is responsible for persisting the result. Thresholds may be nil, in
// which case the documented defaults apply; a non-nil configuration must have
// passed validation. A snapshot with missing jobs or applications aggregates
// fails with ErrDataUnavailable.
func (c *Calculator) Calculate(snapshot *types.OrgSnapshot, thresholds *types.HealthThresholds) (*types.HealthRecord, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("calculating pipeline health: %w", ErrDataUnavailable)
	}
	if snapshot.Jobs == nil {
		return nil, fmt.Errorf("jobs aggregate missing: %w", ErrDataUnavailable)
	}
	if snapshot.Applications == nil {
		return nil, fmt.Errorf("applications aggregate missing: %w", ErrDataUnavailable)
	}

	if thresholds == nil {
		thresholds = metrics.DefaultThresholds(snapshot.OrganizationID)
	} else if violations := metrics.ValidateThresholds(thresholds); len(violations) > 0 {
		return nil, &InvalidThresholdsError{Violations: violations}
	}

	asOf := snapshot.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	activeCandidates := len(snapshot.Candidates)
	openPositions := countOpenPositions(snapshot.Jobs)
	weeklyApplications := countRecentApplications(snapshot.Applications, asOf)
	avgTimeToFill := averageTimeToFill(snapshot.Jobs, snapshot.Applications)
	diverseCount := c.countDiverseCandidates(snapshot.Candidates)
	diversityRatio := 0.0
	if activeCandidates > 0 {
		diversityRatio = float64(diverseCount) / float64(activeCandidates)
	}

	m := types.HealthMetrics{
		ActiveCandidates:    activeCandidates,
		WeeklyApplications:  weeklyApplications,
		AvgTimeToFill:       int(math.Round(avgTimeToFill)),
		OpenPositions:       openPositions,
		CandidateToJobRatio: metrics.CandidateToJobRatio(activeCandidates, len(snapshot.Jobs)),
		DiversityRatio:      diversityRatio,

		CandidateVolumeHealth: metrics.CandidateVolumeHealth(activeCandidates, openPositions, thresholds.MinCandidatesPerJob),
		ApplicationRateHealth: metrics.ApplicationRateHealth(weeklyApplications, thresholds.MinWeeklyApplications),
		TimeToFillHealth:      metrics.TimeToFillHealth(avgTimeToFill, thresholds.MaxTimeToFill),
		DiversityHealth:       metrics.DiversityHealth(diverseCount, activeCandidates, thresholds.MinDiversityRatio),
	}

	healthScore := metrics.OverallHealthScore(m, thresholds.Weights)
	status := metrics.StatusFromScore(healthScore, thresholds)
	triggers := identifyTriggers(m)

	return &types.HealthRecord{
		Timestamp:       asOf,
		HealthScore:     healthScore,
		Status:          status,
		Metrics:         m,
		Triggers:        triggers,
		Recommendations: generateRecommendations(triggers),
		Alerts:          generateAlerts(m),
		CalculatedBy:    snapshot.OrganizationID,
	}, nil
}

func countOpenPositions(jobs []types.Job) int {
	open := 0
	for _, job := range jobs {
		if job.Status == types.JobStatusOpen {
			open++
		}
	}
	return open
}

func countRecentApplications(applications []types.Application, asOf time.Time) int {
	cutoff := asOf.Add(-recentApplicationWindow)
	recent := 0
	for _, app := range applications {
		if !app.CreatedAt.Before(cutoff) && !app.CreatedAt.After(asOf) {
			recent++
		}
	}
	return recent
}

// averageTimeToFill averages ceil(hire - posted) in days across hired
// applications whose job is known. No hires means 0.
func averageTimeToFill(jobs []types.Job, applications []types.Application) float64 {
	postedAt := make(map[string]time.Time, len(jobs))
	for _, job := range jobs {
		postedAt[job.ID.String()] = job.PostedAt
	}

	totalDays := 0.0
	hires := 0
	for _, app := range applications {
		if app.Status != types.ApplicationStatusHired {
			continue
		}
		posted, ok := postedAt[app.JobID.String()]
		if !ok {
			continue
		}
		days := math.Ceil(app.UpdatedAt.Sub(posted).Hours() / 24)
		totalDays += days
		hires++
	}

	if hires == 0 {
		return 0
	}
	return totalDays / float64(hires)
}

// countDiverseCandidates applies the surname-fragment heuristic. This is a
// coarse approximation of pipeline diversity, not a demographic measurement.
func (c *Calculator) countDiverseCandidates(candidates []types.Candidate) int {
	diverse := 0
	for _, candidate := range candidates {
		name := strings.ToLower(candidate.Name)
		for _, indicator := range c.nameIndicators {
			if strings.Contains(name, indicator) {
				diverse++
				break
			}
		}
	}
	return diverse
}

// identifyTriggers names every sub-metric sitting below the advisory floor.
func identifyTriggers(m types.HealthMetrics) []string {
	triggers := make([]string, 0, 4)

	if m.CandidateVolumeHealth < RecommendationFloor {
		triggers = append(triggers, types.TriggerLowCandidateVolume)
	}
	if m.ApplicationRateHealth < RecommendationFloor {
		triggers = append(triggers, types.TriggerLowApplicationRate)
	}
	if m.TimeToFillHealth < RecommendationFloor {
		triggers = append(triggers, types.TriggerHighTimeToFill)
	}
	if m.DiversityHealth < RecommendationFloor {
		triggers = append(triggers, types.TriggerLowDiversityRatio)
	}

	return triggers
}
