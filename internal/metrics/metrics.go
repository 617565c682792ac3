// Package metrics provides pure, stateless conversions from raw recruiting
// counts into bounded 0-100 health scores, plus threshold configuration
// defaults, validation, and display formatting.
package metrics

import (
	"math"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// CandidateVolumeHealth scores the active-candidates-per-open-position ratio
// against the target. No open positions means the pipeline is trivially healthy.
func CandidateVolumeHealth(activeCandidates, openPositions int, targetCandidatesPerJob float64) int {
	if openPositions == 0 {
		return 100
	}

	candidatesPerJob := float64(activeCandidates) / float64(openPositions)
	health := candidatesPerJob / targetCandidatesPerJob * 100

	return clampRound(health)
}

// ApplicationRateHealth scores the trailing-week application count against the
// weekly target.
func ApplicationRateHealth(weeklyApplications int, targetWeeklyApplications float64) int {
	health := float64(weeklyApplications) / targetWeeklyApplications * 100
	return clampRound(health)
}

// TimeToFillHealth scores average days-to-fill against the acceptable maximum:
// at or under the maximum is perfect, beyond it the score decays linearly to 0.
func TimeToFillHealth(avgDaysToFill, maxTimeToFill float64) int {
	if avgDaysToFill <= maxTimeToFill {
		return 100
	}

	health := math.Max(0, 100-(avgDaysToFill-maxTimeToFill)/maxTimeToFill*100)
	return int(math.Round(health))
}

// DiversityHealth scores the diverse-candidate ratio against the target ratio.
// An empty candidate pool scores 0.
func DiversityHealth(diverseCandidates, totalCandidates int, targetDiversityRatio float64) int {
	if totalCandidates == 0 {
		return 0
	}

	ratio := float64(diverseCandidates) / float64(totalCandidates)
	health := ratio / targetDiversityRatio * 100

	return clampRound(health)
}

// OverallHealthScore combines the four sub-scores using the organization's
// percent-of-100 weight vector. The result is not separately clamped: with
// weights summing to 100 and bounded sub-scores it is bounded by construction.
func OverallHealthScore(m types.HealthMetrics, weights types.ThresholdWeights) int {
	score := float64(m.CandidateVolumeHealth)*float64(weights.CandidateVolume)/100 +
		float64(m.ApplicationRateHealth)*float64(weights.ApplicationRate)/100 +
		float64(m.TimeToFillHealth)*float64(weights.TimeToFill)/100 +
		float64(m.DiversityHealth)*float64(weights.DiversityRatio)/100

	return int(math.Round(score))
}

// StatusFromScore maps an overall score to a health status using the
// organization's score cutoffs.
func StatusFromScore(score int, thresholds *types.HealthThresholds) string {
	if score >= thresholds.HealthyScoreMin {
		return types.StatusHealthy
	}
	if score >= thresholds.WarningScoreMin {
		return types.StatusWarning
	}
	return types.StatusCritical
}

// CandidateToJobRatio reports candidates per job, rounded to two decimals.
func CandidateToJobRatio(totalCandidates, totalJobs int) float64 {
	if totalJobs == 0 {
		return 0
	}
	ratio := float64(totalCandidates) / float64(totalJobs)
	return math.Round(ratio*100) / 100
}

// ConversionRate reports hires as a percentage of applications, rounded to one
// decimal.
func ConversionRate(hiredCount, totalApplications int) float64 {
	if totalApplications == 0 {
		return 0
	}
	rate := float64(hiredCount) / float64(totalApplications) * 100
	return math.Round(rate*10) / 10
}

// ValidHealthScore reports whether a score is within the 0-100 bounds.
func ValidHealthScore(score int) bool {
	return score >= 0 && score <= 100
}

// ValidPercentage reports whether a percentage value is within 0-100.
func ValidPercentage(value float64) bool {
	return value >= 0 && value <= 100
}

func clampRound(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}
