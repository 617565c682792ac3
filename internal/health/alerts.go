package health

import (
	"github.com/jonathan/talent-pipeline/internal/types"
)

// Action strings per trigger, used for both recommendations and alert bodies
var triggerActions = map[string][]string{
	types.TriggerLowCandidateVolume: {
		"Post new jobs to attract more candidates",
		"Activate candidate rediscovery from your database",
		"Expand sourcing to new job boards",
		"Review job descriptions for appeal",
	},
	types.TriggerLowApplicationRate: {
		"Promote jobs on social media",
		"Optimize job descriptions for SEO",
		"Simplify application process",
		"Enable quick apply features",
	},
	types.TriggerHighTimeToFill: {
		"Review screening process bottlenecks",
		"Increase sourcing efforts for hard-to-fill roles",
		"Consider internal mobility options",
		"Adjust role requirements if too restrictive",
	},
	types.TriggerLowDiversityRatio: {
		"Review job posting language for inclusivity",
		"Partner with diverse candidate networks",
		"Implement blind recruitment practices",
		"Train recruiters on unconscious bias",
	},
}

// generateRecommendations unions the fixed action lists of every active
// trigger, deduplicated in trigger order.
func generateRecommendations(triggers []string) []string {
	seen := make(map[string]bool)
	recommendations := make([]string, 0)

	for _, trigger := range triggers {
		for _, action := range triggerActions[trigger] {
			if seen[action] {
				continue
			}
			seen[action] = true
			recommendations = append(recommendations, action)
		}
	}

	return recommendations
}

// generateAlerts builds structured alerts for sub-scores below the alert
// floor. Candidate volume additionally produces a lower-severity warning in
// the [30, 60) band. Alerts are regenerated per calculation; lifecycle
// handling lives in the notification layer.
func generateAlerts(m types.HealthMetrics) []types.Alert {
	alerts := make([]types.Alert, 0)

	switch {
	case m.CandidateVolumeHealth < AlertFloor:
		alerts = append(alerts, types.Alert{
			Type:            types.TriggerLowCandidateVolume,
			Severity:        types.SeverityCritical,
			Title:           "Pipeline Health Critical",
			Message:         "Your candidate pipeline is running low. Consider posting more jobs or sourcing additional candidates.",
			Recommendations: triggerActions[types.TriggerLowCandidateVolume],
			QuickActions: []types.QuickAction{
				{Label: "Post New Job", Action: "navigateToJobCreation"},
				{Label: "Rediscover Candidates", Action: "activateRediscovery"},
				{Label: "Analyze Pipeline", Action: "showDetailedAnalytics"},
			},
		})
	case m.CandidateVolumeHealth < RecommendationFloor:
		alerts = append(alerts, types.Alert{
			Type:     types.TriggerLowCandidateVolume,
			Severity: types.SeverityWarning,
			Title:    "Low Candidate Volume",
			Message:  "Your candidate pool is below recommended levels.",
			Recommendations: []string{
				"Post additional jobs to increase candidate flow",
				"Review current job postings for appeal",
			},
			QuickActions: []types.QuickAction{
				{Label: "Post New Job", Action: "navigateToJobCreation"},
			},
		})
	}

	if m.ApplicationRateHealth < AlertFloor {
		alerts = append(alerts, types.Alert{
			Type:            types.TriggerLowApplicationRate,
			Severity:        types.SeverityCritical,
			Title:           "Application Rate Critical",
			Message:         "Weekly applications have dropped significantly below target.",
			Recommendations: triggerActions[types.TriggerLowApplicationRate],
			QuickActions: []types.QuickAction{
				{Label: "Promote Jobs", Action: "promoteJobs"},
				{Label: "Edit Job Posts", Action: "editJobPosts"},
			},
		})
	}

	if m.TimeToFillHealth < AlertFloor {
		alerts = append(alerts, types.Alert{
			Type:            types.TriggerHighTimeToFill,
			Severity:        types.SeverityWarning,
			Title:           "Extended Time-to-Fill",
			Message:         "Positions are taking longer to fill than industry average.",
			Recommendations: triggerActions[types.TriggerHighTimeToFill],
			QuickActions: []types.QuickAction{
				{Label: "Review Process", Action: "reviewProcess"},
			},
		})
	}

	if m.DiversityHealth < AlertFloor {
		alerts = append(alerts, types.Alert{
			Type:     types.TriggerLowDiversityRatio,
			Severity: types.SeverityWarning,
			Title:    "Diversity Concerns",
			Message:  "Candidate diversity is below recommended levels.",
			Recommendations: []string{
				"Review job posting language for inclusivity",
				"Partner with diverse candidate networks",
				"Implement blind recruitment practices",
			},
			QuickActions: []types.QuickAction{
				{Label: "Review Diversity", Action: "reviewDiversity"},
			},
		})
	}

	return alerts
}
