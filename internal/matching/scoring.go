package matching

import (
	"math"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// Weights for the match score components. Fixed by design; they must sum to 1.0.
const (
	technicalWeight  = 0.50
	experienceWeight = 0.20
	culturalWeight   = 0.15
	successWeight    = 0.15
)

// Required vs. nice-to-have split inside the technical sub-score
const (
	requiredSkillsShare   = 70.0
	niceToHaveSkillsShare = 30.0
)

// neutralScore is returned when a sub-score has no data to work with. Scoring
// stays total over partial input; missing fields degrade rather than fail.
const neutralScore = 50.0

// computeTechnicalMatch scores required-skills coverage (70%) plus nice-to-have
// coverage (30%), capped at 100. Empty buckets contribute 0 rather than
// dividing by zero.
func (e *Engine) computeTechnicalMatch(candidateSkills, requiredSkills, niceToHaveSkills []string) float64 {
	candidate := validSkills(candidateSkills)

	requiredMatches := 0
	for _, skill := range requiredSkills {
		if e.anySkillMatches(candidate, skill) {
			requiredMatches++
		}
	}
	requiredScore := float64(requiredMatches) / math.Max(float64(len(requiredSkills)), 1) * requiredSkillsShare

	niceMatches := 0
	for _, skill := range niceToHaveSkills {
		if e.anySkillMatches(candidate, skill) {
			niceMatches++
		}
	}
	niceScore := float64(niceMatches) / math.Max(float64(len(niceToHaveSkills)), 1) * niceToHaveSkillsShare

	return math.Min(requiredScore+niceScore, 100)
}

// computeExperienceFit rewards moderate over-qualification (capped bonus) and
// applies a linear penalty for under-qualification. A missing value on either
// side yields a neutral score.
func computeExperienceFit(candidate *types.Candidate, job *types.Job) float64 {
	if candidate == nil || job == nil || candidate.Experience <= 0 || job.Experience <= 0 {
		return neutralScore
	}

	candidateExp := candidate.Experience
	requiredExp := job.Experience

	if candidateExp >= requiredExp {
		overQualification := math.Min((candidateExp-requiredExp)/requiredExp, 0.5)
		return math.Min(100, 80+overQualification*20)
	}

	underQualification := (requiredExp - candidateExp) / requiredExp
	return math.Max(0, 100-underQualification*50)
}

// computeCulturalFit is a placeholder heuristic: it starts neutral and shifts
// by +-20 based on how far the candidate's inferred education level sits from
// the job's inferred seniority level.
func computeCulturalFit(candidate *types.Candidate, job *types.Job) float64 {
	score := neutralScore

	if candidate != nil && len(candidate.Education) > 0 && job != nil && job.Title != "" {
		diff := educationLevel(candidate.Education) - jobLevel(job.Title)
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 {
			score += 20
		} else if diff > 2 {
			score -= 20
		}
	}

	return clamp(score)
}

// computeSuccessProbability is a placeholder heuristic: skill-match ratio,
// experience ratio, and current-employment presence each shift a neutral base.
func (e *Engine) computeSuccessProbability(candidate *types.Candidate, job *types.Job) float64 {
	probability := neutralScore
	if candidate == nil || job == nil {
		return probability
	}

	if len(candidate.Skills) > 0 && len(job.RequiredSkills) > 0 {
		valid := validSkills(candidate.Skills)
		if len(valid) > 0 {
			matches := 0
			for _, skill := range valid {
				if e.anySkillMatches(job.RequiredSkills, skill) {
					matches++
				}
			}
			ratio := float64(matches) / math.Max(float64(len(job.RequiredSkills)), 1)
			probability += (ratio - 0.5) * 30
		}
	}

	if candidate.Experience > 0 && job.Experience > 0 {
		expRatio := candidate.Experience / math.Max(job.Experience, 1)
		switch {
		case expRatio >= 1:
			probability += 20
		case expRatio >= 0.7:
			probability += 10
		default:
			probability -= 10
		}
	}

	if candidate.CurrentCompany != "" {
		probability += 10
	}

	return clamp(probability)
}

// anySkillMatches reports whether any label in skills matches target.
func (e *Engine) anySkillMatches(skills []string, target string) bool {
	for _, skill := range skills {
		if e.matcher.IsMatch(skill, target) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
