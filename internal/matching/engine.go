package matching

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// Engine computes multi-dimensional match scores for (candidate, job) pairs.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	matcher *SkillMatcher
}

// NewEngine creates a match score engine over the given skill matcher.
func NewEngine(matcher *SkillMatcher) *Engine {
	return &Engine{matcher: matcher}
}

// Matcher returns the engine's skill matcher.
func (e *Engine) Matcher() *SkillMatcher {
	return e.matcher
}

// Score computes the bounded 0-100 match score for one candidate against one
// job, along with the sub-scores and matching/missing skill lists. Missing
// optional fields degrade to neutral values; Score never fails.
func (e *Engine) Score(candidate *types.Candidate, job *types.Job) *types.MatchResult {
	if candidate == nil {
		candidate = &types.Candidate{}
	}
	if job == nil {
		job = &types.Job{}
	}

	technical := e.computeTechnicalMatch(candidate.Skills, job.RequiredSkills, job.NiceToHaveSkills)
	experience := computeExperienceFit(candidate, job)
	cultural := computeCulturalFit(candidate, job)
	success := e.computeSuccessProbability(candidate, job)

	total := technical*technicalWeight +
		experience*experienceWeight +
		cultural*culturalWeight +
		success*successWeight

	matchScore := int(math.Min(math.Round(total), 100))

	matching, missing := e.skillDiff(candidate.Skills, job.RequiredSkills)

	return &types.MatchResult{
		MatchScore:         matchScore,
		TechnicalMatch:     int(math.Round(technical)),
		ExperienceFit:      int(math.Round(experience)),
		CulturalFit:        int(math.Round(cultural)),
		SuccessProbability: int(math.Round(success)),
		MatchingSkills:     matching,
		MissingSkills:      missing,
		RecommendedAction:  recommendedAction(matchScore),
	}
}

// ScoreAll scores every candidate against the job concurrently. Candidates are
// independent: a nil candidate yields an unscored entry (nil Result) without
// affecting the rest of the batch. Result order follows input order.
func (e *Engine) ScoreAll(ctx context.Context, candidates []*types.Candidate, job *types.Job) ([]types.CandidateMatch, error) {
	results := make([]types.CandidateMatch, len(candidates))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, candidate := range candidates {
		g.Go(func() error {
			if candidate == nil {
				results[i] = types.CandidateMatch{}
				return nil
			}
			results[i] = types.CandidateMatch{
				CandidateID: candidate.ID,
				Name:        candidate.Name,
				Result:      e.Score(candidate, job),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// skillDiff computes the matching and missing skill lists under skill-matcher
// equivalence: matching is the candidate skills that cover some required
// skill, missing is the required skills no candidate skill covers.
func (e *Engine) skillDiff(candidateSkills, requiredSkills []string) (matching, missing []string) {
	matching = make([]string, 0, len(candidateSkills))
	missing = make([]string, 0, len(requiredSkills))

	valid := validSkills(candidateSkills)

	for _, skill := range valid {
		if e.anySkillMatches(requiredSkills, skill) {
			matching = append(matching, skill)
		}
	}

	for _, required := range requiredSkills {
		if !e.anySkillMatches(valid, required) {
			missing = append(missing, required)
		}
	}

	return matching, missing
}

// recommendedAction maps a final match score to a recruiter-facing action band.
func recommendedAction(score int) string {
	switch {
	case score >= 80:
		return types.ActionStrongMatch
	case score >= 60:
		return types.ActionGoodMatch
	case score >= 40:
		return types.ActionBorderline
	default:
		return types.ActionNotRecommended
	}
}
