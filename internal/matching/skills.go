package matching

import (
	"strings"

	"github.com/jonathan/talent-pipeline/internal/vocab"
)

// fuzzyMatchThreshold is the minimum string similarity for two skill labels to
// be considered the same competency when no exact or family match exists.
const fuzzyMatchThreshold = 0.8

// SkillMatcher decides whether two free-text skill labels refer to the same
// competency. It is stateless after construction and safe for concurrent use.
type SkillMatcher struct {
	families map[string][]string
}

// NewSkillMatcher builds a matcher over the given skill family vocabulary.
func NewSkillMatcher(families *vocab.SkillFamilies) *SkillMatcher {
	m := &SkillMatcher{families: make(map[string][]string, len(families.Families))}
	for canonical, aliases := range families.Families {
		lowered := make([]string, len(aliases))
		for i, alias := range aliases {
			lowered[i] = strings.ToLower(alias)
		}
		m.families[strings.ToLower(canonical)] = lowered
	}
	return m
}

// IsMatch reports whether a candidate skill label and a job skill label name
// the same competency: exact case-insensitive equality, then family membership
// in either direction, then fuzzy fallback. Empty input never matches.
func (m *SkillMatcher) IsMatch(candidateSkill, jobSkill string) bool {
	candidateSkill = strings.TrimSpace(candidateSkill)
	jobSkill = strings.TrimSpace(jobSkill)
	if candidateSkill == "" || jobSkill == "" {
		return false
	}

	candidateLower := strings.ToLower(candidateSkill)
	jobLower := strings.ToLower(jobSkill)

	if candidateLower == jobLower {
		return true
	}

	if contains(m.families[jobLower], candidateLower) {
		return true
	}
	if contains(m.families[candidateLower], jobLower) {
		return true
	}

	return StringSimilarity(candidateLower, jobLower) > fuzzyMatchThreshold
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// validSkills filters out empty or whitespace-only skill labels.
func validSkills(skills []string) []string {
	valid := make([]string, 0, len(skills))
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}
	return valid
}
