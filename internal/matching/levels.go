package matching

import (
	"regexp"
	"strings"
)

// Education level ordinals (1 = high school, 5 = doctorate). Level 3 is the
// default when signals are absent or unrecognized.
const defaultEducationLevel = 3

// educationLevels maps degree keywords to ordinal levels
var educationLevels = []struct {
	keyword string
	level   int
}{
	{"high school", 1},
	{"associate", 2},
	{"bachelor", 3},
	{"master", 4},
	{"phd", 5},
	{"doctorate", 5},
}

// Abbreviation heuristics tried when no full keyword is present
var (
	doctoratePattern  = regexp.MustCompile(`\bphd\b|\bdoctorate\b`)
	masterPattern     = regexp.MustCompile(`\bmasters?\b|\bmsc\b|\bma\b|\bms\b`)
	bachelorPattern   = regexp.MustCompile(`\bbachelor\b|\bbs?c\b|\bba\b|\bbsc\b`)
	associatePattern  = regexp.MustCompile(`\bassociate\b|\bassoc\b|\baa\b`)
	highSchoolPattern = regexp.MustCompile(`\bhigh school\b|\bhs\b`)
)

// educationLevel infers an ordinal education level from free-text education
// signals (degree names, fields of study, institutions).
func educationLevel(signals []string) int {
	if len(signals) == 0 {
		return defaultEducationLevel
	}

	combined := strings.ToLower(strings.Join(signals, " "))
	if strings.TrimSpace(combined) == "" {
		return defaultEducationLevel
	}

	for _, entry := range educationLevels {
		if strings.Contains(combined, entry.keyword) {
			return entry.level
		}
	}

	switch {
	case doctoratePattern.MatchString(combined):
		return 5
	case masterPattern.MatchString(combined):
		return 4
	case bachelorPattern.MatchString(combined):
		return 3
	case associatePattern.MatchString(combined):
		return 2
	case highSchoolPattern.MatchString(combined):
		return 1
	}

	return defaultEducationLevel
}

// jobLevel infers an ordinal seniority level (2-4) from a job title.
func jobLevel(title string) int {
	titleLower := strings.ToLower(title)

	switch {
	case strings.Contains(titleLower, "senior"),
		strings.Contains(titleLower, "lead"),
		strings.Contains(titleLower, "principal"):
		return 4
	case strings.Contains(titleLower, "mid"),
		strings.Contains(titleLower, "intermediate"):
		return 3
	case strings.Contains(titleLower, "junior"),
		strings.Contains(titleLower, "entry"):
		return 2
	}

	return 3
}
