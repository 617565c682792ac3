// Package bias scans job-posting text for biased or exclusionary language and
// produces a bias score, diversity score, tone classification, and actionable
// recommendations.
package bias

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/talent-pipeline/internal/types"
	"github.com/jonathan/talent-pipeline/internal/vocab"
)

// Risk level cutoffs over the bias score
const (
	lowRiskMin    = 80
	mediumRiskMin = 60
	highRiskMin   = 40
)

// Compliance cutoffs
const complianceMin = 70

// maxRecommendations caps the recommendation list.
const maxRecommendations = 5

type termPattern struct {
	term    string
	pattern *regexp.Regexp
}

type category struct {
	name        string
	terms       []termPattern
	weight      int
	suggestions []string
}

// Analyzer scans text against a fixed bias vocabulary. It is stateless after
// construction and safe for concurrent use.
type Analyzer struct {
	categories []category
	language   *vocab.Language
}

// NewAnalyzer builds an analyzer over the given vocabularies. Term patterns
// are compiled once; category order is normalized for deterministic output.
func NewAnalyzer(categories *vocab.BiasCategories, language *vocab.Language) *Analyzer {
	a := &Analyzer{language: language}

	names := make([]string, 0, len(categories.Categories))
	for name := range categories.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cfg := categories.Categories[name]
		entry := category{
			name:        name,
			weight:      cfg.Weight,
			suggestions: cfg.Suggestions,
		}
		for _, term := range cfg.Terms {
			entry.terms = append(entry.terms, termPattern{
				term:    term,
				pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
			})
		}
		a.categories = append(a.categories, entry)
	}

	return a
}

// Analyze scans the text and returns the full bias analysis. It never fails:
// empty text yields a maximal score with no findings.
func (a *Analyzer) Analyze(text string) *types.BiasAnalysis {
	biasScore := 100
	foundBiases := make([]types.FoundBias, 0)

	for _, cat := range a.categories {
		for _, tp := range cat.terms {
			count := len(tp.pattern.FindAllStringIndex(text, -1))
			if count == 0 {
				continue
			}
			deduction := cat.weight * count
			biasScore -= deduction
			foundBiases = append(foundBiases, types.FoundBias{
				Category:       cat.name,
				Term:           tp.term,
				Count:          count,
				Weight:         cat.weight,
				TotalDeduction: deduction,
			})
		}
	}

	languageAnalysis := a.analyzeLanguagePatterns(text)
	diversityScore := a.diversityScore(text, foundBiases)

	genderNeutral := true
	for _, fb := range foundBiases {
		if fb.Category == "gender" {
			genderNeutral = false
			break
		}
	}

	result := &types.BiasAnalysis{
		BiasScore:         max(biasScore, 0),
		DiversityScore:    diversityScore,
		FoundBiases:       foundBiases,
		LanguageAnalysis:  languageAnalysis,
		GenderNeutral:     genderNeutral,
		InclusiveLanguage: len(foundBiases) == 0,
		RiskLevel:         riskLevel(biasScore),
		Recommendations:   a.recommendations(foundBiases, languageAnalysis),
		Compliance: types.Compliance{
			EEOCCompliant:     biasScore >= complianceMin,
			DiversityFriendly: diversityScore >= complianceMin,
			ModernLanguage:    languageAnalysis.ModernScore >= complianceMin,
		},
	}

	return result
}

// AnalyzePosting analyzes a job posting's description and title together.
func (a *Analyzer) AnalyzePosting(title, description string) *types.BiasAnalysis {
	text := description
	if title != "" {
		text = fmt.Sprintf("%s %s", description, title)
	}
	return a.Analyze(text)
}

// diversityScore starts at 100, deducts 5 per distinct bias finding, and adds
// 3 per diversity-friendly term present in the text.
func (a *Analyzer) diversityScore(text string, foundBiases []types.FoundBias) int {
	score := 100 - len(foundBiases)*5

	textLower := strings.ToLower(text)
	for _, term := range a.language.DiversityTerms {
		if strings.Contains(textLower, term) {
			score += 3
		}
	}

	return clampScore(score)
}

// recommendations unions the suggestions of every triggered category with
// generic modernization and readability advice, deduplicated and capped.
func (a *Analyzer) recommendations(foundBiases []types.FoundBias, lang types.LanguageAnalysis) []string {
	candidates := make([]string, 0)

	suggestionsByCategory := make(map[string][]string, len(a.categories))
	for _, cat := range a.categories {
		suggestionsByCategory[cat.name] = cat.suggestions
	}
	for _, fb := range foundBiases {
		candidates = append(candidates, suggestionsByCategory[fb.Category]...)
	}

	if lang.ModernScore < 60 {
		candidates = append(candidates,
			"Consider updating language to be more modern and inclusive",
			"Replace outdated terms with contemporary equivalents",
		)
	}

	if lang.Readability < 60 {
		candidates = append(candidates,
			"Simplify complex sentences for better readability",
			"Use shorter paragraphs and clearer language",
		)
	}

	seen := make(map[string]bool, len(candidates))
	recommendations := make([]string, 0, maxRecommendations)
	for _, rec := range candidates {
		if seen[rec] {
			continue
		}
		seen[rec] = true
		recommendations = append(recommendations, rec)
		if len(recommendations) == maxRecommendations {
			break
		}
	}

	return recommendations
}

// riskLevel maps a raw bias score (possibly negative) to a risk band.
func riskLevel(biasScore int) string {
	switch {
	case biasScore >= lowRiskMin:
		return types.RiskLow
	case biasScore >= mediumRiskMin:
		return types.RiskMedium
	case biasScore >= highRiskMin:
		return types.RiskHigh
	default:
		return types.RiskCritical
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
