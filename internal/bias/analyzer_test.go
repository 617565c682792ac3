package bias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-pipeline/internal/types"
	"github.com/jonathan/talent-pipeline/internal/vocab"
)

func defaultAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	categories, err := vocab.DefaultBiasCategories()
	require.NoError(t, err)
	language, err := vocab.DefaultLanguage()
	require.NoError(t, err)
	return NewAnalyzer(categories, language)
}

func TestAnalyze_CleanText(t *testing.T) {
	a := defaultAnalyzer(t)

	result := a.Analyze("We are looking for a software engineer with Go experience.")

	assert.Equal(t, 100, result.BiasScore)
	assert.Empty(t, result.FoundBiases)
	assert.True(t, result.GenderNeutral)
	assert.True(t, result.InclusiveLanguage)
	assert.Equal(t, types.RiskLow, result.RiskLevel)
	assert.True(t, result.Compliance.EEOCCompliant)
}

func TestAnalyze_EmptyText(t *testing.T) {
	a := defaultAnalyzer(t)

	result := a.Analyze("")

	assert.Equal(t, 100, result.BiasScore)
	assert.Equal(t, 100, result.DiversityScore)
	assert.Empty(t, result.FoundBiases)
	assert.Equal(t, 50, result.LanguageAnalysis.ModernScore)
	assert.Equal(t, 100, result.LanguageAnalysis.Readability)
	assert.Equal(t, types.ToneNeutral, result.LanguageAnalysis.Tone)
	assert.Equal(t, types.RiskLow, result.RiskLevel)
}

func TestAnalyze_GenderedTerm(t *testing.T) {
	a := defaultAnalyzer(t)

	result := a.Analyze("The ideal candidate will use his judgment.")

	require.Len(t, result.FoundBiases, 1)
	fb := result.FoundBiases[0]
	assert.Equal(t, "gender", fb.Category)
	assert.Equal(t, "his", fb.Term)
	assert.Equal(t, 1, fb.Count)
	assert.Equal(t, 3, fb.Weight)
	assert.Equal(t, 3, fb.TotalDeduction)

	assert.Equal(t, 97, result.BiasScore)
	assert.False(t, result.GenderNeutral)
	assert.False(t, result.InclusiveLanguage)
}

func TestAnalyze_RepeatedTermMultiplies(t *testing.T) {
	a := defaultAnalyzer(t)

	result := a.Analyze("rockstar wanted, only a true rockstar will do")

	require.Len(t, result.FoundBiases, 1)
	assert.Equal(t, "exclusive", result.FoundBiases[0].Category)
	assert.Equal(t, 2, result.FoundBiases[0].Count)
	assert.Equal(t, 4, result.FoundBiases[0].TotalDeduction)
}

func TestAnalyze_WordBoundaries(t *testing.T) {
	a := defaultAnalyzer(t)

	// "his" inside "history" must not count
	result := a.Analyze("A degree in history is a plus.")
	for _, fb := range result.FoundBiases {
		assert.NotEqual(t, "his", fb.Term)
	}
}

func TestAnalyze_ScoreFlooredAtZero(t *testing.T) {
	a := defaultAnalyzer(t)

	// heavy repetition drives the raw score negative; output floors at 0
	text := "ethnic ethnic ethnic ethnic ethnic ethnic ethnic ethnic ethnic ethnic " +
		"ethnic ethnic ethnic ethnic ethnic ethnic ethnic ethnic ethnic ethnic ethnic"
	result := a.Analyze(text)

	assert.Equal(t, 0, result.BiasScore)
	assert.Equal(t, types.RiskCritical, result.RiskLevel)
	assert.False(t, result.Compliance.EEOCCompliant)
}

func TestAnalyze_RiskBands(t *testing.T) {
	assert.Equal(t, types.RiskLow, riskLevel(80))
	assert.Equal(t, types.RiskMedium, riskLevel(79))
	assert.Equal(t, types.RiskMedium, riskLevel(60))
	assert.Equal(t, types.RiskHigh, riskLevel(59))
	assert.Equal(t, types.RiskHigh, riskLevel(40))
	assert.Equal(t, types.RiskCritical, riskLevel(39))
	assert.Equal(t, types.RiskCritical, riskLevel(-10))
}

func TestAnalyze_DiversityTermsBoost(t *testing.T) {
	a := defaultAnalyzer(t)

	plain := a.Analyze("Join our engineering organization.")
	friendly := a.Analyze("Join our engineering organization committed to inclusion and belonging.")

	assert.GreaterOrEqual(t, friendly.DiversityScore, plain.DiversityScore)
	assert.Equal(t, 100, friendly.DiversityScore) // clamped at 100
}

func TestAnalyze_RecommendationsDeduplicatedAndCapped(t *testing.T) {
	a := defaultAnalyzer(t)

	// hits in several categories produce suggestions from each, capped at 5
	result := a.Analyze("he she young old family married ethnic wealthy rockstar ninja")

	assert.LessOrEqual(t, len(result.Recommendations), 5)
	seen := make(map[string]bool)
	for _, rec := range result.Recommendations {
		assert.False(t, seen[rec], "duplicate recommendation: %s", rec)
		seen[rec] = true
	}
}

func TestAnalyzePosting_TitleIncluded(t *testing.T) {
	a := defaultAnalyzer(t)

	withTitle := a.AnalyzePosting("Ninja Developer", "Write Go services.")
	withoutTitle := a.AnalyzePosting("", "Write Go services.")

	assert.Less(t, withTitle.BiasScore, withoutTitle.BiasScore)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := defaultAnalyzer(t)

	text := "he she young family ethnic rockstar"
	first := a.Analyze(text)
	second := a.Analyze(text)

	assert.Equal(t, first.FoundBiases, second.FoundBiases)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}
