package bias

import (
	"regexp"
	"strings"

	"github.com/jonathan/talent-pipeline/internal/types"
)

const (
	inclusiveImpact = 5
	outdatedImpact  = -3
)

// Words-per-sentence cutoffs for the readability penalty
const (
	longSentenceWords     = 20
	veryLongSentenceWords = 25
)

var (
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
	whitespaceSplit = regexp.MustCompile(`\s+`)
)

// analyzeLanguagePatterns scores the text's phrasing for modernity, derives a
// readability score from average sentence length, and classifies tone.
func (a *Analyzer) analyzeLanguagePatterns(text string) types.LanguageAnalysis {
	textLower := strings.ToLower(text)

	modernScore := 50
	patterns := make([]types.LanguagePattern, 0)

	for _, term := range a.language.Inclusive {
		if strings.Contains(textLower, strings.ToLower(term)) {
			modernScore += inclusiveImpact
			patterns = append(patterns, types.LanguagePattern{Type: "inclusive", Term: term, Impact: inclusiveImpact})
		}
	}

	for _, term := range a.language.Outdated {
		if strings.Contains(textLower, strings.ToLower(term)) {
			modernScore += outdatedImpact
			patterns = append(patterns, types.LanguagePattern{Type: "outdated", Term: term, Impact: outdatedImpact})
		}
	}

	return types.LanguageAnalysis{
		ModernScore: clampScore(modernScore),
		Patterns:    patterns,
		Readability: readability(text),
		Tone:        a.tone(textLower),
	}
}

// readability penalizes long average sentence length. Segment counts mirror a
// naive split, so trailing punctuation still produces an empty final segment.
func readability(text string) int {
	sentences := len(sentenceSplit.Split(text, -1))
	words := len(whitespaceSplit.Split(text, -1))

	avgWordsPerSentence := float64(words) / float64(sentences)

	score := 100
	if avgWordsPerSentence > longSentenceWords {
		score -= 20
	}
	if avgWordsPerSentence > veryLongSentenceWords {
		score -= 20
	}

	return clampScore(score)
}

// tone buckets the text by comparing counts of positive vs. negative words.
func (a *Analyzer) tone(textLower string) string {
	positive := 0
	negative := 0

	for _, word := range a.language.Positive {
		if strings.Contains(textLower, word) {
			positive++
		}
	}
	for _, word := range a.language.Negative {
		if strings.Contains(textLower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return types.TonePositive
	case negative > positive:
		return types.ToneChallenging
	default:
		return types.ToneNeutral
	}
}
