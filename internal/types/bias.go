package types

// Risk level labels derived from the bias score
const (
	RiskLow      = "Low Risk"
	RiskMedium   = "Medium Risk"
	RiskHigh     = "High Risk"
	RiskCritical = "Critical Risk"
)

// Tone labels produced by the tone classifier
const (
	TonePositive    = "positive"
	ToneChallenging = "challenging"
	ToneNeutral     = "neutral"
)

// FoundBias records one biased term detected in the analyzed text.
type FoundBias struct {
	Category       string `json:"category"`
	Term           string `json:"term"`
	Count          int    `json:"count"`
	Weight         int    `json:"weight"`
	TotalDeduction int    `json:"total_deduction"`
}

// LanguagePattern records one inclusive or outdated phrasing hit.
type LanguagePattern struct {
	Type   string `json:"type"` // "inclusive" or "outdated"
	Term   string `json:"term"`
	Impact int    `json:"impact"`
}

// LanguageAnalysis is the language-pattern portion of a bias analysis.
type LanguageAnalysis struct {
	ModernScore int               `json:"modern_score"` // 0-100
	Patterns    []LanguagePattern `json:"patterns"`
	Readability int               `json:"readability"` // 0-100
	Tone        string            `json:"tone"`
}

// Compliance thresholds the main analysis scores against fixed cutoffs.
type Compliance struct {
	EEOCCompliant     bool `json:"eeoc_compliant"`
	DiversityFriendly bool `json:"diversity_friendly"`
	ModernLanguage    bool `json:"modern_language"`
}

// BiasAnalysis is the full result of analyzing a piece of job-posting text.
type BiasAnalysis struct {
	BiasScore         int              `json:"bias_score"`      // floored at 0
	DiversityScore    int              `json:"diversity_score"` // 0-100
	FoundBiases       []FoundBias      `json:"found_biases"`
	LanguageAnalysis  LanguageAnalysis `json:"language_analysis"`
	GenderNeutral     bool             `json:"gender_neutral"`
	InclusiveLanguage bool             `json:"inclusive_language"`
	RiskLevel         string           `json:"risk_level"`
	Recommendations   []string         `json:"recommendations"` // deduplicated, at most 5
	Compliance        Compliance       `json:"compliance"`
}
