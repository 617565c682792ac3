// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-pipeline/internal/metrics"
	"github.com/jonathan/talent-pipeline/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of one match result.
func (p *Printer) PrintMatchResult(name string, result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if name != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s\n\n", name))
	}
	sb.WriteString(fmt.Sprintf("Match Score:    %d\n", result.MatchScore))
	sb.WriteString(fmt.Sprintf("  Technical:    %d\n", result.TechnicalMatch))
	sb.WriteString(fmt.Sprintf("  Experience:   %d\n", result.ExperienceFit))
	sb.WriteString(fmt.Sprintf("  Cultural:     %d\n", result.CulturalFit))
	sb.WriteString(fmt.Sprintf("  Success Prob: %d\n", result.SuccessProbability))
	sb.WriteString("\n")

	if len(result.MatchingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matching: %s\n", joinTruncated(result.MatchingSkills, 40)))
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", joinTruncated(result.MissingSkills, 40)))
	}
	sb.WriteString(fmt.Sprintf("\n%s", result.RecommendedAction))

	p.printBox("MATCH RESULT", sb.String())
}

// PrintBatchMatches outputs the scored candidates of a batch run, unscored
// candidates listed last.
func (p *Printer) PrintBatchMatches(matches []types.CandidateMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates scored: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	shown := 0
	for _, m := range matches {
		if m.Result == nil {
			continue
		}
		shown++
		sb.WriteString(fmt.Sprintf("#%d  %s\n", shown, m.Name))
		sb.WriteString(fmt.Sprintf("    Score: %d  %s\n", m.Result.MatchScore, m.Result.RecommendedAction))
		if shown >= count {
			break
		}
	}

	unscored := 0
	for _, m := range matches {
		if m.Result == nil {
			unscored++
		}
	}
	if unscored > 0 {
		sb.WriteString(fmt.Sprintf("\nUnscored candidates: %d\n", unscored))
	}

	p.printBox("BATCH MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBiasAnalysis outputs a human-readable summary of a bias analysis.
func (p *Printer) PrintBiasAnalysis(analysis *types.BiasAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Bias Score:      %d (%s)\n", analysis.BiasScore, analysis.RiskLevel))
	sb.WriteString(fmt.Sprintf("Diversity Score: %d\n", analysis.DiversityScore))
	sb.WriteString(fmt.Sprintf("Modern Language: %d\n", analysis.LanguageAnalysis.ModernScore))
	sb.WriteString(fmt.Sprintf("Readability:     %d\n", analysis.LanguageAnalysis.Readability))
	sb.WriteString(fmt.Sprintf("Tone:            %s\n", analysis.LanguageAnalysis.Tone))

	if len(analysis.FoundBiases) > 0 {
		sb.WriteString("\nFlagged terms:\n")
		count := min(len(analysis.FoundBiases), maxItemsToShow)
		for i := 0; i < count; i++ {
			fb := analysis.FoundBiases[i]
			sb.WriteString(fmt.Sprintf("  • %q (%s, -%d)\n", fb.Term, fb.Category, fb.TotalDeduction))
		}
		if len(analysis.FoundBiases) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.FoundBiases)-maxItemsToShow))
		}
	}

	if len(analysis.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range analysis.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("BIAS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHealthRecord outputs a human-readable summary of a health calculation.
func (p *Printer) PrintHealthRecord(record *types.HealthRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %s (%s)\n\n",
		metrics.FormatHealthScore(record.HealthScore),
		metrics.StatusLabel(record.Status)))

	m := record.Metrics
	sb.WriteString(fmt.Sprintf("Candidate Volume: %s  (%d active, ratio %s)\n",
		metrics.FormatHealthScore(m.CandidateVolumeHealth), m.ActiveCandidates,
		metrics.FormatRatio(m.CandidateToJobRatio)))
	sb.WriteString(fmt.Sprintf("Application Rate: %s  (%d this week)\n",
		metrics.FormatHealthScore(m.ApplicationRateHealth), m.WeeklyApplications))
	sb.WriteString(fmt.Sprintf("Time to Fill:     %s  (avg %s)\n",
		metrics.FormatHealthScore(m.TimeToFillHealth), metrics.FormatDays(float64(m.AvgTimeToFill))))
	sb.WriteString(fmt.Sprintf("Diversity:        %s\n",
		metrics.FormatHealthScore(m.DiversityHealth)))

	if len(record.Triggers) > 0 {
		sb.WriteString(fmt.Sprintf("\nTriggers: %s\n", strings.Join(record.Triggers, ", ")))
	}
	if len(record.Alerts) > 0 {
		sb.WriteString("\nAlerts:\n")
		for _, a := range record.Alerts {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", a.Severity, a.Title))
		}
	}
	if len(record.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(record.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Recommendations[i]))
		}
	}

	p.printBox("PIPELINE HEALTH", strings.TrimSuffix(sb.String(), "\n"))
}

func joinTruncated(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
