package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-pipeline/internal/matching"
	"github.com/jonathan/talent-pipeline/internal/observability"
	"github.com/jonathan/talent-pipeline/internal/types"
	"github.com/jonathan/talent-pipeline/internal/vocab"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate against a job posting",
	Long:  "Scores a candidate profile against a job posting using skill, experience, and education signals, and prints the weighted match result.",
	RunE:  runMatch,
}

var (
	matchCandidatePath string
	matchJobPath       string
	matchSkillsPath    string
	matchVerbose       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidatePath, "candidate", "c", "", "Path to candidate JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to job JSON file (required)")
	matchCmd.Flags().StringVar(&matchSkillsPath, "skills", "", "Path to skill families JSON (default: built-in vocabulary)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted summary instead of raw JSON")

	if err := matchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	var candidate types.Candidate
	if err := readJSONFile(matchCandidatePath, &candidate); err != nil {
		return fmt.Errorf("failed to load candidate: %w", err)
	}

	var job types.Job
	if err := readJSONFile(matchJobPath, &job); err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	families, _, _ := vocab.MustDefaults()
	if matchSkillsPath != "" {
		loaded, err := vocab.LoadSkillFamilies(matchSkillsPath)
		if err != nil {
			return fmt.Errorf("failed to load skill families: %w", err)
		}
		families = loaded
	}

	engine := matching.NewEngine(matching.NewSkillMatcher(families))
	result := engine.Score(&candidate, &job)

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(candidate.Name, result)
		return nil
	}
	return writeJSON(os.Stdout, result)
}

// readJSONFile reads and unmarshals a JSON file into v.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON pretty-prints v as JSON.
func writeJSON(out *os.File, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
