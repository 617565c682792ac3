package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-pipeline/internal/bias"
	"github.com/jonathan/talent-pipeline/internal/observability"
	"github.com/jonathan/talent-pipeline/internal/vocab"
)

var biasCmd = &cobra.Command{
	Use:   "bias",
	Short: "Analyze a job posting for biased language",
	Long:  "Scans job posting text for biased terminology, scores inclusivity and readability, and suggests neutral replacements.",
	RunE:  runBias,
}

var (
	biasFilePath       string
	biasTitle          string
	biasCategoriesPath string
	biasVerbose        bool
)

func init() {
	biasCmd.Flags().StringVarP(&biasFilePath, "file", "f", "", "Path to job posting text file (required)")
	biasCmd.Flags().StringVarP(&biasTitle, "title", "t", "", "Job title to analyze together with the description")
	biasCmd.Flags().StringVar(&biasCategoriesPath, "categories", "", "Path to bias categories JSON (default: built-in vocabulary)")
	biasCmd.Flags().BoolVarP(&biasVerbose, "verbose", "v", false, "Print a formatted summary instead of raw JSON")

	if err := biasCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(biasCmd)
}

func runBias(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(biasFilePath)
	if err != nil {
		return fmt.Errorf("failed to read posting: %w", err)
	}

	_, categories, language := vocab.MustDefaults()
	if biasCategoriesPath != "" {
		loaded, err := vocab.LoadBiasCategories(biasCategoriesPath)
		if err != nil {
			return fmt.Errorf("failed to load bias categories: %w", err)
		}
		categories = loaded
	}

	analyzer := bias.NewAnalyzer(categories, language)
	analysis := analyzer.AnalyzePosting(biasTitle, string(data))

	if biasVerbose {
		observability.NewPrinter(os.Stdout).PrintBiasAnalysis(analysis)
		return nil
	}
	return writeJSON(os.Stdout, analysis)
}
