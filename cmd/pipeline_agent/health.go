package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-pipeline/internal/db"
	"github.com/jonathan/talent-pipeline/internal/health"
	"github.com/jonathan/talent-pipeline/internal/observability"
	"github.com/jonathan/talent-pipeline/internal/vocab"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Calculate pipeline health for an organization",
	Long:  "Loads the organization's candidates, jobs, and applications from the database, calculates the weighted pipeline health score, and appends the record to the health history.",
	RunE:  runHealth,
}

var (
	healthOrgID       string
	healthDatabaseURL string
	healthDryRun      bool
	healthVerbose     bool
)

func init() {
	healthCmd.Flags().StringVarP(&healthOrgID, "org-id", "o", "", "Organization ID (required)")
	healthCmd.Flags().StringVar(&healthDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	healthCmd.Flags().BoolVar(&healthDryRun, "dry-run", false, "Calculate without saving the record")
	healthCmd.Flags().BoolVarP(&healthVerbose, "verbose", "v", false, "Print a formatted summary instead of raw JSON")

	if err := healthCmd.MarkFlagRequired("org-id"); err != nil {
		panic(fmt.Sprintf("failed to mark org-id flag as required: %v", err))
	}

	rootCmd.AddCommand(healthCmd)
}

func runHealth(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	orgID, err := uuid.Parse(healthOrgID)
	if err != nil {
		return fmt.Errorf("invalid org-id: %w", err)
	}

	if healthDatabaseURL == "" {
		healthDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if healthDatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
	}

	database, err := db.Connect(ctx, healthDatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	snapshot, err := database.GetOrganizationSnapshot(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to load organization snapshot: %w", err)
	}

	thresholds, err := database.EnsureThresholds(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to load thresholds: %w", err)
	}

	_, _, language := vocab.MustDefaults()
	record, err := health.NewCalculator(language).Calculate(snapshot, thresholds)
	if err != nil {
		return fmt.Errorf("health calculation failed: %w", err)
	}

	if !healthDryRun {
		record, err = database.InsertHealthRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to save health record: %w", err)
		}
	}

	if healthVerbose {
		observability.NewPrinter(os.Stdout).PrintHealthRecord(record)
		return nil
	}
	return writeJSON(os.Stdout, record)
}
