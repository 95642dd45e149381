package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sebastian-gasior/jobfit/internal/config"
	"github.com/sebastian-gasior/jobfit/internal/engine"
	"github.com/sebastian-gasior/jobfit/internal/logger"
	"github.com/sebastian-gasior/jobfit/internal/observability"
	"github.com/sebastian-gasior/jobfit/internal/schemas"
	"github.com/sebastian-gasior/jobfit/internal/stats"
	"github.com/sebastian-gasior/jobfit/internal/types"
)

var (
	analyzeProfilePath string
	analyzeJobPath     string
	analyzeConfigPath  string
	analyzeJSONOut     bool
	analyzeVerbose     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a candidate profile against a job posting",
	Long:  `Analyze reads a candidate profile (JSON) and a job posting (plain text) from local files and prints the fit assessment. Runs fully offline.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProfilePath, "profile", "", "Path to candidate profile JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to job posting text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config JSON")
	analyzeCmd.Flags().BoolVar(&analyzeJSONOut, "json", false, "Print the raw result JSON")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print formatted section boxes")
	_ = analyzeCmd.MarkFlagRequired("profile")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	profileData, err := os.ReadFile(analyzeProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := schemas.ValidateCandidateProfile(profileData); err != nil {
		return err
	}
	var profile types.CandidateProfile
	if err := json.Unmarshal(profileData, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	jobData, err := os.ReadFile(analyzeJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	eng := engine.New(engine.Options{
		CacheSize: cfg.CacheSize,
		Logger:    log,
		Stats:     &stats.LogRecorder{Log: log},
	})

	result, err := eng.RunAnalysis(context.Background(), &profile, string(jobData))
	if err != nil {
		return err
	}

	if analyzeJSONOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	if analyzeVerbose || cfg.Verbose {
		printer.PrintResult(result)
		return nil
	}
	printer.PrintSummary(&result.Summary)
	printer.PrintNextSteps(result.NextSteps)
	return nil
}
