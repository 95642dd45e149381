// Package main provides the entry point for the job-fit analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobfit",
	Short: "Job-fit analyzer",
	Long:  "jobfit matches a candidate profile against a job posting and produces a structured, explainable fit assessment: requirement matches, ATS score, role-focus risk, gaps and a prioritized action checklist.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
