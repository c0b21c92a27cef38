package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/relevance"
	"github.com/jonathan/resume-tailor/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare a resume record against a job record",
	Long:  "Analyze loads resume and job record JSON files and emits a relevance map: matching and missing skills, matching keywords, and emphasis suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeOutputFile string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumeFile, "resume", "", "Path to resume record JSON (from extract)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to job record JSON (from parse-job)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	resume, err := readResumeRecord(analyzeResumeFile)
	if err != nil {
		return err
	}
	if err := schemas.ValidateResume(resume); err != nil {
		return fmt.Errorf("resume record failed validation: %w", err)
	}

	job, err := readJobRecord(analyzeJobFile)
	if err != nil {
		return err
	}
	if err := schemas.ValidateJob(job); err != nil {
		return fmt.Errorf("job record failed validation: %w", err)
	}

	rel := relevance.Analyze(resume, job)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRelevance(rel)
	}

	return writeJSON(analyzeOutputFile, rel)
}
