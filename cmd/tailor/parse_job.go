package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/jobparse"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/schemas"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a pasted job posting into a structured job record",
	Long:  "Parse reads a job posting from a text or HTML file and emits a validated job record as JSON. URLs are rejected; save the posting to a file first.",
	RunE:  runParseJob,
}

var (
	parseJobInputFile  string
	parseJobOutputFile string
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobInputFile, "in", "i", "", "Path to job posting text or HTML file")
	parseJobCmd.Flags().StringVarP(&parseJobOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
	input := parseJobInputFile
	if input == "" {
		input = cfg.Job
	}
	if input == "" {
		return fmt.Errorf("job posting path is required (use --in or the 'job' config field)")
	}

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	job, err := jobparse.Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse job posting: %w", err)
	}

	if err := schemas.ValidateJob(job); err != nil {
		return fmt.Errorf("parsed job failed validation: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJob(job)
	}

	return writeJSON(parseJobOutputFile, job)
}
