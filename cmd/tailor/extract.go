package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/extract"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured resume record from a source document",
	Long:  "Extract decodes a .pdf, .tex, or .docx resume, segments it into sections, and emits a validated resume record as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume source file (.pdf, .tex, .docx)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	input := extractInputFile
	if input == "" {
		input = cfg.Resume
	}
	if input == "" {
		return fmt.Errorf("resume path is required (use --in or the 'resume' config field)")
	}

	resume, err := extract.ResumeFromFile(input)
	if err != nil {
		return fmt.Errorf("failed to extract resume: %w", err)
	}

	if err := schemas.ValidateResume(resume); err != nil {
		return fmt.Errorf("extracted resume failed validation: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintResume(resume)
	}

	return writeJSON(extractOutputFile, resume)
}
