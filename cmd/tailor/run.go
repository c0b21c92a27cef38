package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailor/internal/extract"
	"github.com/jonathan/resume-tailor/internal/jobparse"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/relevance"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: extract, parse, analyze, render",
	Long:  "Run extracts a resume document and a job posting, validates both records, analyzes their overlap, and renders a tailored LaTeX resume in one pass.",
	RunE:  runPipeline,
}

var (
	runResumeFile   string
	runJobFile      string
	runTemplateID   string
	runOutputFile   string
	runAnalysisFile string
)

func init() {
	runCmd.Flags().StringVar(&runResumeFile, "resume", "", "Path to resume source file (.pdf, .tex, .docx)")
	runCmd.Flags().StringVar(&runJobFile, "job", "", "Path to job posting text or HTML file")
	runCmd.Flags().StringVarP(&runTemplateID, "template", "t", "", "Template id (default: config 'template' or modern)")
	runCmd.Flags().StringVarP(&runOutputFile, "out", "o", "", "Path to output .tex file (default: stdout)")
	runCmd.Flags().StringVar(&runAnalysisFile, "analysis-out", "", "Optional path to write the relevance map JSON")

	rootCmd.AddCommand(runCmd)
}

func runPipeline(_ *cobra.Command, _ []string) error {
	resumePath := runResumeFile
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	jobPath := runJobFile
	if jobPath == "" {
		jobPath = cfg.Job
	}
	if resumePath == "" || jobPath == "" {
		return fmt.Errorf("both a resume and a job posting are required (--resume and --job, or config fields)")
	}

	runID := uuid.New().String()
	log.Info().Str("run_id", runID).Str("resume", resumePath).Str("job", jobPath).Msg("starting pipeline run")

	// Resume extraction and job parsing are independent; run them
	// concurrently.
	var (
		resume *types.Resume
		job    *types.Job
	)
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		r, err := extract.ResumeFromFile(resumePath)
		if err != nil {
			return fmt.Errorf("failed to extract resume: %w", err)
		}
		if err := schemas.ValidateResume(r); err != nil {
			return fmt.Errorf("extracted resume failed validation: %w", err)
		}
		resume = r
		return nil
	})
	g.Go(func() error {
		content, err := os.ReadFile(jobPath)
		if err != nil {
			return fmt.Errorf("failed to read job posting: %w", err)
		}
		j, err := jobparse.Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse job posting: %w", err)
		}
		if err := schemas.ValidateJob(j); err != nil {
			return fmt.Errorf("parsed job failed validation: %w", err)
		}
		job = j
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	rel := relevance.Analyze(resume, job)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResume(resume)
		printer.PrintJob(job)
		printer.PrintRelevance(rel)
	}

	if runAnalysisFile != "" {
		if err := writeJSON(runAnalysisFile, rel); err != nil {
			return err
		}
	}

	templateID := runTemplateID
	if templateID == "" {
		templateID = cfg.Template
	}

	doc, err := rendering.Render(resume, templateID)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	output := runOutputFile
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		_, err = fmt.Fprint(os.Stdout, doc)
		return err
	}

	if err := os.WriteFile(output, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	log.Info().Str("run_id", runID).Str("output", output).Str("template", templateID).Msg("pipeline run complete")
	return nil
}
