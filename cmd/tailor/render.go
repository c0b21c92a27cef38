package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/schemas"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume record into a LaTeX document",
	Long:  "Render loads a resume record JSON file and produces a LaTeX document using one of the registered templates. Run 'tailor templates' to list them.",
	RunE:  runRender,
}

var (
	renderResumeFile string
	renderTemplateID string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVar(&renderResumeFile, "resume", "", "Path to resume record JSON (from extract)")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "", "Template id (default: config 'template' or modern)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output .tex file (default: stdout)")

	_ = renderCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	resume, err := readResumeRecord(renderResumeFile)
	if err != nil {
		return err
	}
	if err := schemas.ValidateResume(resume); err != nil {
		return fmt.Errorf("resume record failed validation: %w", err)
	}

	templateID := renderTemplateID
	if templateID == "" {
		templateID = cfg.Template
	}

	doc, err := rendering.Render(resume, templateID)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	output := renderOutputFile
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
	return nil
}
