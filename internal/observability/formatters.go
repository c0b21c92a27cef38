// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// listPreview writes up to maxItemsToShow bulleted items, then an "and N
// more" line when the list is longer.
func listPreview(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintResume outputs a human-readable summary of an extracted resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", resume.Identity.Name))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", resume.Identity.Email))
	if resume.Identity.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", resume.Identity.Phone))
	}
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", resume.Metadata.ExtractionConfidence))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Projects:           %d\n", len(resume.Projects)))

	if skills := resume.Skills.Flatten(); len(skills) > 0 {
		sb.WriteString("\nSkills:\n")
		listPreview(&sb, skills)
	}

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJob outputs a human-readable summary of the parsed job posting.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.RoleTitle))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	sb.WriteString("\n")

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		listPreview(&sb, job.RequiredSkills)
		sb.WriteString("\n")
	}

	if len(job.PreferredSkills) > 0 {
		sb.WriteString("Preferred Skills:\n")
		listPreview(&sb, job.PreferredSkills)
		sb.WriteString("\n")
	}

	var flags []string
	if job.Signals.Research {
		flags = append(flags, "research")
	}
	if job.Signals.GPU {
		flags = append(flags, "gpu")
	}
	if job.Signals.Graphics {
		flags = append(flags, "graphics")
	}
	if job.Signals.GenAI {
		flags = append(flags, "genai")
	}
	if len(flags) > 0 {
		sb.WriteString(fmt.Sprintf("Signals: %s\n", strings.Join(flags, ", ")))
	}

	p.printBox("PARSED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRelevance outputs a human-readable summary of a relevance analysis.
func (p *Printer) PrintRelevance(rel *types.RelevanceMap) {
	if rel == nil {
		return
	}

	var sb strings.Builder

	if len(rel.MatchingSkills) > 0 {
		sb.WriteString("Matching Skills:\n")
		listPreview(&sb, rel.MatchingSkills)
		sb.WriteString("\n")
	}

	if len(rel.MissingSkills) > 0 {
		sb.WriteString("Missing Skills:\n")
		listPreview(&sb, rel.MissingSkills)
		sb.WriteString("\n")
	}

	if len(rel.MatchingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Matching keywords: %d\n", len(rel.MatchingKeywords)))
	}
	if len(rel.Emphasis.Experiences) > 0 {
		sb.WriteString(fmt.Sprintf("Emphasize experience entries: %v\n", rel.Emphasis.Experiences))
	}
	if len(rel.Emphasis.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Emphasize projects: %v\n", rel.Emphasis.Projects))
	}

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "No overlap found"
	}
	p.printBox("RELEVANCE ANALYSIS", content)
}
