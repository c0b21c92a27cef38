package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/decode"
	"github.com/jonathan/resume-tailor/internal/types"
)

const sampleResume = `Jane Doe
jane@example.com | (555) 123-4567
https://github.com/jane

Experience
Software Engineer | Acme Corp | Jan 2020 - Present
• Built the billing pipeline from scratch
• Cut infra spend by a third across services

Education
State University, BS Computer Science 2019

Skills
Python, Go, React, CUDA, Docker

Projects
Ray Tracer
• Renders production scenes interactively
`

func TestResume_FullDocument(t *testing.T) {
	r := Resume(sampleResume, types.SourcePDF)

	assert.Equal(t, "Jane Doe", r.Identity.Name)
	assert.Equal(t, "jane@example.com", r.Identity.Email)
	require.Len(t, r.Identity.Links, 1)
	assert.Equal(t, types.LinkGitHub, r.Identity.Links[0].Type)

	require.Len(t, r.Experience, 1)
	assert.Equal(t, "Acme Corp", r.Experience[0].Company)

	require.Len(t, r.Education, 1)
	assert.Equal(t, "State University", r.Education[0].School)

	assert.Contains(t, r.Skills.Languages, "Python")
	assert.Contains(t, r.Skills.Frameworks, "React")
	assert.Contains(t, r.Skills.GPUGraphics, "CUDA")
	assert.Contains(t, r.Skills.SystemsTools, "Docker")

	require.Len(t, r.Projects, 1)
	assert.Equal(t, "Ray Tracer", r.Projects[0].Name)

	assert.Equal(t, []string{"pdf"}, r.Metadata.SourceFiles)
	assert.InDelta(t, 0.7, r.Metadata.ExtractionConfidence, 1e-9)
}

func TestResume_EmptyTextYieldsZeroConfidenceSkeleton(t *testing.T) {
	r := Resume("", types.SourceDOCX)

	assert.Zero(t, r.Metadata.ExtractionConfidence)
	assert.Empty(t, r.Experience)
	assert.Empty(t, r.Identity.Name)
}

func TestResume_NoHeadersStillProducesValidDraft(t *testing.T) {
	r := Resume("Jane Doe\njane@example.com\nsome prose with no section headers", types.SourceLaTeX)

	assert.Equal(t, "Jane Doe", r.Identity.Name)
	assert.Empty(t, r.Experience)
	assert.NotNil(t, r.Skills.Languages)
	assert.InDelta(t, 0.7, r.Metadata.ExtractionConfidence, 1e-9)
}

func TestResumeFromFile_UnsupportedExtension(t *testing.T) {
	_, err := ResumeFromFile("resume.png")

	var unsupported *decode.UnsupportedInputError
	assert.ErrorAs(t, err, &unsupported)
}

func TestResumeFromFile_MalformedPDFReturnsSkeleton(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not really a pdf"), 0o644))

	r, err := ResumeFromFile(path)
	require.NoError(t, err)

	assert.Zero(t, r.Metadata.ExtractionConfidence)
	assert.Empty(t, r.Experience)
}

func TestResumeFromFile_LaTeX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.tex")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o644))

	r, err := ResumeFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", r.Identity.Name)
	assert.Equal(t, []string{"latex"}, r.Metadata.SourceFiles)
}
