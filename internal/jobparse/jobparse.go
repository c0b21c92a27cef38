// Package jobparse extracts a structured job record from pasted posting
// text. Like resume extraction it is best-effort regex work: missing
// sections leave fields at their defaults and nothing here returns an error
// for low-quality input.
package jobparse

import (
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/segment"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ErrURLFetchNotImplemented is returned when the input is a URL. Fetching
// pages is a collaborator's job and deliberately not implemented here;
// callers should paste the posting text instead.
var ErrURLFetchNotImplemented = errors.New("URL fetching is not implemented: paste the job description text directly")

// titleWords mark a line as a probable role title.
var titleWords = []string{"engineer", "developer", "scientist", "manager", "designer"}

var (
	companyRe  = regexp.MustCompile(`(?:at|@|for)\s+([A-Z][A-Za-z\s&]+?)(?:\s|,|\n)`)
	locationRe = regexp.MustCompile(`(?i)(?:location|based in|office in)[:\s]+([A-Za-z ,]+)`)
)

// Parse resolves pasted input into a draft job record. URLs are rejected
// with ErrURLFetchNotImplemented; pasted HTML is stripped to text first.
func Parse(input string) (*types.Job, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return nil, ErrURLFetchNotImplemented
	}

	if ingestion.LooksLikeHTML(trimmed) {
		text, err := ingestion.StripHTML(trimmed)
		if err != nil {
			return nil, err
		}
		return FromText(text), nil
	}

	return FromText(trimmed), nil
}

// FromText extracts a draft job record from plain posting text.
func FromText(text string) *types.Job {
	text = ingestion.CleanText(text)

	job := &types.Job{
		Responsibilities: []string{},
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		Keywords:         []string{},
	}
	if text == "" {
		return job
	}

	job.RoleTitle = roleTitle(text)

	if m := companyRe.FindStringSubmatch(text); m != nil {
		job.Company = strings.TrimSpace(m[1])
	}
	if m := locationRe.FindStringSubmatch(text); m != nil {
		job.Location = strings.TrimSpace(m[1])
	}

	sections := segment.Split(text, segment.JobVocab)
	if s, ok := sections["responsibilities"]; ok {
		job.Responsibilities = ingestion.ExtractBullets(s)
	}
	if s, ok := sections["requirements"]; ok {
		job.RequiredSkills = Skills(s)
	}
	if s, ok := sections["preferred"]; ok {
		job.PreferredSkills = Skills(s)
	}

	job.Keywords = Keywords(text)
	job.Signals = detectSignals(strings.ToLower(text))

	log.Debug().
		Str("role_title", job.RoleTitle).
		Int("required_skills", len(job.RequiredSkills)).
		Int("keywords", len(job.Keywords)).
		Msg("extracted job draft")

	return job
}

// roleTitle returns the first of the first five lines naming a common role.
func roleTitle(text string) string {
	lines := ingestion.NonEmptyLines(text)
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		lower := strings.ToLower(lines[i])
		for _, w := range titleWords {
			if strings.Contains(lower, w) {
				return lines[i]
			}
		}
	}
	return ""
}

// detectSignals sets the four topical flags by keyword containment over the
// lowercased posting.
func detectSignals(lower string) types.Signals {
	return types.Signals{
		Research: strings.Contains(lower, "research") || strings.Contains(lower, "phd"),
		GPU:      strings.Contains(lower, "gpu") || strings.Contains(lower, "cuda") || strings.Contains(lower, "parallel"),
		Graphics: strings.Contains(lower, "graphics") || strings.Contains(lower, "opengl") || strings.Contains(lower, "vulkan"),
		GenAI: strings.Contains(lower, "ai") || strings.Contains(lower, "machine learning") ||
			strings.Contains(lower, "deep learning") || strings.Contains(lower, "llm"),
	}
}
