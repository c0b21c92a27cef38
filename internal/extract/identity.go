// Package extract turns segmented resume text into a draft Resume record
// using regex heuristics. Every extractor is best-effort: missing or
// malformed input leaves the corresponding fields at their defaults, and the
// only quality signal is the extraction confidence on the record metadata.
package extract

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.]?([0-9]{4})`)
	urlRe   = regexp.MustCompile(`https?://[^\s]+`)

	formats = validator.New()
)

// Identity extracts the contact block from the whole resume body: email and
// phone by pattern match (first match wins), name from the first meaningful
// line, and links classified by URL substring. An email-shaped match that
// fails the validation gate's format check (consecutive dots, hyphen-edged
// domains) is dropped so a draft fresh from extraction always validates.
func Identity(text string) types.Identity {
	id := types.Identity{Links: []types.Link{}}

	if m := emailRe.FindString(text); m != "" && formats.Var(m, "email") == nil {
		id.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		id.Phone = m
	}

	id.Name = extractName(ingestion.NonEmptyLines(text))

	for _, url := range urlRe.FindAllString(text, -1) {
		id.Links = append(id.Links, types.Link{Type: classifyLink(url), URL: url})
	}

	return id
}

// extractName takes the first line, skipping one that looks like a document
// title ("resume", "curriculum").
func extractName(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := strings.ToLower(lines[0])
	if !strings.Contains(first, "resume") && !strings.Contains(first, "curriculum") {
		return lines[0]
	}
	if len(lines) > 1 {
		return lines[1]
	}
	return ""
}

// classifyLink tags a URL by substring probes in priority order:
// linkedin, github, portfolio, other.
func classifyLink(url string) types.LinkKind {
	switch {
	case strings.Contains(url, "linkedin.com"):
		return types.LinkLinkedIn
	case strings.Contains(url, "github.com"):
		return types.LinkGitHub
	case strings.Contains(url, "portfolio") || strings.Contains(url, "personal"):
		return types.LinkPortfolio
	default:
		return types.LinkOther
	}
}
