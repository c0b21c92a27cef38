package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/types"
)

// maxEntryHeaderLen caps how long a line may be and still be treated as an
// experience entry header. Longer date-bearing lines are bullet prose.
const maxEntryHeaderLen = 100

var (
	yearOrPresentRe = regexp.MustCompile(`(?i)(\d{4}|present|current)`)
	dateRangeRe     = regexp.MustCompile(`(?i)(\w+\s+\d{4}|\d{4})\s*[-–—]\s*(\w+\s+\d{4}|\d{4}|present|current)`)
	yearSplitRe     = regexp.MustCompile(`\d{4}`)
	companyTitleRe  = regexp.MustCompile(`[|,]`)
)

// Experiences parses the experience section into ordered entries. A line
// containing a 4-digit year or "present"/"current" under the header length
// cap starts a new entry; following bullet lines and long prose lines become
// its bullets. No entry is emitted until a date-bearing header has been seen.
func Experiences(text string) []types.Experience {
	entries := []types.Experience{}
	var current *types.Experience

	for _, line := range ingestion.NonEmptyLines(text) {
		if yearOrPresentRe.MatchString(line) && len(line) < maxEntryHeaderLen {
			if current != nil {
				entries = append(entries, *current)
			}
			current = newExperience(line)
			continue
		}

		switch {
		case current == nil:
			// Prose before the first dated header has no entry to live on.
		case ingestion.IsBulletLine(line):
			current.Bullets = append(current.Bullets, ingestion.StripBullet(line))
		case len(line) > 20:
			current.Bullets = append(current.Bullets, line)
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// newExperience parses an entry header line into dates, company, and title.
func newExperience(line string) *types.Experience {
	exp := &types.Experience{Bullets: []string{}, Tech: []string{}}

	if m := dateRangeRe.FindStringSubmatch(line); m != nil {
		exp.StartDate = m[1]
		exp.EndDate = normalizeEndDate(m[2])
	}

	// Company/title live in the text before the first 4-digit year,
	// split on "|" or ",". Without a delimiter the whole prefix is the
	// company.
	prefix := strings.TrimSpace(yearSplitRe.Split(line, 2)[0])
	prefix = strings.TrimRight(prefix, " -–—|,")
	parts := companyTitleRe.Split(prefix, -1)
	if len(parts) >= 2 {
		exp.Title = strings.TrimSpace(parts[0])
		exp.Company = strings.TrimSpace(parts[1])
	} else {
		exp.Company = prefix
	}

	return exp
}

// normalizeEndDate maps "present"/"current" to an empty end date, the
// record's marker for an ongoing role.
func normalizeEndDate(raw string) string {
	lower := strings.ToLower(raw)
	if lower == "present" || lower == "current" {
		return ""
	}
	return raw
}
