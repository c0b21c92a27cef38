package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	yearRe        = regexp.MustCompile(`\d{4}`)
	schoolSplitRe = regexp.MustCompile(`[,|]`)
)

var institutionWords = []string{"university", "college"}
var degreeWords = []string{"bachelor", "master", "phd"}

// Educations parses the education section. A new entry starts on any line
// containing a year or an institution/degree keyword. Lines naming an
// institution split into school and degree on "," or "|"; otherwise the
// whole line is kept as the degree. A later line fills school first, then
// the field of study.
func Educations(text string) []types.Education {
	entries := []types.Education{}
	var current *types.Education

	for _, line := range ingestion.NonEmptyLines(text) {
		lower := strings.ToLower(line)
		year := yearRe.FindString(line)

		if year != "" || containsAny(lower, institutionWords) || containsAny(lower, degreeWords) {
			if current != nil {
				entries = append(entries, *current)
			}
			current = newEducation(line, lower, year)
			continue
		}

		if current != nil && len(line) > 10 {
			if current.School == "" {
				current.School = line
			} else if current.Field == "" {
				current.Field = line
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

func newEducation(line, lower, year string) *types.Education {
	edu := &types.Education{EndDate: year}

	if containsAny(lower, institutionWords) {
		parts := schoolSplitRe.Split(line, -1)
		edu.School = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			edu.Degree = strings.TrimSpace(parts[1])
		}
	} else {
		edu.Degree = strings.TrimSpace(line)
	}

	return edu
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
