// Package segment splits raw resume or job posting text into named sections
// by matching header lines against a fixed vocabulary of patterns.
package segment

import (
	"regexp"
	"strings"
)

// headerPattern pairs a section name with the regexp that recognizes its
// header line. Patterns are tried in order; the first match wins.
type headerPattern struct {
	name string
	re   *regexp.Regexp
}

// Vocabulary is a fixed, ordered set of header patterns plus the maximum
// length a line may have to count as a header. The length cap keeps long
// sentences that merely contain a keyword like "experience" from being
// misread as headers.
type Vocabulary struct {
	patterns     []headerPattern
	maxHeaderLen int
}

// ResumeVocab recognizes the section headers of a resume.
var ResumeVocab = Vocabulary{
	maxHeaderLen: 50,
	patterns: []headerPattern{
		{"experience", regexp.MustCompile(`(?i)(?:(?:work\s+)?experience|employment(?:\s+history)?)`)},
		{"education", regexp.MustCompile(`(?i)education`)},
		{"skills", regexp.MustCompile(`(?i)(?:(?:technical\s+)?skills|technologies)`)},
		{"projects", regexp.MustCompile(`(?i)(?:projects|portfolio)`)},
		{"publications", regexp.MustCompile(`(?i)(?:publications|papers)`)},
		{"certifications", regexp.MustCompile(`(?i)(?:certifications|certificates)`)},
	},
}

// JobVocab recognizes the section headers of a job posting.
var JobVocab = Vocabulary{
	maxHeaderLen: 100,
	patterns: []headerPattern{
		{"responsibilities", regexp.MustCompile(`(?i)(?:responsibilities|what you['’]ll do|role|duties)`)},
		{"requirements", regexp.MustCompile(`(?i)(?:requirements|qualifications|what we['’]re looking for|minimum qualifications)`)},
		{"preferred", regexp.MustCompile(`(?i)(?:preferred|nice to have|bonus|plus|ideal candidate)`)},
		{"about", regexp.MustCompile(`(?i)(?:about us|about the company|who we are)`)},
		{"benefits", regexp.MustCompile(`(?i)(?:benefits|perks|what we offer)`)},
	},
}

// match returns the section name for a header line, or "" if the line is not
// a header under this vocabulary.
func (v Vocabulary) match(line string) string {
	if len(line) >= v.maxHeaderLen {
		return ""
	}
	for _, p := range v.patterns {
		if p.re.MatchString(line) {
			return p.name
		}
	}
	return ""
}

// Split scans text line by line and returns a map from section name to the
// text collected between that header and the next recognized header. Lines
// before the first header are discarded. If the same section header recurs,
// the later occurrence replaces the earlier content (last-write-wins). Text
// with no recognized header yields an empty map; that is not an error.
func Split(text string, vocab Vocabulary) map[string]string {
	sections := make(map[string]string)

	current := ""
	var content []string

	flush := func() {
		if current != "" && len(content) > 0 {
			sections[current] = strings.Join(content, "\n")
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if name := vocab.match(line); name != "" {
			flush()
			current = name
			content = nil
			continue
		}
		if current != "" {
			content = append(content, line)
		}
	}
	flush()

	return sections
}
