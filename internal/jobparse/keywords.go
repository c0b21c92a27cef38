package jobparse

import (
	"regexp"
)

// maxKeywords caps the keyword list on a job record.
const maxKeywords = 50

var (
	capitalizedRe = regexp.MustCompile(`\b[A-Z][A-Za-z0-9+#.\-]*\b`)
	technicalRe   = regexp.MustCompile(`\b(?:[A-Z][A-Za-z0-9]*[./+#\-][A-Za-z0-9./+#\-]*|[A-Z]{2,})\b`)
)

// keywordStoplist holds common capitalized words that carry no signal.
var keywordStoplist = map[string]bool{
	"The": true, "We": true, "You": true, "Our": true, "Are": true,
	"Will": true, "Can": true, "Must": true, "Should": true,
}

// Keywords extracts likely-important terms from the whole posting:
// capitalized words (minus the stoplist) and tokens with internal
// punctuation or all-uppercase acronyms. The result is deduplicated in
// first-seen order and capped at maxKeywords.
func Keywords(text string) []string {
	seen := make(map[string]bool)
	keywords := []string{}

	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		keywords = append(keywords, s)
	}

	for _, m := range capitalizedRe.FindAllString(text, -1) {
		if len(m) > 2 && !keywordStoplist[m] {
			add(m)
		}
	}

	for _, m := range technicalRe.FindAllString(text, -1) {
		add(m)
	}

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
