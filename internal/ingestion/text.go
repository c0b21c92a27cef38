// Package ingestion normalizes raw input text before extraction. It handles
// line-ending and whitespace cleanup, bullet list extraction, and stripping
// markup from pasted HTML job postings.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	multiBlankRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and whitespace while preserving line
// structure. Bullet glyphs and heading lines survive untouched so the
// downstream heuristics can still see them.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses interior whitespace runs. Bullet
// glyphs survive because they sit at the line start.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return multiSpaceRe.ReplaceAllString(trimmed, " ")
}

// NonEmptyLines splits text into trimmed lines with blanks removed.
func NonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
