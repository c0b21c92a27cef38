package ingestion

import (
	"regexp"
	"strings"
)

// minBulletLen is the shortest unbulleted line treated as bullet content.
// Shorter lines without a glyph are assumed to be noise and dropped.
const minBulletLen = 20

var (
	numberedRe     = regexp.MustCompile(`^\d+\.\s*`)
	bulletPrefixRe = regexp.MustCompile(`^[•\-*·]\s*`)
)

// IsBulletLine reports whether a trimmed line starts with a bullet glyph or
// a numeric-dot prefix.
func IsBulletLine(line string) bool {
	if numberedRe.MatchString(line) {
		return true
	}
	return strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "·")
}

// StripBullet removes a leading bullet glyph or numeric-dot prefix.
func StripBullet(line string) string {
	line = numberedRe.ReplaceAllString(line, "")
	line = bulletPrefixRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// ExtractBullets pulls an ordered bullet list from section text. Lines with a
// bullet glyph start a new bullet with the glyph stripped. A long line
// without a glyph continues the previous bullet (space-joined) when one is
// open, otherwise it starts a new bullet. Short unbulleted lines are dropped.
func ExtractBullets(text string) []string {
	bullets := []string{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case IsBulletLine(trimmed):
			bullets = append(bullets, StripBullet(trimmed))
		case len(trimmed) > minBulletLen && len(bullets) > 0:
			bullets[len(bullets)-1] += " " + trimmed
		case len(trimmed) > minBulletLen:
			bullets = append(bullets, trimmed)
		}
	}

	return bullets
}
