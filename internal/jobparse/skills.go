package jobparse

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
)

// Curated technology-name patterns, grouped roughly by concern. Matches keep
// the casing found in the posting.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Python|JavaScript|TypeScript|Java|Go|Rust|Ruby|PHP|Swift|Kotlin|Scala)\b`),
	regexp.MustCompile(`(?i)C\+\+|C#`),
	regexp.MustCompile(`(?i)\b(React|Angular|Vue|Django|Flask|FastAPI|Express|Node\.js|Next\.js|Spring|Rails)\b`),
	regexp.MustCompile(`(?i)\b(SQL|MySQL|PostgreSQL|MongoDB|Redis|Elasticsearch|DynamoDB)\b`),
	regexp.MustCompile(`(?i)\b(AWS|Azure|GCP|Docker|Kubernetes|Terraform)\b`),
	regexp.MustCompile(`(?i)\b(TensorFlow|PyTorch|Keras|Scikit-learn|CUDA|OpenCV)\b`),
	regexp.MustCompile(`(?i)\b(Git|CI/CD|Jenkins|GitHub Actions|Jira)\b`),
}

// experienceWithRe catches free-text "experience with X" / "experience in X"
// phrases whose X is not in the curated lists.
var experienceWithRe = regexp.MustCompile(`(?i)experience (?:with|in) ([\w\s,./+#\-]+?)(?:\.|,|\n|$)`)

// Skills extracts technology names from a requirements or preferred section.
// Results are deduplicated preserving first-seen order.
func Skills(text string) []string {
	seen := make(map[string]bool)
	skills := []string{}

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		skills = append(skills, s)
	}

	for _, re := range skillPatterns {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}

	for _, bullet := range ingestion.ExtractBullets(text) {
		m := experienceWithRe.FindStringSubmatch(bullet)
		if m == nil {
			continue
		}
		for _, s := range strings.FieldsFunc(m[1], func(r rune) bool { return r == ',' || r == '/' }) {
			add(s)
		}
	}

	return skills
}
