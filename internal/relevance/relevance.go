// Package relevance compares a validated resume against a job record and
// suggests what to emphasize when tailoring. Analysis is a pure function of
// its two inputs: same records in, same map out.
package relevance

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Fixed policy thresholds for emphasis suggestions.
const (
	// experienceKeywordMin is the number of distinct job keywords an
	// experience entry must exceed to be suggested.
	experienceKeywordMin = 2
	// projectKeywordMin is the same bound for project entries.
	projectKeywordMin = 1
	// maxSkillSuggestions caps the emphasized skill subset.
	maxSkillSuggestions = 10
	// minKeywordWordLen filters short words out of the resume keyword pool.
	minKeywordWordLen = 3
)

// Analyze computes the relevance map for one resume against one job.
func Analyze(resume *types.Resume, job *types.Job) *types.RelevanceMap {
	rel := &types.RelevanceMap{
		MatchingSkills:   []string{},
		MissingSkills:    []string{},
		MatchingKeywords: []string{},
		Emphasis: types.EmphasisSuggestions{
			Experiences: []int{},
			Projects:    []int{},
			Skills:      []string{},
		},
	}
	if resume == nil || job == nil {
		return rel
	}

	resumeSkills := lowerSet(resume.Skills.Flatten())
	for _, skill := range job.AllSkills() {
		if resumeSkills[strings.ToLower(skill)] {
			rel.MatchingSkills = append(rel.MatchingSkills, skill)
		} else {
			rel.MissingSkills = append(rel.MissingSkills, skill)
		}
	}

	resumeWords := bulletWords(resume.Experience)
	for _, keyword := range job.Keywords {
		if resumeWords[strings.ToLower(keyword)] {
			rel.MatchingKeywords = append(rel.MatchingKeywords, keyword)
		}
	}

	for i, exp := range resume.Experience {
		text := strings.ToLower(strings.Join(exp.Bullets, " "))
		if countKeywordHits(text, job.Keywords) > experienceKeywordMin {
			rel.Emphasis.Experiences = append(rel.Emphasis.Experiences, i)
		}
	}

	for i, proj := range resume.Projects {
		text := strings.ToLower(proj.Name + " " + strings.Join(proj.Bullets, " "))
		if countKeywordHits(text, job.Keywords) > projectKeywordMin {
			rel.Emphasis.Projects = append(rel.Emphasis.Projects, i)
		}
	}

	limit := len(rel.MatchingSkills)
	if limit > maxSkillSuggestions {
		limit = maxSkillSuggestions
	}
	rel.Emphasis.Skills = append(rel.Emphasis.Skills, rel.MatchingSkills[:limit]...)

	return rel
}

// lowerSet builds a lowercase membership set.
func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = true
	}
	return set
}

// bulletWords collects every word longer than minKeywordWordLen from all
// experience bullets, lowercased.
func bulletWords(experience []types.Experience) map[string]bool {
	words := make(map[string]bool)
	for _, exp := range experience {
		for _, bullet := range exp.Bullets {
			for _, w := range strings.Fields(bullet) {
				if len(w) > minKeywordWordLen {
					words[strings.ToLower(w)] = true
				}
			}
		}
	}
	return words
}

// countKeywordHits counts distinct keywords appearing in text by
// case-insensitive substring containment.
func countKeywordHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			hits++
		}
	}
	return hits
}
