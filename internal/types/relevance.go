package types

// RelevanceMap is the derived comparison of one resume against one job
// posting. It is recomputed on demand and never persisted.
type RelevanceMap struct {
	MatchingSkills   []string            `json:"matching_skills"`
	MissingSkills    []string            `json:"missing_skills"`
	MatchingKeywords []string            `json:"matching_keywords"`
	Emphasis         EmphasisSuggestions `json:"emphasis_suggestions"`
}

// EmphasisSuggestions names the resume entries worth foregrounding when
// tailoring to a job: experience and project indices plus a skill subset.
type EmphasisSuggestions struct {
	Experiences []int    `json:"experiences"`
	Projects    []int    `json:"projects"`
	Skills      []string `json:"skills"`
}
