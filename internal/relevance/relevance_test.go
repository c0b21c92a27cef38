package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestAnalyze_MatchingAndMissingSkills(t *testing.T) {
	resume := &types.Resume{
		Skills: types.Skills{Languages: []string{"Python"}},
	}
	job := &types.Job{RequiredSkills: []string{"python", "Go"}}

	rel := Analyze(resume, job)

	assert.Equal(t, []string{"python"}, rel.MatchingSkills)
	assert.Equal(t, []string{"Go"}, rel.MissingSkills)
}

func TestAnalyze_SkillMatchIsCaseInsensitive(t *testing.T) {
	resume := &types.Resume{
		Skills: types.Skills{SystemsTools: []string{"DOCKER"}},
	}
	job := &types.Job{PreferredSkills: []string{"docker"}}

	rel := Analyze(resume, job)

	assert.Equal(t, []string{"docker"}, rel.MatchingSkills)
	assert.Empty(t, rel.MissingSkills)
}

func TestAnalyze_MatchingKeywordsFromBulletWords(t *testing.T) {
	resume := &types.Resume{
		Experience: []types.Experience{
			{Bullets: []string{"Migrated services to Kubernetes at scale"}},
		},
	}
	job := &types.Job{Keywords: []string{"Kubernetes", "Terraform"}}

	rel := Analyze(resume, job)

	assert.Equal(t, []string{"Kubernetes"}, rel.MatchingKeywords)
}

func TestAnalyze_ShortWordsIgnoredForKeywordMatching(t *testing.T) {
	resume := &types.Resume{
		Experience: []types.Experience{{Bullets: []string{"Wrote Go and C code"}}},
	}
	job := &types.Job{Keywords: []string{"Go"}}

	rel := Analyze(resume, job)

	assert.Empty(t, rel.MatchingKeywords)
}

func TestAnalyze_ExperienceEmphasisNeedsMoreThanTwoKeywords(t *testing.T) {
	resume := &types.Resume{
		Experience: []types.Experience{
			{Bullets: []string{"Built Kubernetes operators in Go with Terraform pipelines"}},
			{Bullets: []string{"Unrelated clerical work"}},
		},
	}
	job := &types.Job{Keywords: []string{"Kubernetes", "Go", "Terraform"}}

	rel := Analyze(resume, job)

	assert.Equal(t, []int{0}, rel.Emphasis.Experiences)
}

func TestAnalyze_ProjectEmphasisNeedsMoreThanOneKeyword(t *testing.T) {
	resume := &types.Resume{
		Projects: []types.Project{
			{Name: "Terraform modules", Bullets: []string{"Provisioned Kubernetes clusters"}},
			{Name: "Unrelated", Bullets: []string{"Nothing matching here"}},
		},
	}
	job := &types.Job{Keywords: []string{"Kubernetes", "Terraform"}}

	rel := Analyze(resume, job)

	assert.Equal(t, []int{0}, rel.Emphasis.Projects)
}

func TestAnalyze_SkillSuggestionsCappedAtTen(t *testing.T) {
	skills := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"}
	resume := &types.Resume{Skills: types.Skills{Languages: skills}}
	job := &types.Job{RequiredSkills: skills}

	rel := Analyze(resume, job)

	require.Len(t, rel.MatchingSkills, 12)
	assert.Len(t, rel.Emphasis.Skills, 10)
	assert.Equal(t, rel.MatchingSkills[:10], rel.Emphasis.Skills)
}

func TestAnalyze_Deterministic(t *testing.T) {
	resume := &types.Resume{
		Skills:     types.Skills{Languages: []string{"Go", "Python"}},
		Experience: []types.Experience{{Bullets: []string{"Shipped Kubernetes things repeatedly"}}},
	}
	job := &types.Job{
		RequiredSkills: []string{"Go", "Rust"},
		Keywords:       []string{"Kubernetes"},
	}

	first := Analyze(resume, job)
	second := Analyze(resume, job)

	assert.Equal(t, first, second)
}

func TestAnalyze_NilInputs(t *testing.T) {
	rel := Analyze(nil, nil)

	assert.NotNil(t, rel.MatchingSkills)
	assert.Empty(t, rel.MatchingSkills)
	assert.NotNil(t, rel.Emphasis.Experiences)
}
