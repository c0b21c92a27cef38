package extract

import (
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/segment"
	"github.com/jonathan/resume-tailor/internal/types"
)

// defaultConfidence is the extraction confidence assigned to any draft built
// from non-empty text. Heuristic extraction is approximate by nature, so the
// value is a fixed policy constant rather than a computed score.
const defaultConfidence = 0.7

// Resume extracts a draft resume record from already-decoded plain text.
// It never fails: text with no recognizable structure yields a low-content
// but schema-valid draft.
func Resume(text string, kind types.SourceKind) *types.Resume {
	resume := types.NewSkeleton(kind)
	text = ingestion.CleanText(text)
	if text == "" {
		return resume
	}
	resume.Metadata.ExtractionConfidence = defaultConfidence

	resume.Identity = Identity(text)

	sections := segment.Split(text, segment.ResumeVocab)
	if s, ok := sections["experience"]; ok {
		resume.Experience = Experiences(s)
	}
	if s, ok := sections["education"]; ok {
		resume.Education = Educations(s)
	}
	if s, ok := sections["skills"]; ok {
		resume.Skills = SkillsFrom(s)
	}
	if s, ok := sections["projects"]; ok {
		resume.Projects = Projects(s)
	}

	log.Debug().
		Str("source_kind", string(kind)).
		Int("sections", len(sections)).
		Int("experience", len(resume.Experience)).
		Int("education", len(resume.Education)).
		Int("projects", len(resume.Projects)).
		Msg("extracted resume draft")

	return resume
}
