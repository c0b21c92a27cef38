// Package types provides type definitions for the structured records exchanged
// between extraction, validation, relevance analysis, and rendering.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SourceKind identifies the document format the resume text was decoded from.
type SourceKind string

// Supported resume source kinds.
const (
	SourcePDF   SourceKind = "pdf"
	SourceLaTeX SourceKind = "latex"
	SourceDOCX  SourceKind = "docx"
)

// Metadata carries provenance information about an extraction.
type Metadata struct {
	SourceFiles          []string `json:"source_files"`
	ExtractionConfidence float64  `json:"extraction_confidence"`
}

// Resume represents a structured resume extracted from raw document text.
// Drafts produced by extraction must pass schema validation before they are
// rendered or compared against a job posting.
type Resume struct {
	Identity       Identity        `json:"identity"`
	Summary        string          `json:"summary,omitempty"`
	Skills         Skills          `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Publications   []Publication   `json:"publications"`
	Certifications []Certification `json:"certifications"`
	Metadata       Metadata        `json:"metadata"`
}

// NewSkeleton returns an empty resume for the given source kind with zero
// extraction confidence. This is the fallback shape when decoding fails and
// there is no text to extract from.
func NewSkeleton(kind SourceKind) *Resume {
	return &Resume{
		Identity: Identity{Links: []Link{}},
		Skills: Skills{
			Languages:    []string{},
			Frameworks:   []string{},
			GPUGraphics:  []string{},
			SystemsTools: []string{},
		},
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Publications:   []Publication{},
		Certifications: []Certification{},
		Metadata: Metadata{
			SourceFiles:          []string{string(kind)},
			ExtractionConfidence: 0,
		},
	}
}
