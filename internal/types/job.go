package types

// Job represents a structured job posting extracted from pasted text.
type Job struct {
	Company          string   `json:"company,omitempty"`
	RoleTitle        string   `json:"role_title"`
	Level            string   `json:"level,omitempty"`
	Location         string   `json:"location,omitempty"`
	VisaConstraints  string   `json:"visa_constraints,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	Keywords         []string `json:"keywords"`
	Signals          Signals  `json:"signals"`
}

// Signals are heuristic topical flags set by keyword containment over the
// whole posting. They are not mutually exclusive.
type Signals struct {
	Research bool `json:"research"`
	GPU      bool `json:"gpu"`
	Graphics bool `json:"graphics"`
	GenAI    bool `json:"genai"`
}

// AllSkills returns required then preferred skills as one slice.
func (j *Job) AllSkills() []string {
	out := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	out = append(out, j.RequiredSkills...)
	out = append(out, j.PreferredSkills...)
	return out
}
