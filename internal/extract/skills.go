package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Category patterns tried in priority order; the first match claims the
// token and anything unmatched lands in systems_tools.
var (
	languageRe  = regexp.MustCompile(`(?i)python|java|c\+\+|javascript|typescript|rust|go|c#`)
	frameworkRe = regexp.MustCompile(`(?i)react|vue|angular|django|flask|node|express|next`)
	gpuRe       = regexp.MustCompile(`(?i)cuda|opengl|vulkan|directx|metal|gpu|shader`)

	skillTokenRe = regexp.MustCompile(`[,;]`)
)

// SkillsFrom tokenizes the skills section on commas and semicolons and
// assigns each token to exactly one category list.
func SkillsFrom(text string) types.Skills {
	skills := types.Skills{
		Languages:    []string{},
		Frameworks:   []string{},
		GPUGraphics:  []string{},
		SystemsTools: []string{},
	}

	for _, line := range strings.Split(text, "\n") {
		for _, token := range skillTokenRe.Split(line, -1) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			switch {
			case languageRe.MatchString(token):
				skills.Languages = append(skills.Languages, token)
			case frameworkRe.MatchString(token):
				skills.Frameworks = append(skills.Frameworks, token)
			case gpuRe.MatchString(token):
				skills.GPUGraphics = append(skills.GPUGraphics, token)
			default:
				skills.SystemsTools = append(skills.SystemsTools, token)
			}
		}
	}

	return skills
}
