package types

// Skills groups resume skills into four category lists. Assignment is
// heuristic: the extractor places each raw token into exactly one list, with
// SystemsTools as the fall-through bucket.
type Skills struct {
	Languages    []string `json:"languages"`
	Frameworks   []string `json:"frameworks"`
	GPUGraphics  []string `json:"gpu_graphics"`
	SystemsTools []string `json:"systems_tools"`
}

// Flatten returns all skills as a single slice in category order:
// languages, frameworks, gpu_graphics, systems_tools.
func (s Skills) Flatten() []string {
	out := make([]string, 0, len(s.Languages)+len(s.Frameworks)+len(s.GPUGraphics)+len(s.SystemsTools))
	out = append(out, s.Languages...)
	out = append(out, s.Frameworks...)
	out = append(out, s.GPUGraphics...)
	out = append(out, s.SystemsTools...)
	return out
}
