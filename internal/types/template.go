package types

// Template describes one entry of the static template registry.
type Template struct {
	ID          string              `json:"template_id" yaml:"template_id"`
	Name        string              `json:"name" yaml:"name"`
	Description string              `json:"description" yaml:"description"`
	Schema      TemplateSchema      `json:"schema" yaml:"schema"`
	Slots       map[string]string   `json:"slots" yaml:"slots"`
	Constraints TemplateConstraints `json:"constraints" yaml:"constraints"`
}

// TemplateSchema names the record fields a template requires and the
// sections it surfaces, in render order.
type TemplateSchema struct {
	RequiredFields []string `json:"required_fields" yaml:"required_fields"`
	Sections       []string `json:"sections" yaml:"sections"`
}

// TemplateConstraints bound the rendered output. PageLimit defaults to 1.
type TemplateConstraints struct {
	MaxBullets         int `json:"max_bullets,omitempty" yaml:"max_bullets,omitempty"`
	MaxCharsPerSection int `json:"max_chars_per_section,omitempty" yaml:"max_chars_per_section,omitempty"`
	PageLimit          int `json:"page_limit" yaml:"page_limit"`
}
