package rendering

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-tailor/internal/types"
)

//go:embed templates.yaml
var registryFS embed.FS

// registry is the process-wide read-only template table, built once at init
// and never mutated afterwards.
var (
	registry     []types.Template
	registryByID map[string]types.Template
)

func init() {
	data, err := registryFS.ReadFile("templates.yaml")
	if err != nil {
		panic(fmt.Sprintf("rendering: missing embedded registry: %v", err))
	}

	var doc struct {
		Templates []types.Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("rendering: invalid registry: %v", err))
	}

	registry = doc.Templates
	registryByID = make(map[string]types.Template, len(registry))
	for i := range registry {
		if registry[i].Constraints.PageLimit == 0 {
			registry[i].Constraints.PageLimit = 1
		}
		registryByID[registry[i].ID] = registry[i]
	}
}

// List returns every registered template in registry order.
func List() []types.Template {
	out := make([]types.Template, len(registry))
	copy(out, registry)
	return out
}

// Get looks up a template by id.
func Get(id string) (types.Template, bool) {
	t, ok := registryByID[id]
	return t, ok
}
