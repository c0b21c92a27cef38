package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsFrom_Categorization(t *testing.T) {
	skills := SkillsFrom("Python, React, CUDA, Docker")

	assert.Equal(t, []string{"Python"}, skills.Languages)
	assert.Equal(t, []string{"React"}, skills.Frameworks)
	assert.Equal(t, []string{"CUDA"}, skills.GPUGraphics)
	assert.Equal(t, []string{"Docker"}, skills.SystemsTools)
}

func TestSkillsFrom_SemicolonSeparated(t *testing.T) {
	skills := SkillsFrom("Rust; Vulkan; Kubernetes")

	assert.Equal(t, []string{"Rust"}, skills.Languages)
	assert.Equal(t, []string{"Vulkan"}, skills.GPUGraphics)
	assert.Equal(t, []string{"Kubernetes"}, skills.SystemsTools)
}

func TestSkillsFrom_FirstCategoryWins(t *testing.T) {
	// "TypeScript" matches the language pattern before anything else can
	// claim it.
	skills := SkillsFrom("TypeScript")

	assert.Equal(t, []string{"TypeScript"}, skills.Languages)
	assert.Empty(t, skills.Frameworks)
}

func TestSkillsFrom_UnmatchedFallsToSystemsTools(t *testing.T) {
	skills := SkillsFrom("Terraform, Bash, Kafka")

	assert.Equal(t, []string{"Terraform", "Bash", "Kafka"}, skills.SystemsTools)
}

func TestSkillsFrom_MultipleLines(t *testing.T) {
	skills := SkillsFrom("Languages: Python, Rust\nTools: Docker")

	assert.Contains(t, skills.Languages, "Languages: Python")
	assert.Contains(t, skills.SystemsTools, "Tools: Docker")
}

func TestSkillsFrom_Empty(t *testing.T) {
	skills := SkillsFrom("")

	assert.Empty(t, skills.Languages)
	assert.Empty(t, skills.SystemsTools)
}
