package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects_NameAndBullets(t *testing.T) {
	text := "Ray Tracer\n• Wrote a path tracer in C++\n• Added BVH acceleration for large scenes"

	projects := Projects(text)
	require.Len(t, projects, 1)

	assert.Equal(t, "Ray Tracer", projects[0].Name)
	assert.Equal(t, []string{"Wrote a path tracer in C++", "Added BVH acceleration for large scenes"}, projects[0].Bullets)
}

func TestProjects_EmbeddedURLMovedToLinks(t *testing.T) {
	projects := Projects("Ray Tracer https://github.com/jane/raytracer\n• Renders scenes in real time on consumer GPUs")
	require.Len(t, projects, 1)

	assert.Equal(t, "Ray Tracer", projects[0].Name)
	assert.Equal(t, []string{"https://github.com/jane/raytracer"}, projects[0].Links)
}

func TestProjects_LongLineBecomesOneLinerThenBullets(t *testing.T) {
	long1 := "A physically based renderer with spectral sampling support, written from scratch over a winter break"
	long2 := "It later grew microfacet materials, a scene description format, and a small interactive preview tool"
	projects := Projects("Renderer\n" + long1 + "\n" + long2)
	require.Len(t, projects, 1)

	assert.Equal(t, long1, projects[0].OneLiner)
	assert.Equal(t, []string{long2}, projects[0].Bullets)
}

func TestProjects_MultipleEntries(t *testing.T) {
	projects := Projects("First Project\n• Did the first thing end to end\nSecond Project\n• Did the second thing end to end")
	require.Len(t, projects, 2)

	assert.Equal(t, "First Project", projects[0].Name)
	assert.Equal(t, "Second Project", projects[1].Name)
}

func TestProjects_BulletsBeforeAnyNameDropped(t *testing.T) {
	assert.Empty(t, Projects("• A bullet that belongs to no project at all"))
}
