package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestIdentity_Email(t *testing.T) {
	id := Identity("Jane Doe\njane.doe@example.com\n555-123-4567")

	assert.Equal(t, "jane.doe@example.com", id.Email)
}

func TestIdentity_FirstEmailWins(t *testing.T) {
	id := Identity("contact: a@first.com or b@second.com")

	assert.Equal(t, "a@first.com", id.Email)
}

func TestIdentity_DropsMalformedEmail(t *testing.T) {
	tests := []string{
		"Jane Doe\njane..doe@example.com",
		"Jane Doe\njane@-example-.com",
	}

	for _, text := range tests {
		id := Identity(text)
		assert.Empty(t, id.Email, "input %q", text)
	}
}

func TestIdentity_Phone(t *testing.T) {
	id := Identity("Jane Doe\n(555) 123-4567")

	assert.Equal(t, "(555) 123-4567", id.Phone)
}

func TestIdentity_NameIsFirstLine(t *testing.T) {
	id := Identity("Jane Doe\njane@example.com")

	assert.Equal(t, "Jane Doe", id.Name)
}

func TestIdentity_SkipsDocumentTitleLine(t *testing.T) {
	id := Identity("Resume\nJane Doe\njane@example.com")

	assert.Equal(t, "Jane Doe", id.Name)
}

func TestIdentity_SkipsCurriculumVitaeLine(t *testing.T) {
	id := Identity("Curriculum Vitae\nJane Doe")

	assert.Equal(t, "Jane Doe", id.Name)
}

func TestIdentity_LinkClassification(t *testing.T) {
	text := "Jane Doe\nhttps://linkedin.com/in/jane https://github.com/jane https://jane-portfolio.dev https://example.com"

	id := Identity(text)
	require.Len(t, id.Links, 4)

	assert.Equal(t, types.LinkLinkedIn, id.Links[0].Type)
	assert.Equal(t, types.LinkGitHub, id.Links[1].Type)
	assert.Equal(t, types.LinkPortfolio, id.Links[2].Type)
	assert.Equal(t, types.LinkOther, id.Links[3].Type)
}

func TestIdentity_EmptyText(t *testing.T) {
	id := Identity("")

	assert.Empty(t, id.Name)
	assert.Empty(t, id.Email)
	assert.Empty(t, id.Links)
}
