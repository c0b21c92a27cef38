package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		path string
		kind types.SourceKind
	}{
		{"resume.pdf", types.SourcePDF},
		{"resume.PDF", types.SourcePDF},
		{"resume.tex", types.SourceLaTeX},
		{"resume.latex", types.SourceLaTeX},
		{"resume.docx", types.SourceDOCX},
		{"resume.doc", types.SourceDOCX},
	}

	for _, tt := range tests {
		kind, err := KindFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.kind, kind, tt.path)
	}
}

func TestKindFromPath_Unsupported(t *testing.T) {
	_, err := KindFromPath("resume.png")

	var unsupported *UnsupportedInputError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "png", unsupported.Ext)
}

func TestText_LaTeXPassesThrough(t *testing.T) {
	text, err := Text([]byte("\\section{Experience}\nAcme 2020"), types.SourceLaTeX)
	require.NoError(t, err)

	assert.Contains(t, text, "Acme 2020")
}

func TestText_MalformedPDFFails(t *testing.T) {
	_, err := Text([]byte("not a pdf at all"), types.SourcePDF)

	assert.Error(t, err)
}

func TestText_MalformedDOCXFails(t *testing.T) {
	_, err := Text([]byte("not a docx"), types.SourceDOCX)

	assert.Error(t, err)
}
