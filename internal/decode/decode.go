// Package decode turns uploaded document bytes into plain text. It is the
// collaborator boundary in front of extraction: everything downstream works
// on the text this package produces and never sees document bytes.
package decode

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-tailor/internal/types"
)

// UnsupportedInputError reports a file extension no decoder handles.
type UnsupportedInputError struct {
	Ext string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}

// KindFromPath maps a file extension to its source kind.
func KindFromPath(path string) (types.SourceKind, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "pdf":
		return types.SourcePDF, nil
	case "tex", "latex":
		return types.SourceLaTeX, nil
	case "docx", "doc":
		return types.SourceDOCX, nil
	default:
		return "", &UnsupportedInputError{Ext: ext}
	}
}

// Text extracts plain text from document bytes of the given kind.
func Text(data []byte, kind types.SourceKind) (string, error) {
	switch kind {
	case types.SourcePDF:
		return pdfText(data)
	case types.SourceDOCX:
		return docxText(data)
	case types.SourceLaTeX:
		// LaTeX sources are already text; the heuristics downstream cope
		// with the markup.
		return string(data), nil
	default:
		return "", &UnsupportedInputError{Ext: string(kind)}
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
