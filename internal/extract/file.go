package extract

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-tailor/internal/decode"
	"github.com/jonathan/resume-tailor/internal/types"
)

// DecodeError reports a collaborator failure turning document bytes into text.
type DecodeError struct {
	Path    string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode failed for %s: %s", e.Path, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ResumeFromFile decodes a resume document and extracts a draft record.
// Unrecognized extensions fail with decode.UnsupportedInputError. A failed
// PDF decode degrades to an all-empty, zero-confidence skeleton instead of
// propagating, since a scanned or malformed PDF is an expected input.
func ResumeFromFile(path string) (*types.Resume, error) {
	kind, err := decode.KindFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Message: "failed to read file", Cause: err}
	}

	text, err := decode.Text(data, kind)
	if err != nil {
		if kind == types.SourcePDF {
			log.Warn().Err(err).Str("path", path).Msg("pdf decode failed, returning empty skeleton")
			return types.NewSkeleton(kind), nil
		}
		return nil, &DecodeError{Path: path, Message: "failed to extract text", Cause: err}
	}

	return Resume(text, kind), nil
}
