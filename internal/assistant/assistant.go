// Package assistant defines the extension point for instruction-driven
// resume refinement. The shipped implementation is a stub; callers must be
// prepared for ErrNotImplemented.
package assistant

import (
	"context"
	"errors"

	"github.com/jonathan/resume-tailor/internal/types"
)

// ErrNotImplemented is returned by Unimplemented for every refinement
// request.
var ErrNotImplemented = errors.New("assistant: refinement is not implemented")

// Assistant applies a free-form instruction to a structured resume and
// reports what changed.
type Assistant interface {
	// Refine returns the modified resume and a human-readable description
	// of the edits. The input resume is never mutated.
	Refine(ctx context.Context, resume *types.Resume, instruction string) (*types.Resume, string, error)
}

// Unimplemented is the default Assistant. It rejects every instruction.
type Unimplemented struct{}

// Refine always fails with ErrNotImplemented.
func (Unimplemented) Refine(_ context.Context, _ *types.Resume, _ string) (*types.Resume, string, error) {
	return nil, "", ErrNotImplemented
}
