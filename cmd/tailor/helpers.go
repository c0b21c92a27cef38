package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/types"
)

// writeJSON marshals v with indentation and writes it to path, or to stdout
// when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// readResumeRecord loads a resume record JSON file produced by the extract
// command.
func readResumeRecord(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume record: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume record %s: %w", path, err)
	}
	return &resume, nil
}

// readJobRecord loads a job record JSON file produced by the parse-job
// command.
func readJobRecord(path string) (*types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job record: %w", err)
	}

	var job types.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job record %s: %w", path, err)
	}
	return &job, nil
}
