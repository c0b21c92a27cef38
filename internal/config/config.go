// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume source file (.pdf, .tex, .docx)
	Job    string `json:"job,omitempty"`    // Path to job posting text file
	Output string `json:"output,omitempty"` // Path to write rendered LaTeX to

	// Rendering
	Template string `json:"template,omitempty"` // Registered template id

	// Behavior
	Verbose   bool   `json:"verbose,omitempty"`    // Print boxed summaries of extracted records
	LogLevel  string `json:"log_level,omitempty"`  // zerolog level: debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // "json" or "pretty"
}

// FromEnv returns a Config populated from TAILOR_* environment variables.
// godotenv loading in main makes .env files visible here.
func FromEnv() Config {
	return Config{
		Resume:    os.Getenv("TAILOR_RESUME"),
		Job:       os.Getenv("TAILOR_JOB"),
		Output:    os.Getenv("TAILOR_OUTPUT"),
		Template:  os.Getenv("TAILOR_TEMPLATE"),
		LogLevel:  os.Getenv("TAILOR_LOG_LEVEL"),
		LogFormat: os.Getenv("TAILOR_LOG_FORMAT"),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: 'log_format' must be \"json\" or \"pretty\"")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Template == "" {
		if defaults.Template != "" {
			result.Template = defaults.Template
		} else {
			result.Template = "modern"
		}
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
