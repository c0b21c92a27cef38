package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"resume": "resume.pdf",
		"template": "academic",
		"log_level": "debug",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.pdf", cfg.Resume)
	assert.Equal(t, "academic", cfg.Template)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_RejectsUnknownLogFormat(t *testing.T) {
	cfg := &Config{LogFormat: "xml"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log_format")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.pdf"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{Resume: "mine.pdf"}
	defaults := Config{Resume: "other.pdf", Job: "job.txt", LogLevel: "warn"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.pdf", merged.Resume)
	assert.Equal(t, "job.txt", merged.Job)
	assert.Equal(t, "warn", merged.LogLevel)
}

func TestFromEnv_ReadsTailorVariables(t *testing.T) {
	t.Setenv("TAILOR_TEMPLATE", "academic")
	t.Setenv("TAILOR_LOG_LEVEL", "debug")

	cfg := FromEnv()

	assert.Equal(t, "academic", cfg.Template)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.Resume)
}

func TestMergeWithDefaults_TemplateFallsBackToModern(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, "modern", merged.Template)
}
