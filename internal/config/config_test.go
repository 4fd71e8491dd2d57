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
		"port": 8080,
		"database_url": "postgres://localhost/portal",
		"template": "modern",
		"smtp_host": "smtp.example.com",
		"smtp_port": 2525,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/portal", cfg.DatabaseURL)
	assert.Equal(t, "modern", cfg.Template)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
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

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'port'")
}

func TestValidate_NegativeSMTPPort(t *testing.T) {
	cfg := &Config{SMTPPort: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "smtp_port")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:     8080,
		SMTPPort: 587,
		Template: "modern",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:      8080,
		Template:  "modern",
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
		EmailFrom: "noreply@example.com",
	}

	partial := Config{
		Template:    "classic",
		DatabaseURL: "postgres://localhost/portal",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "classic", merged.Template)
	assert.Equal(t, "postgres://localhost/portal", merged.DatabaseURL)

	// Default values should fill in empty fields
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "smtp.example.com", merged.SMTPHost)
	assert.Equal(t, 587, merged.SMTPPort)
	assert.Equal(t, "noreply@example.com", merged.EmailFrom)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Template:    "minimal",
		DatabaseURL: "postgres://localhost/portal",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "minimal", merged.Template)
	assert.Equal(t, "postgres://localhost/portal", merged.DatabaseURL)
}
