package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultUploadDir, cfg.UploadDir)
	assert.Equal(t, cfg.UploadDir, cfg.StorageDir, "storage defaults to the upload folder")
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Equal(t, DefaultTruncationBudget, cfg.TruncationBudget)
	assert.Equal(t, int32(DefaultAnalysisTokens), cfg.AnalysisTokens)
	assert.Equal(t, int32(DefaultBRDTokens), cfg.BRDTokens)
	assert.Greater(t, cfg.BRDTokens, cfg.AnalysisTokens)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("UPLOAD_FOLDER", "/tmp/incoming")
	t.Setenv("STORAGE_FOLDER", "/tmp/brds")
	t.Setenv("TRUNCATION_CHAR_BUDGET", "1000")
	t.Setenv("ANALYSIS_MAX_TOKENS", "512")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/incoming", cfg.UploadDir)
	assert.Equal(t, "/tmp/brds", cfg.StorageDir)
	assert.Equal(t, 1000, cfg.TruncationBudget)
	assert.Equal(t, int32(512), cfg.AnalysisTokens)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_CONTENT_LENGTH", "sixteen megabytes")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_CONTENT_LENGTH")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:   "Valid config",
			mutate: func(*Config) {},
		},
		{
			name:      "Missing API key",
			mutate:    func(c *Config) { c.GeminiAPIKey = "" },
			wantError: "GEMINI_API_KEY",
		},
		{
			name:      "Non-positive upload limit",
			mutate:    func(c *Config) { c.MaxUploadBytes = 0 },
			wantError: "MAX_CONTENT_LENGTH",
		},
		{
			name:      "Non-positive truncation budget",
			mutate:    func(c *Config) { c.TruncationBudget = -1 },
			wantError: "TRUNCATION_CHAR_BUDGET",
		},
		{
			name:      "Non-positive token budget",
			mutate:    func(c *Config) { c.BRDTokens = 0 },
			wantError: "token budgets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				GeminiAPIKey:     "key",
				MaxUploadBytes:   DefaultMaxUploadBytes,
				TruncationBudget: DefaultTruncationBudget,
				AnalysisTokens:   DefaultAnalysisTokens,
				BRDTokens:        DefaultBRDTokens,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestExtensionAllowed(t *testing.T) {
	cfg := &Config{}

	for _, ext := range []string{"pdf", "txt", "doc", "docx", "xls", "xlsx", "csv", "PDF"} {
		assert.True(t, cfg.ExtensionAllowed(ext), "%s should be allowed", ext)
	}
	for _, ext := range []string{"exe", "html", "zip", ""} {
		assert.False(t, cfg.ExtensionAllowed(ext), "%s should be rejected", ext)
	}
}
