// Package config provides configuration loading and validation for the BRD generator.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultUploadDir        = "uploads"
	DefaultMaxUploadBytes   = 16 * 1024 * 1024
	DefaultTruncationBudget = 64000
	DefaultAnalysisTokens   = 2048
	DefaultBRDTokens        = 4096
)

// allowedExtensions is the upload allow-list enforced at the HTTP boundary.
var allowedExtensions = map[string]bool{
	"pdf": true, "txt": true, "doc": true, "docx": true,
	"xls": true, "xlsx": true, "csv": true,
}

// Config holds all process-wide settings. It is built once at startup from
// the environment and injected into each stage's constructor; stages never
// read the environment at call time.
type Config struct {
	Port int

	// AI service
	GeminiAPIKey string

	// Google OAuth (only needed for the auth-URL endpoint; remote document
	// fetches use the caller-supplied access token)
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	// Storage
	UploadDir   string
	StorageDir  string
	DatabaseURL string

	// Boundary limits
	MaxUploadBytes int64

	// Stage budgets
	TruncationBudget int   // characters of document text submitted for analysis
	AnalysisTokens   int32 // analysis completion budget
	BRDTokens        int32 // generation completion budget, larger than analysis

	Verbose bool
}

// Load builds a Config from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),
		UploadDir:          envOrDefault("UPLOAD_FOLDER", DefaultUploadDir),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Verbose:            os.Getenv("VERBOSE") == "true",
	}
	cfg.StorageDir = envOrDefault("STORAGE_FOLDER", cfg.UploadDir)

	maxBytes, err := envInt("MAX_CONTENT_LENGTH", DefaultMaxUploadBytes)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadBytes = int64(maxBytes)

	cfg.TruncationBudget, err = envInt("TRUNCATION_CHAR_BUDGET", DefaultTruncationBudget)
	if err != nil {
		return nil, err
	}

	analysisTokens, err := envInt("ANALYSIS_MAX_TOKENS", DefaultAnalysisTokens)
	if err != nil {
		return nil, err
	}
	cfg.AnalysisTokens = int32(analysisTokens)

	brdTokens, err := envInt("BRD_MAX_TOKENS", DefaultBRDTokens)
	if err != nil {
		return nil, err
	}
	cfg.BRDTokens = int32(brdTokens)

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: MAX_CONTENT_LENGTH must be positive")
	}
	if c.TruncationBudget <= 0 {
		return fmt.Errorf("config error: TRUNCATION_CHAR_BUDGET must be positive")
	}
	if c.AnalysisTokens <= 0 || c.BRDTokens <= 0 {
		return fmt.Errorf("config error: token budgets must be positive")
	}
	return nil
}

// ExtensionAllowed reports whether a file extension passes the upload
// allow-list. The extension is matched without its leading dot.
func (c *Config) ExtensionAllowed(ext string) bool {
	return allowedExtensions[strings.ToLower(ext)]
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s must be an integer: %w", key, err)
	}
	return n, nil
}
