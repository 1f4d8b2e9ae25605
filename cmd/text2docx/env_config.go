package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-text2docx/internal/config"
)

// envPrefix starts every environment variable the CLI reads.
const envPrefix = "TEXT2DOCX_"

// envConfig holds configuration from environment variables.
// Provides shell-profile defaults without requiring YAML files.
type envConfig struct {
	ConfigPath    string  // TEXT2DOCX_CONFIG: config file name or path
	Output        string  // TEXT2DOCX_OUT: output file path
	PageSize      string  // TEXT2DOCX_PAGE: page size preset
	Font          string  // TEXT2DOCX_FONT: font preset or name
	EastAsianFont string  // TEXT2DOCX_EAFONT: east-Asian font preset or name
	FontSize      float64 // TEXT2DOCX_SIZE: font size in points
	Author        string  // TEXT2DOCX_AUTHOR: document author
}

// knownEnvVars lists valid TEXT2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TEXT2DOCX_CONFIG": true,
	"TEXT2DOCX_OUT":    true,
	"TEXT2DOCX_PAGE":   true,
	"TEXT2DOCX_FONT":   true,
	"TEXT2DOCX_EAFONT": true,
	"TEXT2DOCX_SIZE":   true,
	"TEXT2DOCX_AUTHOR": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized TEXT2DOCX_* values.
func loadEnvConfig(getenv func(string) string) (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath:    getenv("TEXT2DOCX_CONFIG"),
		Output:        getenv("TEXT2DOCX_OUT"),
		PageSize:      getenv("TEXT2DOCX_PAGE"),
		Font:          getenv("TEXT2DOCX_FONT"),
		EastAsianFont: getenv("TEXT2DOCX_EAFONT"),
		Author:        getenv("TEXT2DOCX_AUTHOR"),
	}

	if size := getenv("TEXT2DOCX_SIZE"); size != "" {
		s, err := strconv.ParseFloat(size, 64)
		if err != nil || s <= 0 {
			return nil, fmt.Errorf("%w: TEXT2DOCX_SIZE=%q (must be a positive number)", ErrUsage, size)
		}
		cfg.FontSize = s
	}

	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized TEXT2DOCX_* variables.
// Helps catch typos like TEXT2DOCX_OUTPUT instead of TEXT2DOCX_OUT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags. This ensures: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Font != "" {
		cfg.Font.Name = env.Font
	}
	if env.EastAsianFont != "" {
		cfg.Font.EastAsian = env.EastAsianFont
	}
	if env.FontSize > 0 {
		cfg.Font.Size = env.FontSize
	}
	if env.Author != "" {
		cfg.Document.Author = env.Author
	}
}
