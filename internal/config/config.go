package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-text2docx/internal/fileutil"
	"github.com/alnah/go-text2docx/internal/yamlutil"
)

// AppName names the per-user configuration directory.
const AppName = "go-text2docx"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength     = 4096 // output path
	MaxNameLength     = 100  // page size, font and encoding names
	MaxLangLength     = 35   // BCP 47 tags
	MaxFieldLength    = 500  // header and footer field codes
	MaxTitleLength    = 200  // document title
	MaxAuthorLength   = 100  // document author
	MaxActionLength   = 10   // "print", "edit", "open"
	MaxMarginCount    = 4    // top, bottom, left, right
	MaxColumnCount    = 3    // text columns
	MaxFontSizePoints = 1638 // Word's largest font size
)

// Config holds all configuration for document generation.
// Zero values mean "not set": the CLI falls back to its defaults.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Input    InputConfig    `yaml:"input"`
	Page     PageConfig     `yaml:"page"`
	Font     FontConfig     `yaml:"font"`
	Header   HeaderConfig   `yaml:"header"`
	Footer   FooterConfig   `yaml:"footer"`
	Document DocumentConfig `yaml:"document"`
}

// OutputConfig defines the output file and post-save action.
type OutputConfig struct {
	Path   string `yaml:"path"`   // default: output.docx
	Action string `yaml:"action"` // "print", "edit", "open" or empty
}

// InputConfig defines how standard input is decoded.
type InputConfig struct {
	Raw      bool   `yaml:"raw"`      // skip strict UTF-8 decoding
	Encoding string `yaml:"encoding"` // WHATWG name, used with raw
}

// PageConfig defines page geometry.
type PageConfig struct {
	Size      string    `yaml:"size"`      // preset name (default: a4)
	Width     float64   `yaml:"width"`     // mm, overrides size with height
	Height    float64   `yaml:"height"`    // mm
	Landscape bool      `yaml:"landscape"` // swap width and height
	Margin    []float64 `yaml:"margin"`    // mm: top, bottom, left, right
	Columns   int       `yaml:"columns"`   // 2 or 3
}

// FontConfig defines the default paragraph font.
type FontConfig struct {
	Name      string  `yaml:"name"`      // preset or font name (default: lc)
	EastAsian string  `yaml:"eastAsian"` // preset or font name (default: hge)
	Lang      string  `yaml:"lang"`      // east-Asian language tag
	Size      float64 `yaml:"size"`      // points (default: 14)
}

// HeaderConfig defines the running header.
type HeaderConfig struct {
	Text       string `yaml:"text"`       // field code
	PageNumber bool   `yaml:"pageNumber"` // use the page number template
}

// FooterConfig defines the running footer.
type FooterConfig struct {
	Text string `yaml:"text"` // field code
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"output.path", c.Output.Path, MaxPathLength},
		{"output.action", c.Output.Action, MaxActionLength},
		{"input.encoding", c.Input.Encoding, MaxNameLength},
		{"page.size", c.Page.Size, MaxNameLength},
		{"font.name", c.Font.Name, MaxNameLength},
		{"font.eastAsian", c.Font.EastAsian, MaxNameLength},
		{"font.lang", c.Font.Lang, MaxLangLength},
		{"header.text", c.Header.Text, MaxFieldLength},
		{"footer.text", c.Footer.Text, MaxFieldLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Output.Action != "" {
		switch strings.ToLower(c.Output.Action) {
		case "print", "edit", "open":
			// valid
		default:
			return fmt.Errorf("%w: output.action %q (must be print, edit, or open)", ErrInvalidValue, c.Output.Action)
		}
	}

	if c.Page.Width < 0 || c.Page.Height < 0 {
		return fmt.Errorf("%w: page.width and page.height must not be negative", ErrInvalidValue)
	}
	if n := len(c.Page.Margin); n != 0 && n != MaxMarginCount {
		return fmt.Errorf("%w: page.margin needs %d values (top, bottom, left, right), got %d", ErrInvalidValue, MaxMarginCount, n)
	}
	for i, m := range c.Page.Margin {
		if m < 0 {
			return fmt.Errorf("%w: page.margin[%d] must not be negative, got %g", ErrInvalidValue, i, m)
		}
	}
	if c.Page.Columns != 0 && (c.Page.Columns < 2 || c.Page.Columns > MaxColumnCount) {
		return fmt.Errorf("%w: page.columns must be 2 or 3, got %d", ErrInvalidValue, c.Page.Columns)
	}

	if c.Font.Size < 0 || c.Font.Size > MaxFontSizePoints {
		return fmt.Errorf("%w: font.size must be between 0 and %d, got %g", ErrInvalidValue, MaxFontSizePoints, c.Font.Size)
	}

	if c.Header.PageNumber && c.Header.Text != "" {
		return fmt.Errorf("%w: header.pageNumber and header.text are mutually exclusive", ErrInvalidValue)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yamlutil.ReadStrict(f, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations searched for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory first, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
