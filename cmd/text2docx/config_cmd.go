package main

import (
	"fmt"
	"slices"

	text2docx "github.com/alnah/go-text2docx"
	"github.com/alnah/go-text2docx/internal/config"
	"github.com/alnah/go-text2docx/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML. It accepts the same
// flags as a conversion, so the output can seed a named config file.
func runConfig(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, positional)
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}
	fillDefaults(cfg)

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}

// fillDefaults sets every unset value that has a documented default.
func fillDefaults(cfg *config.Config) {
	if cfg.Output.Path == "" {
		cfg.Output.Path = defaultOutput
	}
	if cfg.Page.Size == "" && cfg.Page.Width == 0 && cfg.Page.Height == 0 {
		cfg.Page.Size = text2docx.DefaultPageSize
	}
	if len(cfg.Page.Margin) == 0 {
		cfg.Page.Margin = slices.Clone(defaultMargins)
	}
	if cfg.Font.Name == "" {
		cfg.Font.Name = text2docx.DefaultFont
	}
	if cfg.Font.EastAsian == "" {
		cfg.Font.EastAsian = text2docx.DefaultEastAsianFont
	}
	if cfg.Font.Size == 0 {
		cfg.Font.Size = text2docx.DefaultFontSize
	}
}
