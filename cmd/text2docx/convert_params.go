package main

import (
	"fmt"
	"slices"

	text2docx "github.com/alnah/go-text2docx"
	"github.com/alnah/go-text2docx/internal/config"
	"github.com/alnah/go-text2docx/internal/launch"
)

// mergeFlags merges CLI flags into config. Only flags set on the command
// line override config values, so flag defaults never mask the config file.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	set := flags.changed

	if set["number"] && set["header"] {
		return fmt.Errorf("%w: --number and --header", ErrConflictingFlags)
	}
	if set["margin"] && len(flags.page.margin) != config.MaxMarginCount {
		return fmt.Errorf("%w: got %d value(s), want top,bottom,left,right", ErrMarginCount, len(flags.page.margin))
	}

	// Output
	if set["out"] {
		cfg.Output.Path = flags.output.path
	}
	if set["do"] {
		cfg.Output.Action = flags.output.action
	}

	// Page: a preset on the command line beats dimensions from the config.
	if set["page"] {
		cfg.Page.Size = flags.page.size
		if !set["width"] && !set["height"] {
			cfg.Page.Width, cfg.Page.Height = 0, 0
		}
	}
	if set["width"] {
		cfg.Page.Width = flags.page.width
	}
	if set["height"] {
		cfg.Page.Height = flags.page.height
	}
	if set["landscape"] {
		cfg.Page.Landscape = flags.page.landscape
	}
	if set["margin"] {
		cfg.Page.Margin = slices.Clone(flags.page.margin)
	}
	if set["col"] {
		cfg.Page.Columns = flags.page.columns
	}

	// Font: zero means unset in config, so it cannot come from the command line.
	if set["size"] {
		if flags.font.size <= 0 {
			return fmt.Errorf("%w: --size %g", text2docx.ErrInvalidFontSize, flags.font.size)
		}
		cfg.Font.Size = flags.font.size
	}
	if set["font"] {
		cfg.Font.Name = flags.font.name
	}
	if set["eafont"] {
		cfg.Font.EastAsian = flags.font.eastAsian
	}
	if set["lang"] {
		cfg.Font.Lang = flags.font.lang
	}

	// Header and footer: the page number template and header text replace
	// each other.
	if set["number"] {
		cfg.Header.PageNumber = flags.headerFooter.pageNumber
		if cfg.Header.PageNumber {
			cfg.Header.Text = ""
		}
	}
	if set["header"] {
		cfg.Header.Text = flags.headerFooter.header
		cfg.Header.PageNumber = false
	}
	if set["footer"] {
		cfg.Footer.Text = flags.headerFooter.footer
	}

	// Input
	if set["raw"] {
		cfg.Input.Raw = flags.input.raw
	}
	if set["encoding"] {
		cfg.Input.Encoding = flags.input.encoding
	}

	// Document
	if set["title"] {
		cfg.Document.Title = flags.document.title
	}
	if set["author"] {
		cfg.Document.Author = flags.document.author
	}

	return nil
}

// buildOptions resolves config into assembly options, filling unset values
// with defaults. The result is not validated.
func buildOptions(cfg *config.Config) text2docx.Options {
	opts := text2docx.DefaultOptions()

	if cfg.Page.Size != "" {
		opts.PageSize = cfg.Page.Size
	}
	opts.Width = cfg.Page.Width
	opts.Height = cfg.Page.Height
	opts.Landscape = cfg.Page.Landscape
	if m := cfg.Page.Margin; len(m) == config.MaxMarginCount {
		opts.Margins = text2docx.Margins{Top: m[0], Bottom: m[1], Left: m[2], Right: m[3]}
	}
	opts.Columns = cfg.Page.Columns

	if cfg.Font.Size > 0 {
		opts.FontSize = cfg.Font.Size
	}
	if cfg.Font.Name != "" {
		opts.Font = cfg.Font.Name
	}
	if cfg.Font.EastAsian != "" {
		opts.EastAsianFont = cfg.Font.EastAsian
	}
	opts.EastAsianLang = cfg.Font.Lang

	if cfg.Header.PageNumber {
		opts.Header = text2docx.PageNumberTemplate
	} else {
		opts.Header = cfg.Header.Text
	}
	opts.Footer = cfg.Footer.Text

	opts.Title = cfg.Document.Title
	opts.Author = cfg.Document.Author

	return opts
}

// buildInputOptions resolves input decoding. A legacy encoding implies raw
// mode, since strict UTF-8 decoding would reject it.
func buildInputOptions(cfg *config.Config) text2docx.InputOptions {
	return text2docx.InputOptions{
		Raw:      cfg.Input.Raw || cfg.Input.Encoding != "",
		Encoding: cfg.Input.Encoding,
	}
}

// resolveOutputPath returns the configured output path or the default.
func resolveOutputPath(cfg *config.Config) string {
	if cfg.Output.Path != "" {
		return cfg.Output.Path
	}
	return defaultOutput
}

// resolveAction returns the post-save verb, or "" when no action is set.
func resolveAction(cfg *config.Config) (launch.Verb, error) {
	if cfg.Output.Action == "" {
		return "", nil
	}
	return launch.ParseVerb(cfg.Output.Action)
}
