package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	text2docx "github.com/alnah/go-text2docx"
	"github.com/alnah/go-text2docx/internal/config"
	"github.com/alnah/go-text2docx/internal/docx"
	"github.com/alnah/go-text2docx/internal/fileutil"
	"github.com/alnah/go-text2docx/internal/hints"
	"github.com/alnah/go-text2docx/internal/launch"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrUnexpectedArgs   = errors.New("unexpected arguments")
	ErrMarginCount      = errors.New("--margin needs exactly four values")
	ErrConflictingFlags = errors.New("flags are mutually exclusive")
	ErrWriteDocument    = errors.New("failed to write document")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// docxExt is the extension word processors expect.
const docxExt = ".docx"

// runConvert orchestrates the conversion: resolve settings, build the
// document, save it, then run the post-save action.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if len(positionalArgs) > 0 {
		return fmt.Errorf("%w: %s (input is read from standard input)", ErrUnexpectedArgs, strings.Join(positionalArgs, " "))
	}

	// Resolve configuration: CLI flags > env vars > config file > defaults
	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	opts := buildOptions(cfg)
	if err := opts.Validate(); err != nil {
		if errors.Is(err, text2docx.ErrInvalidPageSize) {
			return fmt.Errorf("%w%s", err, hints.ForPageSize(text2docx.PageSizeNames()))
		}
		return err
	}
	inputOpts := buildInputOptions(cfg)
	verb, err := resolveAction(cfg)
	if err != nil {
		return err
	}
	outPath := resolveOutputPath(cfg)

	if flags.common.verbose {
		printSettings(env.Stderr, &opts, inputOpts, outPath, verb)
	}
	if !flags.common.quiet && !fileutil.HasExtension(outPath, docxExt) {
		fmt.Fprintf(env.Stderr, "warning: %s does not end in %s\n", outPath, docxExt)
	}

	if !flags.sample && !flags.common.quiet && env.StdinTerminal != nil && env.StdinTerminal() {
		fmt.Fprintf(env.Stderr, "Reading text from the terminal; press %s to finish.\n", eofKey(env.GOOS))
	}

	start := env.Now()

	// Nothing is written unless the whole input was read and decoded.
	doc, err := buildDocument(env, flags.sample, opts, inputOpts)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(outPath, filePermissions, doc.Save); err != nil {
		if errors.Is(err, fileutil.ErrOutputDirectory) {
			return fmt.Errorf("%w: %w%s", ErrWriteDocument, err, hints.ForOutputDirectory())
		}
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	if !flags.common.quiet {
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "Created %s (%v)\n", outPath, env.Now().Sub(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
		}
	}

	if verb == "" {
		return nil
	}
	return runAction(ctx, env, outPath, verb)
}

// eofKey names the key sequence that ends terminal input on goos.
func eofKey(goos string) string {
	if goos == "windows" {
		return "Ctrl+Z then Enter"
	}
	return "Ctrl+D"
}

// resolveConfig loads the config file named by --config or TEXT2DOCX_CONFIG,
// then layers environment variables and CLI flags over it.
func resolveConfig(flags *convertFlags, env *Environment) (*config.Config, error) {
	envCfg, err := loadEnvConfig(env.Getenv)
	if err != nil {
		return nil, err
	}

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := &config.Config{}
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return nil, err
	}

	// Flags and env vars bypass LoadConfig's checks.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildDocument renders either the font sample table or the paginated input.
func buildDocument(env *Environment, sample bool, opts text2docx.Options, inputOpts text2docx.InputOptions) (*docx.Document, error) {
	asm := text2docx.NewAssembler(text2docx.WithClock(env.Now))
	if sample {
		return asm.Sample(opts)
	}

	lr, err := text2docx.NewLineReader(env.Stdin, inputOpts)
	if err != nil {
		return nil, err
	}
	doc, err := asm.Assemble(lr.Lines(), opts)
	if err != nil {
		return nil, err
	}
	if err := lr.Err(); err != nil {
		if errors.Is(err, text2docx.ErrInvalidUTF8) {
			return nil, fmt.Errorf("%w%s", err, hints.ForInvalidUTF8())
		}
		return nil, err
	}
	return doc, nil
}

// runAction performs verb on the saved document. The launcher gets an
// absolute path since the handler may run in another working directory.
func runAction(ctx context.Context, env *Environment, outPath string, verb launch.Verb) error {
	path, err := filepath.Abs(outPath)
	if err != nil {
		path = outPath
	}

	if err := env.Launcher.Launch(ctx, path, verb); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", verb, outPath, err)
		}
		hint := ""
		if name, _, cmdErr := launch.Command(env.GOOS, path, verb); cmdErr == nil {
			hint = hints.ForLauncher(env.GOOS, name)
		}
		return fmt.Errorf("%s %s: %w%s", verb, outPath, err, hint)
	}
	return nil
}

// printSettings writes the resolved settings for --verbose.
func printSettings(w io.Writer, opts *text2docx.Options, in text2docx.InputOptions, outPath string, verb launch.Verb) {
	// Options were validated, so Dimensions cannot fail.
	width, height, _ := opts.Dimensions()
	orientation := "portrait"
	if opts.Landscape {
		orientation = "landscape"
	}
	m := opts.Margins

	fmt.Fprintf(w, "Output:  %s\n", outPath)
	fmt.Fprintf(w, "Page:    %g x %g mm %s\n", width, height, orientation)
	fmt.Fprintf(w, "Margins: %g %g %g %g mm\n", m.Top, m.Bottom, m.Left, m.Right)
	if opts.Columns > 0 {
		fmt.Fprintf(w, "Columns: %d\n", opts.Columns)
	}
	fmt.Fprintf(w, "Font:    %s / %s, %g pt\n", text2docx.ResolveFont(opts.Font), text2docx.ResolveEastAsianFont(opts.EastAsianFont), opts.FontSize)
	if opts.Header != "" {
		fmt.Fprintf(w, "Header:  %q\n", opts.Header)
	}
	if opts.Footer != "" {
		fmt.Fprintf(w, "Footer:  %q\n", opts.Footer)
	}
	switch {
	case in.Encoding != "":
		fmt.Fprintf(w, "Input:   %s\n", in.Encoding)
	case in.Raw:
		fmt.Fprintln(w, "Input:   raw")
	}
	if verb != "" {
		fmt.Fprintf(w, "Action:  %s\n", verb)
	}
}
