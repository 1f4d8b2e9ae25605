package main

import (
	"errors"
	"os"

	text2docx "github.com/alnah/go-text2docx"
	"github.com/alnah/go-text2docx/internal/config"
	"github.com/alnah/go-text2docx/internal/docx"
	"github.com/alnah/go-text2docx/internal/fileutil"
	"github.com/alnah/go-text2docx/internal/launch"
	flag "github.com/spf13/pflag"
)

// Exit codes for text2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Reading input or writing the document failed
	ExitLaunch  = 4 // Post-save action failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Launcher errors (exit 4)
	if errors.Is(err, launch.ErrCommandNotFound) ||
		errors.Is(err, launch.ErrLaunchFailed) ||
		errors.Is(err, launch.ErrUnsupportedOS) {
		return ExitLaunch
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrMarginCount) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, launch.ErrUnknownVerb) ||
		errors.Is(err, text2docx.ErrInvalidPageSize) ||
		errors.Is(err, text2docx.ErrInvalidDimensions) ||
		errors.Is(err, text2docx.ErrInvalidMargin) ||
		errors.Is(err, text2docx.ErrInvalidColumns) ||
		errors.Is(err, text2docx.ErrInvalidFontSize) ||
		errors.Is(err, text2docx.ErrEmptyFontName) ||
		errors.Is(err, text2docx.ErrInvalidLanguage) ||
		errors.Is(err, text2docx.ErrUnknownEncoding) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, text2docx.ErrReadInput) ||
		errors.Is(err, text2docx.ErrInvalidUTF8) ||
		errors.Is(err, fileutil.ErrOutputDirectory) ||
		errors.Is(err, fileutil.ErrIsDirectory) ||
		errors.Is(err, docx.ErrWritePart) ||
		errors.Is(err, ErrWriteDocument) {
		return ExitIO
	}

	return ExitGeneral
}
