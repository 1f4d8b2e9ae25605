// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// IsHeadless reports whether no graphical session is available, in which
// case desktop openers cannot show a window. Variable for tests.
var IsHeadless = func() bool {
	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

// ForLauncher returns hints for a missing or failing launcher command.
func ForLauncher(goos, command string) string {
	var hints []string

	switch goos {
	case "windows":
		hints = append(hints, "associate .docx files with a word processor")
	case "darwin":
		if command == "lpr" {
			hints = append(hints, "set a default printer in System Settings")
		}
	default:
		switch command {
		case "lp":
			hints = append(hints, "install CUPS and set a default printer (lpoptions -d NAME)")
		case "xdg-open":
			hints = append(hints, "install xdg-utils")
			if IsHeadless() {
				hints = append(hints, "no graphical session detected (DISPLAY is unset)")
			}
		}
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-text2docx/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForPageSize returns hints for unknown page size errors.
func ForPageSize(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or use --width and --height in mm")
}

// ForInvalidUTF8 returns hints for input that is not valid UTF-8.
func ForInvalidUTF8() string {
	return format("use --raw --encoding NAME for legacy encodings (e.g. shift_jis)")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
