package launch

import (
	"fmt"
	"strings"
)

// Command returns the program and arguments that perform verb on path for
// the given GOOS value.
func Command(goos, path string, verb Verb) (string, []string, error) {
	switch verb {
	case VerbOpen, VerbEdit, VerbPrint:
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownVerb, verb)
	}

	switch goos {
	case "windows":
		return windowsCommand(path, verb)
	case "darwin":
		return darwinCommand(path, verb)
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return xdgCommand(path, verb)
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// windowsVerbs maps verbs to Start-Process -Verb values.
var windowsVerbs = map[Verb]string{
	VerbOpen:  "Open",
	VerbEdit:  "Edit",
	VerbPrint: "Print",
}

func windowsCommand(path string, verb Verb) (string, []string, error) {
	script := fmt.Sprintf("Start-Process -FilePath %s -Verb %s", psQuote(path), windowsVerbs[verb])
	return "powershell.exe", []string{"-NoProfile", "-NonInteractive", "-Command", script}, nil
}

func darwinCommand(path string, verb Verb) (string, []string, error) {
	switch verb {
	case VerbPrint:
		return "lpr", []string{path}, nil
	case VerbEdit:
		return "open", []string{"-t", path}, nil
	default:
		return "open", []string{path}, nil
	}
}

// xdgCommand has no separate editor verb; desktop handlers decide.
func xdgCommand(path string, verb Verb) (string, []string, error) {
	if verb == VerbPrint {
		return "lp", []string{path}, nil
	}
	return "xdg-open", []string{path}, nil
}

// psQuote returns s as a PowerShell single-quoted literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
