// Package launch hands a saved file to the operating system to open, edit or
// print.
package launch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/alnah/go-text2docx/internal/process"
)

// Sentinel errors for launch failures.
var (
	ErrUnknownVerb     = errors.New("unknown action")
	ErrUnsupportedOS   = errors.New("action not supported on this platform")
	ErrCommandNotFound = errors.New("launcher command not found")
	ErrLaunchFailed    = errors.New("launcher command failed")
	ErrEmptyPath       = errors.New("path cannot be empty")
)

// Verb is the action performed on a file.
type Verb string

// Supported verbs.
const (
	VerbOpen  Verb = "open"
	VerbEdit  Verb = "edit"
	VerbPrint Verb = "print"
)

// Verbs lists the supported verbs.
var Verbs = []Verb{VerbPrint, VerbEdit, VerbOpen}

// ParseVerb returns the verb named s, case-insensitively.
func ParseVerb(s string) (Verb, error) {
	v := Verb(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VerbOpen, VerbEdit, VerbPrint:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (must be print, edit or open)", ErrUnknownVerb, s)
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	process.SetProcessGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Launcher runs the platform command for a verb.
type Launcher struct {
	Runner CommandRunner
	GOOS   string
}

// New creates a Launcher for the running platform with a real command runner.
func New() *Launcher {
	return &Launcher{Runner: &ExecRunner{}, GOOS: runtime.GOOS}
}

// Launch performs verb on the file at path and waits for the launcher
// command to return. Viewers started by the command keep running.
func (l *Launcher) Launch(ctx context.Context, path string, verb Verb) error {
	if path == "" {
		return ErrEmptyPath
	}

	name, args, err := Command(l.GOOS, path, verb)
	if err != nil {
		return err
	}

	_, stderr, err := l.Runner.Run(ctx, name, args...)
	if err != nil {
		if errors.Is(err, ErrCommandNotFound) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s: %w", ErrLaunchFailed, name, ctxErr)
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%w: %s: %v: %s", ErrLaunchFailed, name, err, msg)
		}
		return fmt.Errorf("%w: %s: %v", ErrLaunchFailed, name, err)
	}
	return nil
}
