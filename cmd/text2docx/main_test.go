package main

// Notes:
// - isCommand: we test command name matching.
// - runMain: we test dispatch and exit codes with an injected environment.
//   Conversions write into temp directories; launchers are mocked.
// - maxprocsLogger: we test the verbose switch, not GOMAXPROCS itself.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-text2docx/internal/launch"
)

// ---------------------------------------------------------------------------
// TestVersion - Version variable
// ---------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	t.Parallel()

	if Version == "" {
		t.Error("Version should not be empty")
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command name matching
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"version", true},
		{"help", true},
		{"completion", true},
		{"config", true},
		{"convert", false},
		{"--out", false},
		{"Version", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isCommand(tt.input); got != tt.want {
			t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestMaxprocsLogger - Verbose switch
// ---------------------------------------------------------------------------

func TestMaxprocsLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-v"}, "maxprocs: 2\n"},
		{[]string{"-o", "x.docx", "--verbose"}, "maxprocs: 2\n"},
		{[]string{"-q"}, ""},
		{nil, ""},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		maxprocsLogger(tt.args, &buf)("maxprocs: %d", 2)
		if buf.String() != tt.want {
			t.Errorf("maxprocsLogger(%v) wrote %q, want %q", tt.args, buf.String(), tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("", nil)
		if code := runMain([]string{"text2docx", "version"}, env.Environment); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}
		if got := env.stdout.String(); got != "text2docx "+Version+"\n" {
			t.Errorf("stdout = %q", got)
		}
	})

	t.Run("help flag exits zero", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("", nil)
		if code := runMain([]string{"text2docx", "--help"}, env.Environment); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(env.stderr.String(), "Usage: text2docx") {
			t.Errorf("stderr = %q, want usage", env.stderr)
		}
	})

	t.Run("conversion", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "main.docx")
		env := newTestEnv("hello\n", nil)
		if code := runMain([]string{"text2docx", "-o", out, "--do", "edit"}, env.Environment); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, env.stderr)
		}
		calls := env.launcher.Calls()
		if len(calls) != 1 || calls[0].Verb != launch.VerbEdit {
			t.Errorf("launcher calls = %v, want one edit", calls)
		}
	})

	t.Run("unknown env var warns", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "warn.docx")
		env := newTestEnv("hello\n", map[string]string{"TEXT2DOCX_PAPER": "a4"})
		if code := runMain([]string{"text2docx", "-o", out}, env.Environment); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(env.stderr.String(), "TEXT2DOCX_PAPER (typo?)") {
			t.Errorf("stderr = %q, want typo warning", env.stderr)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_ExitCodes - Error classes
// ---------------------------------------------------------------------------

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		input     string
		launchErr error
		wantCode  int
		wantUsage bool
	}{
		{
			name:      "unknown flag",
			args:      []string{"--orientation", "landscape"},
			wantCode:  ExitUsage,
			wantUsage: true,
		},
		{
			name:     "invalid page",
			args:     []string{"-p", "letter"},
			wantCode: ExitUsage,
		},
		{
			name:      "unsupported shell",
			args:      []string{"completion", "tcsh"},
			wantCode:  ExitUsage,
			wantUsage: true,
		},
		{
			name:      "unknown help topic",
			args:      []string{"help", "nope"},
			wantCode:  ExitUsage,
			wantUsage: true,
		},
		{
			name:     "invalid input",
			args:     nil,
			input:    "\xff\n",
			wantCode: ExitIO,
		},
		{
			name:      "launcher failure",
			args:      []string{"--do", "open"},
			input:     "x\n",
			launchErr: launch.ErrLaunchFailed,
			wantCode:  ExitLaunch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.input, nil)
			env.launcher.err = tt.launchErr

			args := append([]string{"text2docx"}, tt.args...)
			if tt.args == nil || !isCommand(tt.args[0]) {
				args = append(args, "-o", filepath.Join(t.TempDir(), "out.docx"))
			}

			code := runMain(args, env.Environment)
			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", args, code, tt.wantCode, env.stderr)
			}
			if !strings.HasPrefix(env.stderr.String(), "error: ") {
				t.Errorf("stderr = %q, want error prefix", env.stderr)
			}
			if got := strings.Contains(env.stderr.String(), "text2docx help"); got != tt.wantUsage {
				t.Errorf("usage pointer printed = %v, want %v", got, tt.wantUsage)
			}
		})
	}
}
