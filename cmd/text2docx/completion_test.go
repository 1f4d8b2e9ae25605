package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands and extractFlagsFromFlagSet: we test the registry is complete
//   and that flag metadata comes from the FlagSet.
// These are acceptable gaps: we test observable behavior, not runtime shell behavior.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash generates valid script",
			shell: ShellBash,
			wantContains: []string{
				"_text2docx_completions",
				"complete -F _text2docx_completions text2docx",
				"compgen",
				"--out|-o)",
				"a3 b4 a4 b5 a5 hagaki",
				"bash zsh fish powershell",
			},
		},
		{
			name:  "zsh generates valid script",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef text2docx",
				"_text2docx",
				"_arguments",
				"_describe",
				"'(-p --page)'{-p,--page}",
				`_files -g "*.yaml *.yml"`,
			},
		},
		{
			name:  "fish generates valid script",
			shell: ShellFish,
			wantContains: []string{
				"complete -c text2docx",
				"__fish_text2docx_needs_command",
				"__fish_text2docx_using_command",
				"-l out -s o -r -F",
				"-l landscape -d",
			},
		},
		{
			name:  "powershell generates valid script",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName text2docx",
				"CompletionResult",
				"'--page' = @('a3', 'b4', 'a4', 'b5', 'a5', 'hagaki')",
				"'--eafont'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q", want)
				}
			}
			for _, cmd := range getCommands() {
				if !strings.Contains(output, cmd.Name) {
					t.Errorf("output missing command %q", cmd.Name)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"tcsh", "", "BASH"} {
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, shell)
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("GenerateCompletion(%q) error = %v, want ErrUnsupportedShell", shell, err)
		}
		if buf.Len() != 0 {
			t.Errorf("GenerateCompletion(%q) wrote output on error", shell)
		}
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()
	if len(cmds) != len(commands) {
		t.Fatalf("getCommands() = %d commands, want %d", len(cmds), len(commands))
	}
	for _, c := range cmds {
		if !isCommand(c.Name) {
			t.Errorf("completion command %q is not dispatched", c.Name)
		}
		if c.Desc == "" {
			t.Errorf("command %q has no description", c.Name)
		}
	}
}

// ---------------------------------------------------------------------------
// TestExtractFlagsFromFlagSet - Flag metadata
// ---------------------------------------------------------------------------

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	byName := make(map[string]flagDef)
	for _, f := range extractFlagsFromFlagSet(buildConvertFlagSet()) {
		byName[f.Long] = f
	}

	tests := []struct {
		long  string
		short string
		typ   flagType
	}{
		{"out", "o", flagFile},
		{"config", "c", flagFile},
		{"page", "p", flagEnum},
		{"do", "", flagEnum},
		{"col", "", flagEnum},
		{"eafont", "", flagEnum},
		{"landscape", "", flagBool},
		{"size", "", flagNumber},
		{"margin", "", flagNumber},
		{"header", "", flagString},
		{"quiet", "q", flagBool},
	}

	for _, tt := range tests {
		f, ok := byName[tt.long]
		if !ok {
			t.Errorf("flag --%s missing", tt.long)
			continue
		}
		if f.Short != tt.short {
			t.Errorf("--%s short = %q, want %q", tt.long, f.Short, tt.short)
		}
		if f.Type != tt.typ {
			t.Errorf("--%s type = %d, want %d", tt.long, f.Type, tt.typ)
		}
	}

	if got := byName["do"].Values; strings.Join(got, ",") != "print,edit,open" {
		t.Errorf("--do values = %v", got)
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - Command entry point
// ---------------------------------------------------------------------------

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("", nil)
		if err := runCompletion(nil, env.Environment); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if !strings.Contains(env.stdout.String(), "Usage: text2docx completion") {
			t.Errorf("stdout = %q", env.stdout)
		}
	})

	t.Run("valid shell", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("", nil)
		if err := runCompletion([]string{"fish"}, env.Environment); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if !strings.Contains(env.stdout.String(), "complete -c text2docx") {
			t.Error("fish script not written to stdout")
		}
	})

	t.Run("invalid shell", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("", nil)
		err := runCompletion([]string{"ksh"}, env.Environment)
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("error = %v, want ErrUnsupportedShell", err)
		}
	})
}
