package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Help topics
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no topic", nil, "Commands:"},
		{"convert", []string{"convert"}, "--margin <t,b,l,r>"},
		{"config", []string{"config"}, "Usage: text2docx config"},
		{"completion", []string{"completion"}, "Usage: text2docx completion"},
		{"version", []string{"version"}, "Usage: text2docx version"},
		{"help", []string{"help"}, "Usage: text2docx help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("", nil)
			if err := runHelp(tt.args, env.Environment); err != nil {
				t.Fatalf("runHelp() error = %v", err)
			}
			if !strings.Contains(env.stdout.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, env.stdout)
			}
		})
	}
}

func TestRunHelp_UnknownTopic(t *testing.T) {
	t.Parallel()

	env := newTestEnv("", nil)
	err := runHelp([]string{"convert-all"}, env.Environment)
	if !errors.Is(err, ErrUsage) {
		t.Errorf("error = %v, want ErrUsage", err)
	}
}

// ---------------------------------------------------------------------------
// TestPrintConvertUsage - Flag documentation
// ---------------------------------------------------------------------------

func TestPrintConvertUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printConvertUsage(&buf)
	output := buf.String()

	// Every registered flag is documented.
	for _, f := range extractFlagsFromFlagSet(buildConvertFlagSet()) {
		if !strings.Contains(output, "--"+f.Long+" ") {
			t.Errorf("usage missing --%s", f.Long)
		}
	}

	// Preset tables are listed.
	for _, want := range []string{"a3, b4, a4, b5, a5, hagaki", "lc, lst", "meiryo", "TEXT2DOCX_CONFIG"} {
		if !strings.Contains(output, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
