package main

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-text2docx/internal/launch"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and launcher doubles
// ---------------------------------------------------------------------------

// launchCall records one Launch invocation.
type launchCall struct {
	Path string
	Verb launch.Verb
}

// mockLauncher records calls and returns err.
type mockLauncher struct {
	mu    sync.Mutex
	calls []launchCall
	err   error
}

func (m *mockLauncher) Launch(_ context.Context, path string, verb launch.Verb) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, launchCall{Path: path, Verb: verb})
	return m.err
}

func (m *mockLauncher) Calls() []launchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]launchCall(nil), m.calls...)
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	launcher *mockLauncher
}

// newTestEnv returns an environment reading stdin from input, with the given
// TEXT2DOCX_* variables and a fixed clock.
func newTestEnv(input string, vars map[string]string) *testEnv {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	launcher := &mockLauncher{}
	fixed := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}

	return &testEnv{
		Environment: &Environment{
			Now:      func() time.Time { return fixed },
			Stdin:    strings.NewReader(input),
			Stdout:   stdout,
			Stderr:   stderr,
			Getenv:   func(k string) string { return vars[k] },
			Environ:  func() []string { return environ },
			Launcher: launcher,
			GOOS:     "linux",
		},
		stdout:   stdout,
		stderr:   stderr,
		launcher: launcher,
	}
}

// readDocxPart returns the named part of the .docx file at path.
func readDocxPart(t *testing.T, path, name string) string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("zip.OpenReader(%s) error = %v", path, err)
	}
	defer zr.Close()

	f, err := zr.Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}
