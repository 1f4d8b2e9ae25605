package main

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"golang.org/x/term"

	"github.com/alnah/go-text2docx/internal/launch"
)

// Launcher performs a post-save action on a file.
type Launcher interface {
	Launch(ctx context.Context, path string, verb launch.Verb) error
}

// Compile-time interface implementation check.
var _ Launcher = (*launch.Launcher)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and the post-save launcher.
type Environment struct {
	Now           func() time.Time
	Stdin         io.Reader
	Stdout        io.Writer
	Stderr        io.Writer
	Getenv        func(string) string
	Environ       func() []string
	Launcher      Launcher
	GOOS          string
	StdinTerminal func() bool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:           time.Now,
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Getenv:        os.Getenv,
		Environ:       os.Environ,
		Launcher:      launch.New(),
		GOOS:          runtime.GOOS,
		StdinTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}
