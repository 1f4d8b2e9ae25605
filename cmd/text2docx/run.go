package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	flag "github.com/spf13/pflag"
)

// commands lists the named commands. Anything else is a conversion.
var commands = []string{"version", "help", "completion", "config"}

// isCommand reports whether name is a named command.
func isCommand(name string) bool {
	return slices.Contains(commands, name)
}

// runMain runs the CLI with args (including the program name) and returns
// the process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	var err error
	if len(rest) > 0 && isCommand(rest[0]) {
		switch rest[0] {
		case "version":
			fmt.Fprintf(env.Stdout, "text2docx %s\n", Version)
		case "help":
			err = runHelp(rest[1:], env)
		case "completion":
			err = runCompletion(rest[1:], env)
		case "config":
			err = runConfig(rest[1:], env)
		}
	} else {
		err = runConvertCommand(ctx, rest, env)
	}

	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	code := exitCodeFor(err)
	if code == ExitUsage && !isValidationError(err) {
		fmt.Fprintln(env.Stderr, "Run 'text2docx help' for usage.")
	}
	return code
}

// runConvertCommand parses conversion flags and runs the conversion.
func runConvertCommand(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	return runConvert(ctx, positional, flags, env)
}

// isValidationError reports whether err is about a value rather than the
// shape of the command line, in which case usage text does not help.
func isValidationError(err error) bool {
	return !errors.Is(err, ErrUsage) &&
		!errors.Is(err, ErrUnexpectedArgs) &&
		!errors.Is(err, ErrConflictingFlags) &&
		!errors.Is(err, ErrUnsupportedShell)
}
