// Package app wires shacalc application execution.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"shacalc/internal/cli"
	apperrors "shacalc/internal/errors"
)

// App wires CLI execution to a set of standard streams.
type App struct {
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
}

// New creates an App bound to the process standard streams.
func New() App {
	return App{stdout: os.Stdout, stderr: os.Stderr, stdin: os.Stdin}
}

// NewWithStreams creates an App bound to the given streams.
func NewWithStreams(stdout, stderr io.Writer, stdin io.Reader) App {
	return App{stdout: stdout, stderr: stderr, stdin: stdin}
}

// Run executes the application and returns a process exit code.
func (a App) Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(a.stdout, a.stderr, a.stdin)
	root.SetArgs(args)

	if err := root.Execute(ctx); err != nil {
		if !apperrors.Silent(err) {
			_, _ = fmt.Fprintf(a.stderr, "error: %v\n", err)
		}
		return apperrors.ExitCode(err)
	}

	return 0
}
