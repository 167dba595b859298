// Package errors defines application errors and exit code mapping.
package errors

import (
	"context"
	sterrors "errors"
	"fmt"
)

var (
	// ErrUsage indicates a command usage failure.
	ErrUsage = sterrors.New("usage error")
)

// ExitError signals a non-zero exit without an extra error message. The
// command is expected to have written its own output already.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if sterrors.As(err, &exitErr) {
		return exitErr.Code
	}

	if sterrors.Is(err, ErrUsage) {
		return 2
	}

	if sterrors.Is(err, context.Canceled) {
		return 130
	}

	return 1
}

// Silent reports whether err should exit without printing a message. An
// interrupted session is silent.
func Silent(err error) bool {
	var exitErr *ExitError
	return sterrors.As(err, &exitErr) || sterrors.Is(err, context.Canceled)
}
