package cli

import (
	"context"
	"fmt"
	"io"

	"shacalc/internal/buildinfo"
	apperrors "shacalc/internal/errors"
)

// NewVersionCommand creates the version subcommand.
func NewVersionCommand(out io.Writer) Command {
	return Command{
		name:    "version",
		summary: "Print version information",
		run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("version accepts no arguments: %w", apperrors.ErrUsage)
			}

			if _, err := fmt.Fprintln(out, buildinfo.Get().String()); err != nil {
				return fmt.Errorf("write version output: %w", err)
			}

			return nil
		},
	}
}
