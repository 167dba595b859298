package cli

import (
	"context"
	"fmt"

	apperrors "shacalc/internal/errors"
	"shacalc/internal/hash"
)

func (r *RootCommand) runVerify(_ context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("verify requires <digest> <text>: %w", apperrors.ErrUsage)
	}
	want, err := hash.ParseDigest(args[0])
	if err != nil {
		return fmt.Errorf("verify: %w: %w", err, apperrors.ErrUsage)
	}

	got := hash.Sum([]byte(args[1]))
	if got != want {
		r.logger.Debug("digest mismatch", "want", want.String(), "got", got.String())
		if _, err := fmt.Fprintf(r.out, "FAILED: got %s\n", got); err != nil {
			return fmt.Errorf("write verify result: %w", err)
		}
		return &apperrors.ExitError{Code: 1}
	}

	if _, err := fmt.Fprintln(r.out, "OK"); err != nil {
		return fmt.Errorf("write verify result: %w", err)
	}
	return nil
}
