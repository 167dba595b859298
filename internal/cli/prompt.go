package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	apperrors "shacalc/internal/errors"
	"shacalc/internal/prompt"
)

func (r *RootCommand) runPrompt(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("prompt accepts no arguments: %w", apperrors.ErrUsage)
	}
	cfg := r.config
	return prompt.Run(ctx, prompt.Options{
		In:          r.in,
		Out:         r.out,
		Interactive: isTerminal(r.in),
		Banner:      cfg.Prompt.Banner,
		Sentinel:    cfg.Prompt.Sentinel,
		Prompt:      cfg.Prompt.Prompt,
		Uppercase:   cfg.Output.Uppercase,
		Logger:      r.logger,
	})
}

// isTerminal reports whether in is an *os.File attached to a terminal.
func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
