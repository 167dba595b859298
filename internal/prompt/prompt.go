// Package prompt implements the interactive line-by-line hashing loop.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"shacalc/internal/hash"
	"shacalc/internal/logging"
)

const (
	bannerRule = "==============================================="
	welcome    = "Welcome to SHA256 calculator!"
	farewell   = "Thank you for using the program!"
)

// Options configures a prompt session.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Interactive shows the prompt text before each read.
	Interactive bool
	// Banner prints the welcome and farewell lines.
	Banner    bool
	Sentinel  string
	Prompt    string
	Uppercase bool
	Logger    *slog.Logger
}

// Run reads lines from opts.In, printing "SHA256: <digest>" for each, until
// the sentinel line or end of input. The newline terminator is not hashed.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(io.Discard, slog.LevelInfo)
	}

	if opts.Banner {
		if _, err := fmt.Fprintf(opts.Out, "%s\n%s\n%s\n\n", bannerRule, welcome, bannerRule); err != nil {
			return fmt.Errorf("write banner: %w", err)
		}
	}

	lines := make(chan readResult)
	done := make(chan struct{})
	defer close(done)
	go readLines(opts.In, lines, done)

	hashed := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Interactive {
			if _, err := fmt.Fprint(opts.Out, opts.Prompt); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}

		var result readResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case result = <-lines:
		}
		line, readErr := result.line, result.err
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		atEOF := readErr != nil
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) == opts.Sentinel || (atEOF && line == "") {
			break
		}

		digest := hash.Hash([]byte(line))
		if opts.Uppercase {
			digest = strings.ToUpper(digest)
		}
		if _, err := fmt.Fprintf(opts.Out, "SHA256: %s\n", digest); err != nil {
			return fmt.Errorf("write digest: %w", err)
		}
		hashed++
		logger.Debug("hashed line", "bytes", len(line))

		if atEOF {
			break
		}
	}

	logger.Debug("prompt session finished", "lines", hashed)
	if opts.Banner {
		if _, err := fmt.Fprintf(opts.Out, "\n%s\n", farewell); err != nil {
			return fmt.Errorf("write farewell: %w", err)
		}
	}
	return nil
}

type readResult struct {
	line string
	err  error
}

// readLines feeds lines from r until a read error or until done is closed.
// A read blocked on r outlives the session; it exits at the next line or EOF.
func readLines(r io.Reader, lines chan<- readResult, done <-chan struct{}) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		select {
		case lines <- readResult{line: line, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}
