package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"

	apperrors "shacalc/internal/errors"
	"shacalc/internal/hash"
)

const stdinLabel = "-"

func (r *RootCommand) runSum(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("sum", pflag.ContinueOnError)
	fromStdin := fs.Bool("stdin", false, "hash all of standard input as one message")
	upper := fs.Bool("upper", r.config.Output.Uppercase, "print digests in uppercase hex")
	tag := fs.Bool("tag", false, "print BSD-style lines: SHA256 (text) = digest")
	debugBlocks := fs.Bool("debug-blocks", false, "dump padded message blocks to stderr")
	if handled, err := r.parseFlags(fs, args); handled || err != nil {
		return err
	}

	labels := fs.Args()
	if *fromStdin && len(labels) > 0 {
		return fmt.Errorf("sum takes either --stdin or text arguments, not both: %w", apperrors.ErrUsage)
	}
	if !*fromStdin && len(labels) == 0 {
		return fmt.Errorf("sum requires text arguments or --stdin: %w", apperrors.ErrUsage)
	}

	messages := make([][]byte, len(labels))
	for i, label := range labels {
		messages[i] = []byte(label)
	}
	if *fromStdin {
		data, err := io.ReadAll(r.in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		labels = []string{stdinLabel}
		messages = [][]byte{data}
	}

	if *debugBlocks {
		if err := r.dumpBlocks(labels, messages); err != nil {
			return err
		}
	}

	start := time.Now()
	digests, err := hash.SumAll(ctx, messages)
	if err != nil {
		return fmt.Errorf("hash messages: %w", err)
	}
	r.logger.Debug("hashed messages", "count", len(messages), "elapsed", time.Since(start))

	for i, digest := range digests {
		text := digest.String()
		if *upper {
			text = strings.ToUpper(text)
		}
		var line string
		if *tag {
			line = fmt.Sprintf("SHA256 (%s) = %s\n", labels[i], text)
		} else {
			line = fmt.Sprintf("%s  %s\n", text, labels[i])
		}
		if _, err := io.WriteString(r.out, line); err != nil {
			return fmt.Errorf("write digest: %w", err)
		}
	}
	return nil
}

func (r *RootCommand) dumpBlocks(labels []string, messages [][]byte) error {
	for i, message := range messages {
		blocks := hash.PadAndParse(message)
		if _, err := fmt.Fprintf(r.errOut, "%s: %d block(s)\n", labels[i], len(blocks)); err != nil {
			return fmt.Errorf("write block dump: %w", err)
		}
		for j, block := range blocks {
			if _, err := fmt.Fprintf(r.errOut, "Block %d:\n%s\n", j, block.Format()); err != nil {
				return fmt.Errorf("write block dump: %w", err)
			}
		}
	}
	return nil
}
