// Package cli implements shacalc command-line parsing and commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"shacalc/internal/config"
	apperrors "shacalc/internal/errors"
	"shacalc/internal/logging"
)

// Command represents an executable CLI command.
type Command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string) error
}

// Name returns the command name.
func (c Command) Name() string { return c.name }

// RootCommand handles argument parsing for the shacalc CLI.
type RootCommand struct {
	out      io.Writer
	errOut   io.Writer
	in       io.Reader
	commands []Command
	args     []string

	// Populated by Execute before a subcommand runs.
	config config.Config
	logger *slog.Logger
}

// NewRootCommand creates the shacalc root command.
func NewRootCommand(out io.Writer, errOut io.Writer, in io.Reader) *RootCommand {
	root := &RootCommand{out: out, errOut: errOut, in: in, config: config.Default()}
	root.commands = []Command{
		NewVersionCommand(out),
		{name: "prompt", summary: "Hash lines interactively until -1", run: root.runPrompt},
		{name: "sum", summary: "Print SHA-256 digests of arguments or stdin", run: root.runSum},
		{name: "verify", summary: "Check text against an expected digest", run: root.runVerify},
	}
	return root
}

// SetArgs sets command arguments.
func (r *RootCommand) SetArgs(args []string) { r.args = args }

// Commands returns configured subcommands.
func (r *RootCommand) Commands() []Command { return r.commands }

// Execute parses global flags, loads configuration, and runs the selected
// command. With no command the interactive prompt runs.
func (r *RootCommand) Execute(ctx context.Context) error {
	fs := pflag.NewFlagSet("shacalc", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	configPath := fs.String("config", "", "path to YAML config file (default $"+config.EnvVar+" or per-user config)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	help := fs.BoolP("help", "h", false, "help for shacalc")
	if err := fs.Parse(r.args); err != nil {
		return fmt.Errorf("parse global flags: %w: %w", err, apperrors.ErrUsage)
	}
	if *help {
		return r.printHelp(fs)
	}

	remaining := fs.Args()
	if len(remaining) > 0 && remaining[0] == "help" {
		return r.printHelp(fs)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", err, apperrors.ErrUsage)
	}
	r.config = cfg
	r.logger = logging.NewCommandLogger(r.errOut, level)

	if len(remaining) == 0 {
		return r.runPrompt(ctx, nil)
	}
	for _, command := range r.commands {
		if command.name == remaining[0] {
			r.logger = r.logger.With("command", command.name)
			return command.run(ctx, remaining[1:])
		}
	}

	if _, err := fmt.Fprintf(r.errOut, "unknown command %q\n", remaining[0]); err != nil {
		return fmt.Errorf("write unknown command error: %w", err)
	}
	if err := r.printHelp(fs); err != nil {
		return err
	}
	return fmt.Errorf("unknown command: %s: %w", remaining[0], apperrors.ErrUsage)
}

func (r *RootCommand) printHelp(fs *pflag.FlagSet) error {
	var b strings.Builder
	b.WriteString("shacalc computes SHA-256 digests\n\nUsage:\n  shacalc [flags] [command]\n\nAvailable Commands:\n")
	for _, command := range r.commands {
		fmt.Fprintf(&b, "  %-8s %s\n", command.name, command.summary)
	}
	b.WriteString("\nFlags:\n")
	b.WriteString(fs.FlagUsages())
	if _, err := fmt.Fprint(r.out, b.String()); err != nil {
		return fmt.Errorf("write help output: %w", err)
	}
	return nil
}

// parseFlags parses a subcommand flag set. It reports handled=true when the
// user asked for help, after printing usage to out.
func (r *RootCommand) parseFlags(fs *pflag.FlagSet, args []string) (handled bool, err error) {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			if _, werr := fmt.Fprintf(r.out, "Usage of %s:\n%s", fs.Name(), fs.FlagUsages()); werr != nil {
				return true, fmt.Errorf("write %s help: %w", fs.Name(), werr)
			}
			return true, nil
		}
		return false, fmt.Errorf("parse %s flags: %w: %w", fs.Name(), err, apperrors.ErrUsage)
	}
	return false, nil
}
