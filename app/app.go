// Package app is the process entry shared by the widget binaries: it parses
// options, opens input, output and the terminal, starts the record reader and
// the event source, and runs the main loop until Ctrl+C.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/pipeview/config"
	"github.com/lixenwraith/pipeview/core"
	"github.com/lixenwraith/pipeview/engine"
	"github.com/lixenwraith/pipeview/event"
	"github.com/lixenwraith/pipeview/queue"
	"github.com/lixenwraith/pipeview/record"
	"github.com/lixenwraith/pipeview/screen"
	"github.com/lixenwraith/pipeview/terminal"
)

// Version is overridden at build time with -ldflags "-X .../app.Version=..."
var Version = "dev"

// Widget is a render callback with its own options
type Widget interface {
	AddFlags(fs *pflag.FlagSet)
	Draw(buf *engine.Buffer) engine.DrawFunc
}

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks failures detected before any goroutine starts
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode returns ExitUsage
func (e *UsageError) ExitCode() int { return ExitUsage }

func usage(err error) error {
	return &UsageError{Err: err}
}

// ExitCode maps an error returned by Run to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitError
}

// Run executes one binary invocation; stdout only carries --version output
func Run(name, summary string, w Widget, args []string, stdout, stderr io.Writer) error {
	cfg := config.Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	cfg.AddFlags(fs)
	w.AddFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, name, summary, fs)
			return nil
		}
		return usage(fmt.Errorf("%w: %w", config.ErrInvalidOption, err))
	}
	if cfg.Help {
		printHelp(stderr, name, summary, fs)
		return nil
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "%s %s\n", name, Version)
		return nil
	}
	if err := cfg.Resolve(fs); err != nil {
		return usage(err)
	}

	// Level was checked by Resolve
	level, _ := core.ParseLevel(cfg.LogLevel)
	logger, logCloser, err := core.SetupLogging(cfg.LogFile, level)
	if err != nil {
		return usage(err)
	}
	defer logCloser.Close()
	logger = logger.With("app", name)

	out, outCloser, err := config.OpenOutput(cfg.Output)
	if err != nil {
		return usage(err)
	}
	defer outCloser.Close()

	src, inCloser, err := record.OpenInput(cfg.Input, cfg.Follow)
	if err != nil {
		return usage(err)
	}
	defer inCloser.Close()

	d, err := openDriver(cfg, out)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"driver", cfg.Driver,
		"input", cfg.Input,
		"output", cfg.Output,
		"delimiter", record.FormatDelimiter(cfg.Delimiter),
		"follow", cfg.Follow)

	return serve(d, src, cfg.Delimiter, w, logger)
}

// driver bundles the three roles a terminal implementation plays
type driver struct {
	surface  engine.Surface
	poller   event.Poller
	restorer core.Restorer
}

func openDriver(cfg *config.Config, out io.Writer) (driver, error) {
	if cfg.Driver == config.DriverTcell {
		s, err := screen.Open()
		if err != nil {
			return driver{}, fmt.Errorf("open screen: %w", err)
		}
		return driver{surface: s, poller: s, restorer: s}, nil
	}

	t, err := terminal.Open(out, cfg.TerminalOptions()...)
	if err != nil {
		return driver{}, fmt.Errorf("open terminal: %w", err)
	}
	return driver{surface: t, poller: t, restorer: t}, nil
}

// serve spawns the reader and event source and runs the main loop to completion
// The terminal is restored whatever way the loop ends
func serve(d driver, src io.Reader, delim byte, w Widget, logger *slog.Logger) error {
	core.RegisterTerminal(d.restorer)
	defer core.RegisterTerminal(nil)

	records := queue.New[string]()
	events := queue.New[terminal.Event]()

	record.Spawn(src, delim, records, record.WithLogger(logger))
	event.Spawn(d.poller, events, event.WithLogger(logger), event.WithFatal(fatalUnlessClosed))

	buf := engine.NewBuffer()
	loop := engine.NewLoop(d.surface, records, events, buf, w.Draw(buf), engine.WithLogger(logger))
	err := loop.Run()
	d.restorer.Restore()

	logger.Info("stopped",
		"state", loop.State().String(),
		"frames", loop.Frames(),
		"records", buf.Seq(),
		"error", err)
	return err
}

// fatalUnlessClosed lets the event source stop quietly once the screen is finalized
func fatalUnlessClosed(err error) {
	if errors.Is(err, screen.ErrClosed) {
		return
	}
	core.Fatal(err)
}

func printHelp(w io.Writer, name, summary string, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `%s: %s

Usage:
  %s [flags] [INPUT]

INPUT is a file to read records from, or - for standard input (default).
Records are separated by --delimiter. Press Ctrl+C to quit.

Flags:
`, name, summary, name)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
