// Package config holds the process options shared by every binary: input and
// output selection, record framing, the terminal driver and logging.
//
// Options come from pflag. A YAML file named by --config supplies defaults
// keyed by long flag name; flags given on the command line win.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/pipeview/core"
	"github.com/lixenwraith/pipeview/record"
	"github.com/lixenwraith/pipeview/terminal"
)

var (
	// ErrInvalidOption is wrapped by every usage and validation error
	ErrInvalidOption = errors.New("invalid option")

	// ErrOutputSink is returned when the output path cannot be opened for appending
	ErrOutputSink = errors.New("cannot open output")
)

// StdoutPath selects standard output
const StdoutPath = "-"

const (
	DriverANSI  = "ansi"
	DriverTcell = "tcell"

	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
)

// Config is the resolved set of process options
type Config struct {
	Input     string
	Output    string
	Delimiter byte
	Follow    bool
	Driver    string
	ColorMode string
	File      string
	LogFile   string
	LogLevel  string
	Version   bool
	Help      bool
}

// Default returns options for reading NUL separated records from stdin onto stdout
func Default() *Config {
	return &Config{
		Input:     record.StdinPath,
		Output:    StdoutPath,
		Delimiter: 0,
		Driver:    DriverANSI,
		ColorMode: ColorAuto,
		LogLevel:  "info",
	}
}

// AddFlags registers the process options
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output file, opened for appending and never created; - is standard output")
	fs.VarP(delimiterValue{&c.Delimiter}, "delimiter", "d", `record delimiter: one character or \t \n \r \0 \\`)
	fs.BoolVarP(&c.Follow, "follow", "f", c.Follow, "keep reading the input file as it grows")
	fs.StringVar(&c.Driver, "driver", c.Driver, "terminal driver: ansi or tcell")
	fs.StringVar(&c.ColorMode, "color-mode", c.ColorMode, "color output: auto, 256 or truecolor")
	fs.StringVar(&c.File, "config", c.File, "YAML file with option defaults")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write JSON log records to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVarP(&c.Help, "help", "h", false, "show help")
}

// Resolve completes a parsed flag set: file defaults, the positional input, validation
func (c *Config) Resolve(fs *pflag.FlagSet) error {
	args := fs.Args()
	if len(args) > 1 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidOption, args[1])
	}

	if c.File != "" {
		values, err := LoadFile(c.File)
		if err != nil {
			return err
		}
		if in, ok := values["input"]; ok {
			delete(values, "input")
			c.Input = scalar(in)
		}
		if err := Apply(fs, values); err != nil {
			return err
		}
	}

	if len(args) == 1 {
		c.Input = args[0]
	}
	return c.Validate()
}

// Validate checks option values and combinations
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverANSI, DriverTcell:
	default:
		return fmt.Errorf("%w: driver %q", ErrInvalidOption, c.Driver)
	}

	switch c.ColorMode {
	case ColorAuto, Color256, ColorTrueColor:
	default:
		return fmt.Errorf("%w: color mode %q", ErrInvalidOption, c.ColorMode)
	}

	if c.Follow && (c.Input == "" || c.Input == record.StdinPath) {
		return fmt.Errorf("%w: %w", ErrInvalidOption, record.ErrFollowStdin)
	}
	if c.Driver == DriverTcell && c.Output != StdoutPath {
		return fmt.Errorf("%w: the tcell driver only writes to standard output", ErrInvalidOption)
	}
	if _, err := core.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	return nil
}

// TerminalOptions translates the color mode for terminal.Open
func (c *Config) TerminalOptions() []terminal.Option {
	switch c.ColorMode {
	case Color256:
		return []terminal.Option{terminal.WithColorMode(terminal.ColorMode256)}
	case ColorTrueColor:
		return []terminal.Option{terminal.WithColorMode(terminal.ColorModeTrueColor)}
	}
	return nil
}

// LoadFile reads a YAML mapping of long flag names to values
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: config file: %w", ErrInvalidOption, err)
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: config file %s: %w", ErrInvalidOption, path, err)
	}
	return values, nil
}

// Apply sets every flag in values that was not given on the command line
// Lists set a repeatable flag once per element
func Apply(fs *pflag.FlagSet, values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		f := fs.Lookup(key)
		if f == nil || key == "config" {
			return fmt.Errorf("%w: config file: unknown option %q", ErrInvalidOption, key)
		}
		if f.Changed {
			continue
		}

		var items []any
		switch v := values[key].(type) {
		case nil:
			continue
		case []any:
			items = v
		case map[string]any:
			return fmt.Errorf("%w: config file: option %q must be a value or a list", ErrInvalidOption, key)
		default:
			items = []any{v}
		}

		for _, item := range items {
			if err := fs.Set(key, scalar(item)); err != nil {
				return fmt.Errorf("%w: config file: %s: %w", ErrInvalidOption, key, err)
			}
		}
	}
	return nil
}

func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// OpenOutput resolves the output sink
// "-" is standard output; any other path must already exist and is appended to
func OpenOutput(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == StdoutPath {
		return os.Stdout, nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrOutputSink, path, err)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// delimiterValue parses delimiter spellings with record.ParseDelimiter
type delimiterValue struct {
	dst *byte
}

func (v delimiterValue) String() string {
	if v.dst == nil {
		return record.DefaultDelimiter
	}
	return record.FormatDelimiter(*v.dst)
}

func (v delimiterValue) Set(s string) error {
	b, err := record.ParseDelimiter(s)
	if err != nil {
		return err
	}
	*v.dst = b
	return nil
}

func (delimiterValue) Type() string { return "char" }
