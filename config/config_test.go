package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/pipeview/record"
)

func parse(t *testing.T, args ...string) (*Config, *pflag.FlagSet, error) {
	t.Helper()
	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	c.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, fs, err
	}
	return c, fs, c.Resolve(fs)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	c, _, err := parse(t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Input != "-" || c.Output != "-" {
		t.Errorf("Expected stdin to stdout, got %q -> %q", c.Input, c.Output)
	}
	if c.Delimiter != 0 {
		t.Errorf("Expected NUL delimiter, got %q", c.Delimiter)
	}
	if c.Driver != DriverANSI {
		t.Errorf("Expected ansi driver, got %q", c.Driver)
	}
	if c.TerminalOptions() != nil {
		t.Error("Expected no terminal options for auto color mode")
	}
}

func TestFlagsAndPositional(t *testing.T) {
	c, _, err := parse(t, "-d", `\n`, "--color-mode", "256", "data.txt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Delimiter != '\n' {
		t.Errorf("Expected newline delimiter, got %q", c.Delimiter)
	}
	if c.Input != "data.txt" {
		t.Errorf("Expected input data.txt, got %q", c.Input)
	}
	if len(c.TerminalOptions()) != 1 {
		t.Error("Expected a color mode option")
	}
}

func TestInvalidDelimiter(t *testing.T) {
	_, _, err := parse(t, "-d", "ab")
	if err == nil || !strings.Contains(err.Error(), record.ErrInvalidDelimiter.Error()) {
		t.Errorf("Expected invalid delimiter error, got %v", err)
	}
}

func TestUnexpectedArgument(t *testing.T) {
	_, _, err := parse(t, "a", "b")
	if !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"driver", []string{"--driver", "curses"}},
		{"color mode", []string{"--color-mode", "16"}},
		{"follow stdin", []string{"-f"}},
		{"tcell to file", []string{"--driver", "tcell", "-o", "out.txt"}},
		{"log level", []string{"--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parse(t, tt.args...)
			if !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Expected ErrInvalidOption, got %v", err)
			}
		})
	}

	_, _, err := parse(t, "-f")
	if !errors.Is(err, record.ErrFollowStdin) {
		t.Errorf("Expected ErrFollowStdin in chain, got %v", err)
	}
}

func TestConfigFileDefaults(t *testing.T) {
	path := writeFile(t, "opts.yaml", `
input: records.txt
delimiter: "\\t"
driver: tcell
log-level: debug
extra:
  - a
  - b
`)
	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.AddFlags(fs)
	var extra []string
	fs.StringSliceVar(&extra, "extra", nil, "")

	if err := fs.Parse([]string{"--config", path, "--log-level", "warn"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := c.Resolve(fs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if c.Input != "records.txt" {
		t.Errorf("Expected input from file, got %q", c.Input)
	}
	if c.Delimiter != '\t' {
		t.Errorf("Expected tab delimiter, got %q", c.Delimiter)
	}
	if c.Driver != DriverTcell {
		t.Errorf("Expected tcell driver, got %q", c.Driver)
	}
	if c.LogLevel != "warn" {
		t.Errorf("Expected command line to win, got %q", c.LogLevel)
	}
	if len(extra) != 2 || extra[1] != "b" {
		t.Errorf("Expected list applied per element, got %v", extra)
	}
}

func TestConfigFilePositionalWins(t *testing.T) {
	path := writeFile(t, "opts.yaml", "input: from-file.txt\n")
	c, _, err := parse(t, "--config", path, "from-args.txt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Input != "from-args.txt" {
		t.Errorf("Expected positional input, got %q", c.Input)
	}
}

func TestConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "colour: red\n"},
		{"nested config", "config: other.yaml\n"},
		{"map value", "driver:\n  name: ansi\n"},
		{"bad value", "delimiter: abc\n"},
		{"not yaml", "[unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "opts.yaml", tt.content)
			_, _, err := parse(t, "--config", path)
			if !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Expected ErrInvalidOption, got %v", err)
			}
		})
	}

	_, _, err := parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption for missing file, got %v", err)
	}
}

func TestOpenOutputMissing(t *testing.T) {
	_, _, err := OpenOutput(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrOutputSink) {
		t.Errorf("Expected ErrOutputSink, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist in chain, got %v", err)
	}
}

func TestOpenOutputAppends(t *testing.T) {
	path := writeFile(t, "out", "head\n")
	w, closer, err := OpenOutput(path)
	if err != nil {
		t.Fatalf("OpenOutput: %v", err)
	}
	if _, err := w.Write([]byte("tail\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	closer.Close()

	data, _ := os.ReadFile(path)
	if string(data) != "head\ntail\n" {
		t.Errorf("Expected appended output, got %q", data)
	}
}

func TestOpenOutputStdout(t *testing.T) {
	w, closer, err := OpenOutput("-")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if w != os.Stdout {
		t.Error("Expected standard output")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Expected no-op close, got %v", err)
	}
}
