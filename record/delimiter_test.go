package record

import (
	"errors"
	"testing"
)

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want byte
	}{
		{`\t`, 0x09},
		{`\n`, 0x0A},
		{`\r`, 0x0D},
		{`\0`, 0x00},
		{`\\`, 0x5C},
		{`\`, 0x5C},
		{",", ','},
		{"|", '|'},
		{"é", 0xC3},
	}
	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in)
		if err != nil {
			t.Errorf("ParseDelimiter(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDelimiter(%q): expected 0x%02X, got 0x%02X", tt.in, tt.want, got)
		}
	}
}

func TestParseDelimiter_Invalid(t *testing.T) {
	for _, in := range []string{"", "ab", `\x`} {
		if _, err := ParseDelimiter(in); !errors.Is(err, ErrInvalidDelimiter) {
			t.Errorf("ParseDelimiter(%q): expected ErrInvalidDelimiter, got %v", in, err)
		}
	}
}

func TestFormatDelimiter_RoundTrip(t *testing.T) {
	for _, b := range []byte{0, '\t', '\n', '\r', '\\', ',', 'x'} {
		got, err := ParseDelimiter(FormatDelimiter(b))
		if err != nil || got != b {
			t.Errorf("Expected 0x%02X back, got 0x%02X (err=%v)", b, got, err)
		}
	}
}
