package record

import (
	"errors"
	"fmt"
)

// ErrInvalidDelimiter is returned for delimiter spellings that are not one byte
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// DefaultDelimiter is the NUL byte
const DefaultDelimiter = `\0`

// delimiterEscapes maps backslash spellings to their byte
var delimiterEscapes = map[string]byte{
	`\t`: '\t',
	`\n`: '\n',
	`\r`: '\r',
	`\0`: 0,
	`\\`: '\\',
	`\`:  '\\',
}

// ParseDelimiter resolves a delimiter spelling to its byte
// Escapes are checked first, then any single character is taken as its first byte
func ParseDelimiter(s string) (byte, error) {
	if b, ok := delimiterEscapes[s]; ok {
		return b, nil
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDelimiter)
	}
	if len([]rune(s)) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrInvalidDelimiter, s)
	}
	return s[0], nil
}

// FormatDelimiter returns the spelling ParseDelimiter reads back as b
func FormatDelimiter(b byte) string {
	switch b {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case 0:
		return `\0`
	case '\\':
		return `\\`
	}
	return string(rune(b))
}
