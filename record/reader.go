package record

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// DecodeError reports a record that is not valid UTF-8
type DecodeError struct {
	Offset int64 // Stream offset of the record's first byte
	Len    int   // Record length in bytes, delimiter excluded
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("record at byte %d (%d bytes): invalid UTF-8", e.Offset, e.Len)
}

// Reader splits a stream into records
// Not safe for concurrent use
type Reader struct {
	br     *bufio.Reader
	delim  byte
	offset int64
	done   bool
}

// NewReader creates a reader splitting src on delim
func NewReader(src io.Reader, delim byte) *Reader {
	return &Reader{
		br:    bufio.NewReaderSize(src, 64*1024),
		delim: delim,
	}
}

// Next returns the next non-empty record
// After the last record it returns io.EOF; read errors are returned wrapped
func (r *Reader) Next() (string, error) {
	for {
		if r.done {
			return "", io.EOF
		}

		b, err := r.br.ReadBytes(r.delim)
		start := r.offset
		r.offset += int64(len(b))

		if err != nil {
			if err != io.EOF {
				return "", fmt.Errorf("read input: %w", err)
			}
			r.done = true
		}

		if n := len(b); n > 0 && b[n-1] == r.delim && err == nil {
			b = b[:n-1]
		}
		if len(b) == 0 {
			continue
		}
		if !utf8.Valid(b) {
			return "", &DecodeError{Offset: start, Len: len(b)}
		}
		return string(b), nil
	}
}

// Offset returns the number of bytes consumed so far
func (r *Reader) Offset() int64 {
	return r.offset
}
