package record

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinPath selects standard input
const StdinPath = "-"

// ErrFollowStdin is returned when follow mode is requested for standard input
var ErrFollowStdin = errors.New("follow requires a file input")

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenInput opens the record source named by path
// "-" is standard input, which is never closed; follow wraps a file in a Follower
func OpenInput(path string, follow bool) (io.Reader, io.Closer, error) {
	if path == StdinPath || path == "" {
		if follow {
			return nil, nil, ErrFollowStdin
		}
		return os.Stdin, nopCloser{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	if !follow {
		return f, f, nil
	}

	fl, err := NewFollower(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return fl, fl, nil
}
