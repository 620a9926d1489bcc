package record

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Follower reads a file and keeps reading as it grows, like tail -f
// Reads at end of file block until the file is written again
// Removing or renaming the file ends the stream with io.EOF
type Follower struct {
	file    *os.File
	base    string
	watcher *fsnotify.Watcher
}

// NewFollower watches f for writes; the Follower owns f from here on
// The parent directory is watched: removal of a file that is still open
// is only reported on the directory
func NewFollower(f *os.File) (*Follower, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("follow %s: %w", f.Name(), err)
	}
	if err := w.Add(filepath.Dir(f.Name())); err != nil {
		w.Close()
		return nil, fmt.Errorf("follow %s: %w", f.Name(), err)
	}
	return &Follower{file: f, base: filepath.Base(f.Name()), watcher: w}, nil
}

// Read implements io.Reader
func (fl *Follower) Read(p []byte) (int, error) {
	for {
		n, err := fl.file.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && err != io.EOF {
			return 0, err
		}

		done, err := fl.wait()
		if done || err != nil {
			return 0, err
		}
	}
}

// wait blocks until the file changes
// Returns done when the file went away
func (fl *Follower) wait() (bool, error) {
	select {
	case ev, ok := <-fl.watcher.Events:
		if !ok {
			return true, io.EOF
		}
		if filepath.Base(ev.Name) != fl.base {
			return false, nil
		}
		if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
			return true, io.EOF
		}
		if ev.Has(fsnotify.Write) {
			fl.rewindIfTruncated()
		}
		return false, nil

	case err, ok := <-fl.watcher.Errors:
		if !ok {
			return true, io.EOF
		}
		return true, fmt.Errorf("follow %s: %w", fl.file.Name(), err)
	}
}

// rewindIfTruncated restarts from the beginning when the file shrank below the read offset
func (fl *Follower) rewindIfTruncated() {
	pos, err := fl.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return
	}
	if st, err := fl.file.Stat(); err == nil && st.Size() < pos {
		fl.file.Seek(0, io.SeekStart)
	}
}

// Close stops watching and closes the file
func (fl *Follower) Close() error {
	werr := fl.watcher.Close()
	if err := fl.file.Close(); err != nil {
		return err
	}
	return werr
}
