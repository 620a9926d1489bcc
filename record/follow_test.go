package record

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpenInput_FollowStdin(t *testing.T) {
	if _, _, err := OpenInput("-", true); !errors.Is(err, ErrFollowStdin) {
		t.Errorf("Expected ErrFollowStdin, got %v", err)
	}
}

func TestOpenInput_Missing(t *testing.T) {
	if _, _, err := OpenInput(filepath.Join(t.TempDir(), "nope"), false); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestFollower_ReadsAppendsUntilRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, closer, err := OpenInput(path, true)
	if err != nil {
		t.Fatalf("OpenInput: %v", err)
	}
	defer closer.Close()

	type result struct {
		rec string
		err error
	}
	results := make(chan result, 8)
	go func() {
		r := NewReader(src, '\n')
		for {
			rec, err := r.Next()
			results <- result{rec, err}
			if err != nil {
				return
			}
		}
	}()

	next := func() result {
		t.Helper()
		select {
		case res := <-results:
			return res
		case <-time.After(3 * time.Second):
			t.Fatal("Timed out waiting for follower")
			return result{}
		}
	}

	if res := next(); res.err != nil || res.rec != "first" {
		t.Fatalf("Expected first record, got %q (err=%v)", res.rec, res.err)
	}

	// Give fsnotify time to start watching.
	time.Sleep(50 * time.Millisecond)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	f.WriteString("sec")
	f.WriteString("ond\n")
	f.Close()

	if res := next(); res.err != nil || res.rec != "second" {
		t.Fatalf("Expected appended record, got %q (err=%v)", res.rec, res.err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if res := next(); !errors.Is(res.err, io.EOF) {
		t.Errorf("Expected EOF after removal, got %q (err=%v)", res.rec, res.err)
	}
}
