//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ttyBackend reads keys from the controlling terminal
type ttyBackend struct {
	in    *os.File
	fd    int
	owned bool // in was opened by us and must be closed

	mu      sync.Mutex
	oldTerm *term.State
}

// openTTY opens /dev/tty, falling back to stdin when it is a terminal
// Records may arrive on stdin, so the controlling terminal is preferred
func openTTY() (Backend, error) {
	if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		if term.IsTerminal(int(f.Fd())) {
			return &ttyBackend{in: f, fd: int(f.Fd()), owned: true}, nil
		}
		f.Close()
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &ttyBackend{in: os.Stdin, fd: int(os.Stdin.Fd())}, nil
	}
	return nil, ErrNotTerminal
}

func (b *ttyBackend) MakeRaw() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.oldTerm != nil {
		return nil
	}
	old, err := term.MakeRaw(b.fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	b.oldTerm = old
	return nil
}

func (b *ttyBackend) Restore() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.oldTerm == nil {
		return nil
	}
	if err := term.Restore(b.fd, b.oldTerm); err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	b.oldTerm = nil
	return nil
}

func (b *ttyBackend) Size() (int, int) {
	return getTerminalSize(b.fd)
}

func (b *ttyBackend) Read(buf []byte, timeoutMs int) (int, error) {
	fds := []unix.PollFd{{Fd: int32(b.fd), Events: unix.POLLIN}}

	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err != nil {
			if err == unix.EINTR {
				// SIGWINCH lands here; let the caller look at the signal
				return 0, nil
			}
			return 0, err
		}
		if n == 0 {
			return 0, nil
		}
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 && fds[0].Revents&unix.POLLIN == 0 {
			return 0, io.EOF
		}

		rn, err := unix.Read(b.fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, err
		}
		if rn == 0 {
			return 0, io.EOF
		}
		return rn, nil
	}
}

func (b *ttyBackend) Close() error {
	if b.owned {
		return b.in.Close()
	}
	return nil
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// resetTerminalMode restores cooked mode on the controlling tty
// Used on crash paths where the saved state is not reachable
func resetTerminalMode() {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer f.Close()

	fd := int(f.Fd())
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	t.Iflag |= unix.ICRNL | unix.IXON
	t.Oflag |= unix.OPOST
	t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}

// notifyResize delivers SIGWINCH to ch
func notifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGWINCH)
}
