//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "os"

func openTTY() (Backend, error) {
	return nil, ErrNotTerminal
}

func notifyResize(chan<- os.Signal) {}

func resetTerminalMode() {}
