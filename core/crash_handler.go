package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Restorer returns the terminal to a usable state, best-effort
// Implemented by the ANSI terminal and the tcell surface
type Restorer interface {
	Restore()
}

var (
	crashMu       sync.Mutex
	crashTerminal Restorer

	// Seams for tests
	exitFunc             = os.Exit
	crashOut   io.Writer = os.Stderr
)

// RegisterTerminal sets the terminal restored before the process dies
// Pass nil to clear
func RegisterTerminal(r Restorer) {
	crashMu.Lock()
	crashTerminal = r
	crashMu.Unlock()
}

// restoreTerminal runs the registered restorer once, later callers find it cleared
func restoreTerminal() {
	crashMu.Lock()
	r := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	if r != nil {
		r.Restore()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreTerminal()

	// \r\n keeps output aligned if raw mode could not be left
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exitFunc(1)
}

// Fatal ends the process on an unrecoverable error from a background goroutine
// There is no channel back to the main loop, the whole process goes down
func Fatal(err error) {
	if err == nil {
		return
	}

	restoreTerminal()

	fmt.Fprintf(crashOut, "\r\nfatal: %v\r\n", err)
	exitFunc(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
