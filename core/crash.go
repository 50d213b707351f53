package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup restores the terminal before the stack trace prints,
// registered once after screen initialization
var crashCleanup atomic.Value

// RegisterCleanup installs the terminal restore function used by HandleCrash.
// Passing nil clears a previous registration.
func RegisterCleanup(fn func()) {
	crashCleanup.Store(cleanupFunc{fn})
}

type cleanupFunc struct {
	fn func()
}

// HandleCrash is the unified panic handler that restores the terminal and
// prints the stack trace to stderr before exiting
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if c, ok := crashCleanup.Load().(cleanupFunc); ok && c.fn != nil {
		c.fn()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
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
