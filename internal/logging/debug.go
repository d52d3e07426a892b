package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

var (
	mu      sync.Mutex
	output  io.Writer = os.Stderr
	verbose atomic.Bool
)

// DebugEnabled returns true if debug mode is enabled via PT_DEBUG environment variable
// or the --verbose flag
func DebugEnabled() bool {
	return os.Getenv("PT_DEBUG") != "" || verbose.Load()
}

// SetVerbose turns debug output on regardless of PT_DEBUG
func SetVerbose(on bool) {
	verbose.Store(on)
}

// SetOutput redirects debug output. The TUI points it at its log file so
// debug lines never land on the alternate screen
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(output, format, args...)
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(output, args...)
}
