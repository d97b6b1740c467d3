/*
© 2025–present tlocal contributors
ISC License
*/

package tllog

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"sync/atomic"
)

// stderrLogger is a shared log.Logger instance for stderr.
//   - using this for output ensures thread-safety of concurrent D() calls
//     from multiple goroutines
var stderrLogger = log.New(os.Stderr, "", 0)

// debugEnabled gates D() output; off by default so a library consumer
// never sees trace output unless they opt in with SetDebug
var debugEnabled atomic.Bool

// SetDebug turns D() output on or off. Off by default.
func SetDebug(enabled bool) { debugEnabled.Store(enabled) }

// IsDebug reports whether D() currently prints
func IsDebug() (enabled bool) { return debugEnabled.Load() }

// D prints to stderr with caller code location, if debug output is
// enabled. Thread-safe.
//   - D is meant for temporary, opportunistic trace output, eg. this
//     module's resize/expunge instrumentation
func D(format string, a ...any) {
	if !debugEnabled.Load() {
		return
	}
	var location string
	if _, file, line, ok := runtime.Caller(1); ok {
		location = fmt.Sprintf(" [%s:%d]", file, line)
	}
	if err := stderrLogger.Output(0, Sprintf(format, a...)+location); err != nil {
		panic(fmt.Errorf("tllog: log.Logger.Output error: %w", err))
	}
}
