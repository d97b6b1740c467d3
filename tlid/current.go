/*
© 2025–present tlocal contributors
ISC License
*/

package tlid

import (
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/tlocal/tlocal/tlerrors"
)

// debug.Stack's first line looks like:
//
//	goroutine 18 [running]:
var firstLineRegexp = regexp.MustCompile(`^goroutine ([[:digit:]]+) \[([^]]+)\]:$`)

// Current returns the ThreadID of the calling goroutine.
//   - as of Go1.18, this is an increasing unsigned integer beginning at 1
//     for the main invocation
//   - panics if the runtime-provided stack trace cannot be parsed, which
//     would indicate a Go runtime format change rather than a user error
func Current() (threadID ThreadID) {
	var err error
	if threadID, err = parseFirstLine(string(debug.Stack())); err != nil {
		panic(err)
	}
	return
}

// parseFirstLine extracts the goroutine-id field of the first line of a
// [debug.Stack] trace
func parseFirstLine(stack string) (threadID ThreadID, err error) {
	if index := strings.IndexByte(stack, '\n'); index != -1 {
		stack = stack[:index]
	}
	var matches = firstLineRegexp.FindStringSubmatch(stack)
	if matches == nil {
		err = tlerrors.Errorf("tlid: failed to parse goroutine-id from: %q", stack)
		return
	}
	threadID = ThreadID(matches[1])
	return
}
