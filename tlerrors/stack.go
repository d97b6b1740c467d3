/*
© 2025–present tlocal contributors
ISC License
*/

// Package tlerrors provides stack-trace-carrying errors and the sentinel
// conditions this module's core can raise.
//   - adapted from the teacher library's perrors package, trimmed to the
//     single concern this module needs: attach a stack trace once, and
//     support errors.Is against a small number of named sentinels
package tlerrors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const stackFramesToSkip = 2

// withStack wraps an error with the call stack captured where the
// error-creating function was invoked
type withStack struct {
	error
	stack []uintptr
}

// Error includes the wrapped message; the stack is available via [Stack]
// rather than folded into the message, so %v output stays short
func (e *withStack) Error() string { return e.error.Error() }

func (e *withStack) Unwrap() error { return e.error }

// Stack returns a multi-line, human-readable rendering of the call stack
// captured when err was created.
//   - returns the empty string if err does not carry a stack trace
func Stack(err error) (s string) {
	var ws *withStack
	if !errors.As(err, &ws) {
		return
	}
	var frames = runtime.CallersFrames(ws.stack)
	var b strings.Builder
	for {
		var frame, more = frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}

// HasStack reports whether err's chain already carries a stack trace
func HasStack(err error) (hasStack bool) {
	var ws *withStack
	hasStack = errors.As(err, &ws)
	return
}

// Stackn attaches a stack trace to a non-nil err unconditionally,
// skipping framesToSkip additional frames beyond Stackn itself
func Stackn(err error, framesToSkip int) (err2 error) {
	if err == nil {
		return
	}
	if framesToSkip < 0 {
		framesToSkip = 0
	}
	var pc = make([]uintptr, 64)
	var n = runtime.Callers(stackFramesToSkip+framesToSkip, pc)
	err2 = &withStack{error: err, stack: pc[:n]}
	return
}

// stack ensures err carries a stack trace, attaching one only if absent
func stack(err error) (err2 error) {
	if err == nil || HasStack(err) {
		return err
	}
	return Stackn(err, 1)
}

// New is like [errors.New] but ensures the result carries a stack trace
func New(s string) (err error) { return Stackn(errors.New(s), 1) }

// Errorf is like [fmt.Errorf] but ensures the result carries a stack
// trace; if format wraps another error that already has one, no second
// trace is attached
func Errorf(format string, a ...any) (err error) {
	err = stack(fmt.Errorf(format, a...))
	return
}
