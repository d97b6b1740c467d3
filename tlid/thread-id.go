/*
© 2025–present tlocal contributors
ISC License
*/

// Package tlid extracts a unique identifier for the running goroutine.
//
//	m := map[tlid.ThreadID]SomeInterface{}
//	m[tlid.Current()] = …
package tlid

// ThreadID is an opaque type that uniquely identifies a thread, ie. a
// goroutine.
//   - Current obtains the ThreadID for the executing goroutine
//   - ThreadID is comparable, ie. usable as a map key
//   - ThreadID can be cast to string
type ThreadID string

func (threadID ThreadID) String() (s string) { return string(threadID) }

func (threadID ThreadID) IsValid() (isValid bool) { return threadID != "" }
