/*
© 2025–present tlocal contributors
ISC License
*/

// Package tlocal provides per-thread associative storage keyed by
// identity: a Handle bound to a goroutine carries one value per
// goroutine that uses it, independent of any value the same Handle
// holds in a different goroutine.
//
// A Handle does not pin its bindings in memory. Once a Handle becomes
// unreachable from outside any thread's storage, the bindings it left
// behind become eligible for collection the next time the owning
// thread's storage is touched.
//
// Ordinary goroutines start with no bindings. [SpawnInherited] starts a
// goroutine that instead inherits bindings from Handles constructed
// with [NewInheritableHandle], the way a child process inherits
// environment variables from its parent.
package tlocal
