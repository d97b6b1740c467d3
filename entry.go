/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import "weak"

// entry is a PerThreadMap slot's payload: a weakly-held Handle identity
// plus a strongly-held, type-erased value. A nil *entry in the table
// denotes an empty slot.
type entry struct {
	key   weak.Pointer[handleKey]
	value any
}

// newEntry installs a live binding.
func newEntry(key *handleKey, value any) *entry {
	return &entry{key: weak.Make(key), value: value}
}

// resolve returns the live key this entry refers to, or nil if the
// entry is stale (its key is no longer strongly reachable outside any
// map).
func (e *entry) resolve() (key *handleKey) { return e.key.Value() }

// isStale reports whether this entry's weak reference no longer
// resolves.
func (e *entry) isStale() (stale bool) { return e.resolve() == nil }

// clear drops the strong value reference and invalidates the weak key
// reference, so that neither the key nor the value remain reachable
// through this entry even if the *entry itself briefly outlives the
// slot (eg. a caller retaining a result from a lookup).
func (e *entry) clear() {
	e.value = nil
	e.key = weak.Pointer[handleKey]{}
}
