/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import "github.com/tlocal/tlocal/tlid"

// SpawnInherited starts fn in a new goroutine, seeding the new thread's
// Handle bindings from the calling thread's current map as described
// in §4.10: for each Handle constructed with [NewInheritableHandle]
// that the caller has a live binding for, the new thread starts with
// ChildValue(parentValue) already bound. Handles without inheritance
// support, and Handles the caller never bound, are absent from the new
// thread's map exactly as they would be for any other new thread.
//
// The snapshot is taken synchronously in the calling thread before fn
// starts running, so a concurrent Set on the parent's Handle after
// SpawnInherited returns is never observed by the child.
func SpawnInherited(fn func()) {
	var parent, ok = defaultRegistry.currentMap()
	if !ok {
		go fn()
		return
	}

	var child = newInheritedMap(parent)
	go func() {
		defaultRegistry.attachInherited(tlid.Current(), child)
		fn()
	}()
}
