/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

// Get returns this Handle's value for the calling thread.
//   - if the thread has no map yet, InitialValue is invoked, a map is
//     created seeded with the result, and the result is returned
//   - if the thread has a map but no binding for this Handle,
//     InitialValue is invoked, the result is stored via Set, and
//     returned
//   - InitialValue is invoked at most once per continuous binding: a
//     Remove followed by Get re-invokes it
func (h *Handle[T]) Get() (value T) {
	var m, existed = defaultRegistry.currentMap()
	if !existed {
		value = h.InitialValue()
		defaultRegistry.getOrCreateMap(func() *PerThreadMap {
			return newPerThreadMap(h.key, value)
		})
		return
	}

	if entryValue, ok := m.get(h.key); ok {
		value, _ = entryValue.(T)
		return
	}

	value = h.InitialValue()
	m.set(h.key, value)
	return
}

// Set stores v as this Handle's value for the calling thread, creating
// the thread's map if this is its first binding.
func (h *Handle[T]) Set(v T) {
	var m, created = defaultRegistry.getOrCreateMap(func() *PerThreadMap {
		return newPerThreadMap(h.key, v)
	})
	if !created {
		m.set(h.key, v)
	}
}

// Remove deletes this Handle's binding for the calling thread, if any.
// A subsequent Get re-invokes InitialValue.
func (h *Handle[T]) Remove() {
	if m, ok := defaultRegistry.currentMap(); ok {
		m.remove(h.key)
	}
}
