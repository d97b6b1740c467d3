/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import (
	"sync"
	"sync/atomic"

	"github.com/tlocal/tlocal/tlid"
)

// sweepInterval is how many getOrCreateMap misses elapse between
// sweepAbandoned passes.
const sweepInterval = 4096

// registry is the process-wide table of per-thread maps, keyed by the
// goroutine identifier a thread is observed under. It is the one
// component in this package that is genuinely shared across threads,
// so all access goes through mu.
type registry struct {
	mu     sync.RWMutex
	maps   map[tlid.ThreadID]*PerThreadMap
	misses atomic.Uint32
}

var defaultRegistry = newRegistry()

func newRegistry() *registry {
	return &registry{maps: make(map[tlid.ThreadID]*PerThreadMap)}
}

// currentMap returns the calling thread's map, if it has one.
func (r *registry) currentMap() (m *PerThreadMap, ok bool) {
	var id = tlid.Current()
	r.mu.RLock()
	m, ok = r.maps[id]
	r.mu.RUnlock()
	return
}

// getOrCreateMap returns the calling thread's map, creating it with
// seed if this is the thread's first binding. created reports which
// happened, so callers that already inserted a value via seed do not
// redundantly insert it again.
func (r *registry) getOrCreateMap(seed func() *PerThreadMap) (m *PerThreadMap, created bool) {
	var id = tlid.Current()

	r.mu.RLock()
	m, ok := r.maps[id]
	r.mu.RUnlock()
	if ok {
		return m, false
	}

	r.mu.Lock()
	if m, ok = r.maps[id]; !ok {
		m = seed()
		r.maps[id] = m
		created = true
		activeMetrics.setActiveMaps(len(r.maps))
	}
	r.mu.Unlock()

	if r.misses.Add(1)%sweepInterval == 0 {
		r.sweepAbandoned()
	}
	return
}

// attachInherited installs a pre-built map for threadID, used by
// [SpawnInherited] to seed a child thread's bindings before it runs
// its first statement. A thread that already has a map (should not
// happen for a freshly spawned goroutine) keeps its existing map.
func (r *registry) attachInherited(threadID tlid.ThreadID, m *PerThreadMap) {
	r.mu.Lock()
	if _, exists := r.maps[threadID]; !exists {
		r.maps[threadID] = m
		activeMetrics.setActiveMaps(len(r.maps))
		activeMetrics.incInherited()
	}
	r.mu.Unlock()
}

// Detach removes the calling thread's map, if any. Callers that know a
// thread is about to exit or is done using Handles should call this to
// release the binding eagerly rather than rely on sweepAbandoned.
func (r *registry) Detach() {
	var id = tlid.Current()
	r.mu.Lock()
	delete(r.maps, id)
	activeMetrics.setActiveMaps(len(r.maps))
	r.mu.Unlock()
}

// sweepAbandoned is the best-effort backstop for goroutines that exited
// without calling Detach: Go has no goroutine-exit hook, so this
// approximates "abandoned" with "currently empty" — a map whose every
// binding has already been removed or expunged. It never removes a map
// with live bindings, so it is not a substitute for Detach; a thread
// that is merely idle but still holds bindings is left untouched.
func (r *registry) sweepAbandoned() {
	r.mu.Lock()
	for id, m := range r.maps {
		if m.size == 0 {
			delete(r.maps, id)
		}
	}
	activeMetrics.setActiveMaps(len(r.maps))
	r.mu.Unlock()
}
