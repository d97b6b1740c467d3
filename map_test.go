/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import (
	"runtime"
	"testing"
)

func TestMapSetGetRoundTrip(t *testing.T) {
	var k = newHandleKey()
	var m = newPerThreadMap(k, "v")
	if got, ok := m.get(k); !ok || got != "v" {
		t.Fatalf("get = (%v, %v), want (v, true)", got, ok)
	}
}

func TestMapOverwritesLiveEntry(t *testing.T) {
	var k = newHandleKey()
	var m = newPerThreadMap(k, 1)
	m.set(k, 2)
	if got, _ := m.get(k); got != 2 {
		t.Fatalf("get = %v, want 2", got)
	}
	if m.size != 1 {
		t.Fatalf("size = %d, want 1 (overwrite must not grow the map)", m.size)
	}
}

func TestMapCollisionCluster(t *testing.T) {
	var k0 = newHandleKey()
	var m = newPerThreadMap(k0, "k0")

	// force a colliding key into the same home slot as k0
	var home = m.homeIndex(k0)
	var k1 = &handleKey{id: k0.id + uint32(len(m.table))}
	if m.homeIndex(k1) != home {
		t.Fatalf("test key does not collide with k0")
	}
	m.set(k1, "k1")

	if got, ok := m.get(k0); !ok || got != "k0" {
		t.Fatalf("get(k0) = (%v, %v), want (k0, true)", got, ok)
	}
	if got, ok := m.get(k1); !ok || got != "k1" {
		t.Fatalf("get(k1) = (%v, %v), want (k1, true)", got, ok)
	}
}

func TestMapRemove(t *testing.T) {
	var k = newHandleKey()
	var m = newPerThreadMap(k, "v")
	m.remove(k)
	if _, ok := m.get(k); ok {
		t.Fatal("get after remove reported ok=true")
	}
	if m.size != 0 {
		t.Fatalf("size = %d, want 0", m.size)
	}
}

func TestMapResizeGrowsTable(t *testing.T) {
	var keys []*handleKey
	var first = newHandleKey()
	var m = newPerThreadMap(first, 0)
	keys = append(keys, first)

	var oldLen = len(m.table)
	for i := 1; i < oldLen; i++ {
		var k = newHandleKey()
		m.set(k, i)
		keys = append(keys, k)
	}

	if len(m.table) <= oldLen {
		t.Fatalf("table length = %d, want growth past %d", len(m.table), oldLen)
	}
	for i, k := range keys {
		if got, ok := m.get(k); !ok || got != i {
			t.Fatalf("get(keys[%d]) = (%v, %v), want (%d, true)", i, got, ok, i)
		}
	}
}

func TestMapReclaimsStaleEntryOnSet(t *testing.T) {
	var m *PerThreadMap
	var home int
	var live *handleKey

	func() {
		var dying = newHandleKey()
		m = newPerThreadMap(dying, "dying")
		home = m.homeIndex(dying)
		live = &handleKey{id: dying.id + uint32(len(m.table))}
	}()
	if m.homeIndex(live) != home {
		t.Fatalf("test key does not collide with the dying key's home slot")
	}

	runtime.GC()
	runtime.GC()

	m.set(live, "live")
	if got, ok := m.get(live); !ok || got != "live" {
		t.Fatalf("get(live) = (%v, %v), want (live, true)", got, ok)
	}
	if got := m.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1 (the collected entry must have been reclaimed)", got)
	}
}
