/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

// initialCapacity is the table length a PerThreadMap starts with.
const initialCapacity = 16

// PerThreadMap is a linear-probe, open-addressed, weak-keyed hash table
// owned by and reachable only from the thread it belongs to. It is
// created lazily by the Registry on a thread's first Set and never
// shared across threads, so none of its methods take a lock.
type PerThreadMap struct {
	table     []*entry
	size      int
	threshold int
}

// newPerThreadMap returns a map of initialCapacity seeded with one
// binding. Used for a thread's first Set/Get; inherited maps are built
// separately by newInheritedMap (see map-inherit.go).
func newPerThreadMap(key *handleKey, value any) (m *PerThreadMap) {
	m = &PerThreadMap{
		table:     make([]*entry, initialCapacity),
		threshold: threshold(initialCapacity),
	}
	var i = m.homeIndex(key)
	m.table[i] = newEntry(key, value)
	m.size = 1
	return
}

// threshold computes the rehash trigger for a table of the given length:
// 2*length/3.
func threshold(length int) (t int) { return 2 * length / 3 }

// homeIndex is the slot a key would occupy absent collisions:
// id & (length-1).
func (m *PerThreadMap) homeIndex(key *handleKey) (i int) {
	return int(key.id) & (len(m.table) - 1)
}

// nextIndex advances i by one slot, wrapping at the end of the table.
func (m *PerThreadMap) nextIndex(i int) (next int) {
	i++
	if i == len(m.table) {
		i = 0
	}
	return i
}

// prevIndex retreats i by one slot, wrapping at the start of the table.
func (m *PerThreadMap) prevIndex(i int) (prev int) {
	i--
	if i < 0 {
		i = len(m.table) - 1
	}
	return i
}

// Size returns the number of non-empty slots, including stale entries
// not yet expunged. Exported for tests; not part of the handle-level
// API.
func (m *PerThreadMap) Size() (size int) { return m.size }
