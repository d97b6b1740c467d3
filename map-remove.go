/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

// remove implements §4.9: walk the run from key's home slot; on a live
// match, invalidate the entry's weak reference and expunge it (which
// also rehashes whatever else remains in the run). A nonexistent
// binding is a no-op.
func (m *PerThreadMap) remove(key *handleKey) {
	var i = m.homeIndex(key)
	for {
		var slot = m.table[i]
		if slot == nil {
			return
		}
		if slot.resolve() == key {
			slot.clear()
			m.expungeStaleEntry(i)
			return
		}
		i = m.nextIndex(i)
	}
}
