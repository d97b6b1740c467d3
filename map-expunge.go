/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import "github.com/tlocal/tlocal/tllog"

// expungeStaleEntry implements §4.6. It nulls the entry at staleSlot,
// then walks forward over the rest of the run: stale entries it meets
// are nulled too, live entries are rehashed in place if they are no
// longer sitting at their own home slot. Returns the index of the
// trailing empty slot the walk ends on.
func (m *PerThreadMap) expungeStaleEntry(staleSlot int) (i int) {
	m.table[staleSlot].clear()
	m.table[staleSlot] = nil
	m.size--
	var removed = 1

	for i = m.nextIndex(staleSlot); m.table[i] != nil; i = m.nextIndex(i) {
		var slot = m.table[i]
		var k = slot.resolve()
		if k == nil {
			slot.clear()
			m.table[i] = nil
			m.size--
			removed++
			continue
		}
		var h = m.homeIndex(k)
		if h != i {
			m.table[i] = nil
			for m.table[h] != nil {
				h = m.nextIndex(h)
			}
			m.table[h] = slot
		}
	}

	activeMetrics.addExpunged(removed)
	tllog.D("tlocal: expunged %d stale entries starting at slot %d", removed, staleSlot)
	return i
}
