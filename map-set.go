/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

// set implements §4.4: insert-or-update. The caller (Handle.Get,
// Handle.Set) is responsible for creating the map via
// newPerThreadMap on the thread's first binding; set assumes the table
// already exists.
func (m *PerThreadMap) set(key *handleKey, value any) {
	var i = m.homeIndex(key)
	for {
		var slot = m.table[i]
		if slot == nil {
			break
		}
		var k = slot.resolve()
		if k == key {
			slot.value = value
			return
		}
		if k == nil {
			m.replaceStaleEntry(key, value, i)
			return
		}
		i = m.nextIndex(i)
	}

	m.table[i] = newEntry(key, value)
	m.size++

	var cleaned = m.cleanSomeSlots(i, m.size)
	if !cleaned && m.size >= m.threshold {
		m.rehash()
	}
}
