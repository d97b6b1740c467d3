/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import "github.com/tlocal/tlocal/tllog"

// rehash implements §4.8: a full-table stale-entry sweep, followed by a
// resize if occupancy is still at or above a slightly lowered threshold
// (avoiding a grow/shrink-like hysteresis right at the boundary).
func (m *PerThreadMap) rehash() {
	m.expungeStaleEntries()
	if m.size >= m.threshold-m.threshold/4 {
		m.resize()
	}
}

func (m *PerThreadMap) expungeStaleEntries() {
	for j := 0; j < len(m.table); j++ {
		if slot := m.table[j]; slot != nil && slot.isStale() {
			m.expungeStaleEntry(j)
		}
	}
}

// resize doubles the table length and reinserts every live entry,
// dropping stale ones.
func (m *PerThreadMap) resize() {
	var oldTable = m.table
	var newLength = len(oldTable) * 2
	var newTable = make([]*entry, newLength)
	var count int

	for _, slot := range oldTable {
		if slot == nil {
			continue
		}
		var k = slot.resolve()
		if k == nil {
			slot.clear()
			continue
		}
		var h = int(k.id) & (newLength - 1)
		for newTable[h] != nil {
			h++
			if h == newLength {
				h = 0
			}
		}
		newTable[h] = slot
		count++
	}

	m.table = newTable
	m.threshold = threshold(newLength)
	m.size = count
	activeMetrics.incResize()
	tllog.D("tlocal: resized table %d -> %d, size %d", len(oldTable), newLength, count)
}
