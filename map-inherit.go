/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

// newInheritedMap implements §4.10: a child thread's starting map,
// built from a snapshot of the parent's current map. Only Handles
// constructed with [NewInheritableHandle] carry a binding forward; a
// live parent entry for any other Handle is silently left out of the
// child's map, since that Handle never opted into the protocol.
func newInheritedMap(parent *PerThreadMap) (child *PerThreadMap) {
	var length = len(parent.table)
	child = &PerThreadMap{
		table:     make([]*entry, length),
		threshold: threshold(length),
	}

	for _, slot := range parent.table {
		if slot == nil {
			continue
		}
		var key = slot.resolve()
		if key == nil || key.inherit == nil {
			continue
		}
		var childValue = key.inherit(slot.value)

		var h = child.homeIndex(key)
		for child.table[h] != nil {
			h = child.nextIndex(h)
		}
		child.table[h] = newEntry(key, childValue)
		child.size++
	}
	return
}
