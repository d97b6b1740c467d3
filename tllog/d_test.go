/*
© 2025–present tlocal contributors
ISC License
*/

package tllog

import "testing"

func TestSetDebug(t *testing.T) {
	defer SetDebug(false)

	SetDebug(true)
	if !IsDebug() {
		t.Error("IsDebug false after SetDebug(true)")
	}
	D("hello %d", 1024) // must not panic whether or not this reaches a terminal

	SetDebug(false)
	if IsDebug() {
		t.Error("IsDebug true after SetDebug(false)")
	}
}

func TestSprintfGrouping(t *testing.T) {
	var s = Sprintf("%d", 1024)
	if s != "1,024" {
		t.Errorf("Sprintf grouping: %q exp %q", s, "1,024")
	}
}
