/*
© 2025–present tlocal contributors
ISC License
*/

// Package tllog provides the opportunistic debug-trace output this module
// uses to surface table resizes and stale-slot reclamation without
// requiring a caller-supplied logger.
//   - adapted from the teacher library's plog package, trimmed to its D()
//     debug-print idiom
package tllog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// englishPrinter formats numbers with thousands separators, eg.
// “table length: 1,024”
var englishPrinter = message.NewPrinter(language.English)

// Sprintf is like [fmt.Sprintf] but renders %d and %v integers with
// English digit-grouping, matching the teacher library's plog.Sprintf
func Sprintf(format string, a ...any) (s string) {
	return englishPrinter.Sprintf(format, a...)
}
