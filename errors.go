/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import "github.com/tlocal/tlocal/tlerrors"

// ErrInvalidProducer is the sentinel [errors.Is] target for a nil
// producer or childValue function passed to a Handle constructor.
var ErrInvalidProducer = tlerrors.ErrInvalidProducer

// ErrInheritanceNotSupported is the sentinel [errors.Is] target for a
// ChildValue call on a Handle not constructed with
// [NewInheritableHandle].
var ErrInheritanceNotSupported = tlerrors.ErrInheritanceNotSupported

// WithHandleName annotates err with the name of the Handle or
// constructor function involved, preserving errors.Is against the
// unannotated sentinel.
func WithHandleName(err error, handleName string) (err2 error) {
	return tlerrors.WithHandle(err, handleName)
}
