/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// goldenRatio32 is the closest odd integer to 2^32/φ, the increment used
// to generate Handle identifiers with near-optimal dispersion across any
// power-of-two table without a secondary mixing step.
const goldenRatio32 uint32 = 0x61C88647

// nextHandleID is the process-global, write-once, monotonically
// advancing identifier counter. It has no synchronization requirements
// beyond atomicity: identifiers are never reused and never compared for
// ordering, only for equality and for their low bits.
var nextHandleID atomic.Uint32

// handleKey is the type-erased identity object a [PerThreadMap] weakly
// references. A [Handle] strongly holds its own *handleKey, so the key
// remains resolvable for exactly as long as the Handle is reachable from
// outside any map.
type handleKey struct {
	// id is the Fibonacci-hashed identifier used for the table slot index
	id uint32
	// debugID is a process-unique diagnostic identifier, unrelated to
	// hashing or equality, used only by String()
	debugID uuid.UUID
	// inherit computes a child thread's starting value from the parent's
	// current value, with the Handle's type parameter erased to any. Nil
	// means the owning Handle does not support inheritance. Set once at
	// construction and never mutated, so it is safe to call without
	// synchronization from map-inherit.go.
	inherit func(parentValue any) (childValue any)
}

func newHandleKey() *handleKey {
	return &handleKey{
		id:      nextHandleID.Add(goldenRatio32),
		debugID: uuid.New(),
	}
}

// Handle is an identity-keyed per-thread binding. The zero value is not
// usable; construct with [NewHandle], [NewHandleWithInitial] or
// [NewInheritableHandle].
type Handle[T any] struct {
	key *handleKey
	// producer provides the value for a thread's first Get or for a Get
	// following a Remove. Nil means "zero value of T".
	producer func() (value T)
	// childValue seeds a child thread's binding from the parent's current
	// value at [SpawnInherited] time. Nil means this Handle does not
	// support inheritance: ChildValue panics with
	// [ErrInheritanceNotSupported], and SpawnInherited leaves the binding
	// out of the child's map.
	childValue func(parent T) (child T)
}

// NewHandle returns a Handle whose InitialValue is the zero value of T.
func NewHandle[T any]() (handle *Handle[T]) {
	return &Handle[T]{key: newHandleKey()}
}

// NewHandleWithInitial returns a Handle whose InitialValue delegates to
// producer. producer must be non-nil.
func NewHandleWithInitial[T any](producer func() T) (handle *Handle[T], err error) {
	if producer == nil {
		err = WithHandleName(ErrInvalidProducer, "NewHandleWithInitial")
		return
	}
	handle = &Handle[T]{key: newHandleKey(), producer: producer}
	return
}

// NewInheritableHandle returns a Handle that opts into the inheritance
// protocol (§4.10): a thread spawned via [SpawnInherited] whose parent
// has a binding for this Handle receives childValue(parentValue) as its
// own starting value. producer and childValue must both be non-nil.
func NewInheritableHandle[T any](producer func() T, childValue func(parent T) T) (handle *Handle[T], err error) {
	if producer == nil || childValue == nil {
		err = WithHandleName(ErrInvalidProducer, "NewInheritableHandle")
		return
	}
	var key = newHandleKey()
	key.inherit = func(parentValue any) (child any) {
		var parent, _ = parentValue.(T)
		return childValue(parent)
	}
	handle = &Handle[T]{key: key, producer: producer, childValue: childValue}
	return
}

// String returns a diagnostic representation. Not used for equality or
// hashing.
func (h *Handle[T]) String() (s string) {
	return "Handle#" + h.key.debugID.String()
}

// InitialValue returns the value used to seed a thread's first binding.
// The default is the zero value of T unless a producer was supplied at
// construction.
func (h *Handle[T]) InitialValue() (value T) {
	if h.producer != nil {
		value = h.producer()
	}
	return
}

// ChildValue computes a child thread's starting value from the parent's
// current value. Handles not constructed with [NewInheritableHandle]
// panic with [ErrInheritanceNotSupported] wrapped in a handle-name
// annotation. [SpawnInherited] never calls this directly — it consults
// handleKey.inherit, which is nil for exactly the Handles that would
// panic here — so a base Handle is silently left out of a child's map
// rather than aborting the spawn.
func (h *Handle[T]) ChildValue(parent T) (child T) {
	if h.childValue == nil {
		panic(WithHandleName(ErrInheritanceNotSupported, h.String()))
	}
	return h.childValue(parent)
}
