package prototype

import (
	"errors"
	"strconv"
)

var (
	// ErrLookupMiss matches any LookupMissError via errors.Is.
	ErrLookupMiss = errors.New("prototype: lookup miss")

	// ErrNilPrototype is returned when the entry stored under a key is nil.
	ErrNilPrototype = errors.New("prototype: nil prototype stored")
)

// LookupMissError is returned when a key is not present in the Registry.
type LookupMissError struct{ Key string }

// Error implements the error interface.
func (e *LookupMissError) Error() string {
	// Example: prototype: key "PROTOTYPE_3" not registered
	return "prototype: key " + strconv.Quote(e.Key) + " not registered"
}

// Is reports whether target is ErrLookupMiss.
func (e *LookupMissError) Is(target error) bool { return target == ErrLookupMiss }
