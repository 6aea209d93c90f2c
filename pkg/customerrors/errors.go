// Package customerrors defines the sentinel errors shared by the list
// containers and their supporting packages.
package customerrors

import (
	"errors"
)

var (
	// ErrNotFound is reported when a value or position does not correspond
	// to any element of the list.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange is reported for positions outside the valid rank range.
	ErrOutOfRange = errors.New("position out of range")

	// ErrCapacityExhausted is reported when a fixed-capacity list has no
	// free slot left.
	ErrCapacityExhausted = errors.New("capacity exhausted")

	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrCorrupted is returned by consistency checks when the slot chain or
	// the free pool violate their invariants.
	ErrCorrupted = errors.New("list corrupted")
)
