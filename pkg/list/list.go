// Package list defines the operations shared by slablist.SlabList and
// linkedlist.LinkedList, so callers can treat both containers alike.
package list

import (
	"golang.org/x/exp/slices"
)

// List is a singly linked sequence addressed by 0-based rank. Failing
// operations report false and leave the list unchanged.
type List[T comparable] interface {
	Insert(data T) bool
	InsertAt(pos int, data T) bool
	Get(pos int) (T, bool)
	Find(v T) bool
	DeleteElement(v T) bool
	DeleteAt(pos int) bool
	UpdateElement(oldValue, newValue T) bool
	UpdateAt(pos int, data T) bool

	Len() int
	// Cap returns the maximum number of elements, -1 when unbounded.
	Cap() int
	Values() []T
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	return a.Len() == b.Len() && slices.Equal(a.Values(), b.Values())
}

// Index returns the rank of the first element equal to v, or -1.
func Index[T comparable](l List[T], v T) int {
	return slices.Index(l.Values(), v)
}
