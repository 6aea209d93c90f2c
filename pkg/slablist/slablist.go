// Package slablist implements a singly linked list of bounded capacity on top
// of a preallocated slot array. Links are slot indices, and slots released by
// deletions are recycled through a free pool instead of being reallocated.
package slablist

import (
	"fmt"

	"go-lists/pkg/customerrors"
	"go-lists/pkg/freelist"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func New[T comparable](capacity int, opts *Options) (*SlabList[T], error) {
	if opts == nil {
		opts = &Options{}
	}
	if capacity < 0 {
		return nil, errors.Wrapf(customerrors.ErrInvalidCapacity, "slab list capacity %d", capacity)
	}

	free, err := freelist.New(capacity, opts.Reuse)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create slot freelist")
	}

	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	l := &SlabList[T]{
		slots: make([]slot[T], capacity),
		head:  nilIndex,
		free:  free,
		log:   log,
	}
	for i := range l.slots {
		l.slots[i] = emptySlot[T]()
	}
	return l, nil
}

// SlabList holds up to Cap() elements. Positions passed to its methods are
// ranks along the chain starting at head, unrelated to physical slot
// indices. SlabList is not safe for concurrent use.
type SlabList[T comparable] struct {
	slots  []slot[T]
	head   int // first slot of the chain or nilIndex
	length int
	free   freelist.Freelist
	log    logrus.FieldLogger
}

func (l *SlabList[T]) Len() int {
	return l.length
}

func (l *SlabList[T]) Cap() int {
	return len(l.slots)
}

// Available returns the number of free slots.
func (l *SlabList[T]) Available() int {
	return l.free.Size()
}

// Get returns the element at rank pos.
func (l *SlabList[T]) Get(pos int) (T, bool) {
	_, idx := l.locate(pos)
	if idx == nilIndex {
		var zero T
		return zero, false
	}
	return l.slots[idx].data, true
}

func (l *SlabList[T]) Find(v T) bool {
	_, idx := l.search(v)
	return idx != nilIndex
}

func (l *SlabList[T]) UpdateElement(oldValue, newValue T) bool {
	_, idx := l.search(oldValue)
	if idx == nilIndex {
		return false
	}

	l.slots[idx].data = newValue
	return true
}

func (l *SlabList[T]) UpdateAt(pos int, data T) bool {
	_, idx := l.locate(pos)
	if idx == nilIndex {
		return false
	}

	l.slots[idx].data = data
	return true
}

// Scan calls fn for every element in rank order until fn returns true.
// The list must not be modified from inside fn.
func (l *SlabList[T]) Scan(fn func(pos int, v T) bool) {
	pos := 0
	for idx := l.head; l.occupied(idx); idx = l.slots[idx].next {
		if fn(pos, l.slots[idx].data) {
			return
		}
		pos++
	}
}

func (l *SlabList[T]) Values() []T {
	values := make([]T, 0, l.length)
	l.Scan(func(_ int, v T) bool {
		values = append(values, v)
		return false
	})
	return values
}

func (l *SlabList[T]) Format(f fmt.State, c rune) {
	f.Write([]byte(fmt.Sprintf("%v", l.Values())))
}

func (l *SlabList[T]) occupied(idx int) bool {
	return idx >= 0 && idx < len(l.slots) && l.slots[idx].used
}

// locate walks pos hops from head and returns the slot found there together
// with its predecessor. Both are nilIndex when pos is out of range.
func (l *SlabList[T]) locate(pos int) (prev, idx int) {
	if pos < 0 || pos >= l.length {
		return nilIndex, nilIndex
	}

	prev, idx = nilIndex, l.head
	for ; pos > 0 && l.occupied(idx); pos-- {
		prev, idx = idx, l.slots[idx].next
	}
	if !l.occupied(idx) {
		return nilIndex, nilIndex
	}
	return prev, idx
}

// search returns the first slot holding v and its predecessor.
func (l *SlabList[T]) search(v T) (prev, idx int) {
	prev = nilIndex
	for idx = l.head; l.occupied(idx); prev, idx = idx, l.slots[idx].next {
		if l.slots[idx].data == v {
			return prev, idx
		}
	}
	return nilIndex, nilIndex
}
