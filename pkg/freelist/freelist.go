// Package freelist tracks the unoccupied slot indices of a fixed-size slot
// array. Every index in [0, capacity) is either held by the pool or handed
// out to the caller, never both.
package freelist

import (
	"go-lists/pkg/customerrors"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSlot   = errors.New("slot index out of bounds")
	ErrDoubleFree    = errors.New("slot is already free")
	ErrUnknownPolicy = errors.New("unknown reuse policy")
)

type Freelist interface {
	// Acquire hands out an unused index, or false when none is left.
	Acquire() (int, bool)
	// Release gives an acquired index back to the pool.
	Release(idx int) error
	Size() int
	Cap() int
	IsFree(idx int) bool
}

// backend decides the order in which released indices are reused.
type backend interface {
	seed(n int)
	push(idx int)
	pop() (int, bool)
}

func New(capacity int, policy Policy) (Freelist, error) {
	if capacity < 0 {
		return nil, errors.Wrapf(customerrors.ErrInvalidCapacity, "freelist capacity %d", capacity)
	}

	var b backend
	switch policy {
	case LIFO, "":
		b = newLifo(capacity)
	case FIFO:
		b = newFifo()
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "%q", string(policy))
	}

	fl := &freelist{
		free:    make([]bool, capacity),
		backend: b,
		size:    capacity,
	}
	for i := range fl.free {
		fl.free[i] = true
	}
	b.seed(capacity)
	return fl, nil
}

type freelist struct {
	free    []bool // free[i] reports whether slot i is held by the pool
	size    int
	backend backend
}

func (fl *freelist) Acquire() (int, bool) {
	idx, ok := fl.backend.pop()
	if !ok {
		return 0, false
	}

	fl.free[idx] = false
	fl.size--
	return idx, true
}

func (fl *freelist) Release(idx int) error {
	if idx < 0 || idx >= len(fl.free) {
		return errors.Wrapf(ErrInvalidSlot, "release %d of %d", idx, len(fl.free))
	}
	if fl.free[idx] {
		return errors.Wrapf(ErrDoubleFree, "release %d", idx)
	}

	fl.free[idx] = true
	fl.size++
	fl.backend.push(idx)
	return nil
}

func (fl *freelist) Size() int {
	return fl.size
}

func (fl *freelist) Cap() int {
	return len(fl.free)
}

func (fl *freelist) IsFree(idx int) bool {
	return idx >= 0 && idx < len(fl.free) && fl.free[idx]
}
