package slablist

import (
	"go-lists/pkg/customerrors"

	"github.com/pkg/errors"
)

// Check verifies that the chain and the free pool agree: every chained slot
// is occupied and reachable once, every other slot is free, and the chain
// length matches Len(). It never follows more than Cap() links.
func (l *SlabList[T]) Check() error {
	seen := make([]bool, len(l.slots))
	n := 0

	for idx := l.head; idx != nilIndex; idx = l.slots[idx].next {
		if idx < 0 || idx >= len(l.slots) {
			return errors.Wrapf(customerrors.ErrCorrupted, "link to slot %d outside [0, %d)", idx, len(l.slots))
		}
		if seen[idx] {
			return errors.Wrapf(customerrors.ErrCorrupted, "slot %d is linked twice", idx)
		}
		if !l.slots[idx].used {
			return errors.Wrapf(customerrors.ErrCorrupted, "chain reaches empty slot %d", idx)
		}
		if l.free.IsFree(idx) {
			return errors.Wrapf(customerrors.ErrCorrupted, "slot %d is both chained and free", idx)
		}
		seen[idx] = true
		n++
	}

	if n != l.length {
		return errors.Wrapf(customerrors.ErrCorrupted, "chain holds %d slots, length is %d", n, l.length)
	}

	for i := range l.slots {
		switch {
		case l.slots[i].used && !seen[i]:
			return errors.Wrapf(customerrors.ErrCorrupted, "slot %d is occupied but unreachable", i)
		case !l.slots[i].used && !l.free.IsFree(i):
			return errors.Wrapf(customerrors.ErrCorrupted, "slot %d is neither chained nor free", i)
		}
	}

	if n+l.free.Size() != len(l.slots) {
		return errors.Wrapf(customerrors.ErrCorrupted, "%d chained and %d free slots for capacity %d", n, l.free.Size(), len(l.slots))
	}
	return nil
}
