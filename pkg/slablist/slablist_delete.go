package slablist

// DeleteElement removes the first element equal to v.
func (l *SlabList[T]) DeleteElement(v T) bool {
	prev, idx := l.search(v)
	if idx == nilIndex {
		return false
	}

	l.unlink(prev, idx)
	return true
}

func (l *SlabList[T]) DeleteAt(pos int) bool {
	prev, idx := l.locate(pos)
	if idx == nilIndex {
		return false
	}

	l.unlink(prev, idx)
	return true
}

// Clear removes every element and returns all slots to the pool.
func (l *SlabList[T]) Clear() {
	for l.occupied(l.head) {
		l.unlink(nilIndex, l.head)
	}
	l.head = nilIndex
}

// unlink detaches idx from the chain, prev being its predecessor or nilIndex
// when idx is the head, and hands the slot back to the pool.
func (l *SlabList[T]) unlink(prev, idx int) {
	next := l.slots[idx].next
	if prev == nilIndex {
		l.head = next
	} else {
		l.slots[prev].next = next
	}

	l.slots[idx] = emptySlot[T]()
	l.length--

	if err := l.free.Release(idx); err != nil {
		l.log.WithError(err).WithField("slot", idx).Error("failed to release slot")
	}
}
