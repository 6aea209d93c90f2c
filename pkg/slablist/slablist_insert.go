package slablist

// Insert appends data at the tail. It reports false when every slot is in
// use, leaving the list untouched.
func (l *SlabList[T]) Insert(data T) bool {
	return l.InsertAt(l.length, data)
}

// InsertAt places data so that it ends up at rank pos. pos may range from 0
// (new head) to Len() (append).
func (l *SlabList[T]) InsertAt(pos int, data T) bool {
	if pos < 0 || pos > l.length {
		return false
	}

	prev := nilIndex
	if pos > 0 {
		if _, prev = l.locate(pos - 1); prev == nilIndex {
			return false
		}
	}

	idx, ok := l.free.Acquire()
	if !ok {
		l.log.WithField("capacity", len(l.slots)).Debug("slab list is full, insert rejected")
		return false
	}

	next := l.head
	if prev != nilIndex {
		next = l.slots[prev].next
	}

	l.slots[idx] = slot[T]{data: data, next: next, used: true}
	if prev == nilIndex {
		l.head = idx
	} else {
		l.slots[prev].next = idx
	}

	l.length++
	return true
}
