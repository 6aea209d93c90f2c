package slablist

// nilIndex marks the absence of a slot in head and next links.
const nilIndex = -1

type slot[T comparable] struct {
	data T
	next int
	used bool
}

func emptySlot[T comparable]() slot[T] {
	return slot[T]{next: nilIndex}
}
