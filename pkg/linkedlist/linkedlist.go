// Package linkedlist is the heap-allocated counterpart of slablist: every
// element lives in its own node and the list grows without bound.
package linkedlist

import "fmt"

type node[T comparable] struct {
	data T
	next *node[T]
}

type LinkedList[T comparable] struct {
	head   *node[T]
	length int
}

func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) Len() int {
	return l.length
}

// Cap returns -1, the list is unbounded.
func (l *LinkedList[T]) Cap() int {
	return -1
}

// Insert appends data at the tail. It always succeeds.
func (l *LinkedList[T]) Insert(data T) bool {
	n := &node[T]{data: data}
	if l.head == nil {
		l.head = n
	} else {
		current := l.head
		for current.next != nil {
			current = current.next
		}
		current.next = n
	}

	l.length++
	return true
}

func (l *LinkedList[T]) InsertAt(pos int, data T) bool {
	if pos < 0 || pos > l.length {
		return false
	}
	if pos == 0 {
		l.head = &node[T]{data: data, next: l.head}
		l.length++
		return true
	}

	prev := l.at(pos - 1)
	if prev == nil {
		return false
	}

	prev.next = &node[T]{data: data, next: prev.next}
	l.length++
	return true
}

func (l *LinkedList[T]) Get(pos int) (T, bool) {
	n := l.at(pos)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.data, true
}

func (l *LinkedList[T]) Find(v T) bool {
	_, n := l.search(v)
	return n != nil
}

func (l *LinkedList[T]) DeleteElement(v T) bool {
	prev, n := l.search(v)
	if n == nil {
		return false
	}

	l.unlink(prev, n)
	return true
}

func (l *LinkedList[T]) DeleteAt(pos int) bool {
	if pos < 0 || pos >= l.length {
		return false
	}

	var prev *node[T]
	if pos > 0 {
		if prev = l.at(pos - 1); prev == nil || prev.next == nil {
			return false
		}
	}

	n := l.head
	if prev != nil {
		n = prev.next
	}
	l.unlink(prev, n)
	return true
}

func (l *LinkedList[T]) UpdateElement(oldValue, newValue T) bool {
	_, n := l.search(oldValue)
	if n == nil {
		return false
	}

	n.data = newValue
	return true
}

func (l *LinkedList[T]) UpdateAt(pos int, data T) bool {
	n := l.at(pos)
	if n == nil {
		return false
	}

	n.data = data
	return true
}

func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.length = 0
}

// Scan calls fn for every element in order until fn returns true.
func (l *LinkedList[T]) Scan(fn func(pos int, v T) bool) {
	pos := 0
	for n := l.head; n != nil; n = n.next {
		if fn(pos, n.data) {
			return
		}
		pos++
	}
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.data)
	}
	return values
}

func (l *LinkedList[T]) Format(f fmt.State, c rune) {
	f.Write([]byte(fmt.Sprintf("%v", l.Values())))
}

func (l *LinkedList[T]) at(pos int) *node[T] {
	if pos < 0 {
		return nil
	}

	n := l.head
	for ; pos > 0 && n != nil; pos-- {
		n = n.next
	}
	return n
}

func (l *LinkedList[T]) search(v T) (prev, n *node[T]) {
	for n = l.head; n != nil; prev, n = n, n.next {
		if n.data == v {
			return prev, n
		}
	}
	return nil, nil
}

func (l *LinkedList[T]) unlink(prev, n *node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}

	n.next = nil
	l.length--
}
