package freelist

import (
	"go-lists/pkg/stack"

	"github.com/eapache/queue"
)

// Policy selects which free slot is handed out next.
type Policy string

const (
	// LIFO reuses the most recently released slot first.
	LIFO Policy = "lifo"
	// FIFO reuses the least recently released slot first.
	FIFO Policy = "fifo"
)

type lifo struct {
	s stack.Stack[int]
}

func newLifo(capacity int) *lifo {
	return &lifo{stack.New[int](capacity)}
}

// seed pushes in reverse so that slot 0 is popped first.
func (l *lifo) seed(n int) {
	for i := n - 1; i >= 0; i-- {
		l.s.Push(i)
	}
}

func (l *lifo) push(idx int) {
	l.s.Push(idx)
}

func (l *lifo) pop() (int, bool) {
	idx, err := l.s.Pop()
	return idx, err == nil
}

type fifo struct {
	q *queue.Queue
}

func newFifo() *fifo {
	return &fifo{queue.New()}
}

func (f *fifo) seed(n int) {
	for i := 0; i < n; i++ {
		f.q.Add(i)
	}
}

func (f *fifo) push(idx int) {
	f.q.Add(idx)
}

func (f *fifo) pop() (int, bool) {
	if f.q.Length() == 0 {
		return 0, false
	}
	return f.q.Remove().(int), true
}
