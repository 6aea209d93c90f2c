package list

import (
	"sync"

	"go.uber.org/atomic"
)

type Stats struct {
	Reads    int64
	Writes   int64
	Failures int64
}

// Locked serializes every call to the wrapped list behind one mutex.
// Stats can be read without taking the lock.
type Locked[T comparable] struct {
	m sync.Mutex
	l List[T]

	reads    atomic.Int64
	writes   atomic.Int64
	failures atomic.Int64
}

func NewLocked[T comparable](l List[T]) *Locked[T] {
	return &Locked[T]{l: l}
}

func (s *Locked[T]) Stats() Stats {
	return Stats{
		Reads:    s.reads.Load(),
		Writes:   s.writes.Load(),
		Failures: s.failures.Load(),
	}
}

func (s *Locked[T]) read(ok bool) bool {
	s.reads.Inc()
	if !ok {
		s.failures.Inc()
	}
	return ok
}

func (s *Locked[T]) write(ok bool) bool {
	s.writes.Inc()
	if !ok {
		s.failures.Inc()
	}
	return ok
}

func (s *Locked[T]) Insert(data T) bool {
	s.m.Lock()
	defer s.m.Unlock()

	return s.write(s.l.Insert(data))
}

func (s *Locked[T]) InsertAt(pos int, data T) bool {
	s.m.Lock()
	defer s.m.Unlock()

	return s.write(s.l.InsertAt(pos, data))
}

func (s *Locked[T]) Get(pos int) (T, bool) {
	s.m.Lock()
	defer s.m.Unlock()

	v, ok := s.l.Get(pos)
	return v, s.read(ok)
}

func (s *Locked[T]) Find(v T) bool {
	s.m.Lock()
	defer s.m.Unlock()

	return s.read(s.l.Find(v))
}

func (s *Locked[T]) DeleteElement(v T) bool {
	s.m.Lock()
	defer s.m.Unlock()

	return s.write(s.l.DeleteElement(v))
}

func (s *Locked[T]) DeleteAt(pos int) bool {
	s.m.Lock()
	defer s.m.Unlock()

	return s.write(s.l.DeleteAt(pos))
}

func (s *Locked[T]) UpdateElement(oldValue, newValue T) bool {
	s.m.Lock()
	defer s.m.Unlock()

	return s.write(s.l.UpdateElement(oldValue, newValue))
}

func (s *Locked[T]) UpdateAt(pos int, data T) bool {
	s.m.Lock()
	defer s.m.Unlock()

	return s.write(s.l.UpdateAt(pos, data))
}

func (s *Locked[T]) Len() int {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads.Inc()
	return s.l.Len()
}

func (s *Locked[T]) Cap() int {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads.Inc()
	return s.l.Cap()
}

func (s *Locked[T]) Values() []T {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads.Inc()
	return s.l.Values()
}
