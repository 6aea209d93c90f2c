package list

import (
	"sync"
	"testing"

	"go-lists/pkg/freelist"
	"go-lists/pkg/linkedlist"
	"go-lists/pkg/slablist"

	"github.com/stretchr/testify/require"
)

var (
	_ List[int] = (*slablist.SlabList[int])(nil)
	_ List[int] = (*linkedlist.LinkedList[int])(nil)
	_ List[int] = (*Locked[int])(nil)
)

type factory func(t *testing.T) List[int]

func factories() map[string]factory {
	slab := func(policy freelist.Policy) factory {
		return func(t *testing.T) List[int] {
			l, err := slablist.New[int](16, &slablist.Options{Reuse: policy})
			require.NoError(t, err)
			return l
		}
	}

	return map[string]factory{
		"slab_lifo": slab(freelist.LIFO),
		"slab_fifo": slab(freelist.FIFO),
		"linked": func(t *testing.T) List[int] {
			return linkedlist.New[int]()
		},
		"locked_slab": func(t *testing.T) List[int] {
			return NewLocked(slab(freelist.LIFO)(t))
		},
	}
}

func fill(t *testing.T, l List[int], values ...int) {
	for _, v := range values {
		require.True(t, l.Insert(v))
	}
}

func TestConformance(t *testing.T) {
	for name, newList := range factories() {
		t.Run(name, func(t *testing.T) {
			l := newList(t)
			fill(t, l, 10, 20, 30)
			require.Equal(t, []int{10, 20, 30}, l.Values())

			require.True(t, l.InsertAt(0, 5))
			v, ok := l.Get(0)
			require.True(t, ok)
			require.Equal(t, 5, v)
			require.Equal(t, []int{5, 10, 20, 30}, l.Values())

			require.True(t, l.InsertAt(2, 15))
			require.True(t, l.InsertAt(l.Len(), 35))
			require.False(t, l.InsertAt(l.Len()+1, 0))
			require.Equal(t, []int{5, 10, 15, 20, 30, 35}, l.Values())

			require.True(t, l.Find(15))
			require.False(t, l.Find(999))
			require.Equal(t, 2, Index(l, 15))
			require.Equal(t, -1, Index(l, 999))

			require.True(t, l.UpdateElement(15, 16))
			require.True(t, l.UpdateAt(0, 4))
			require.False(t, l.UpdateAt(l.Len(), 0))
			require.Equal(t, []int{4, 10, 16, 20, 30, 35}, l.Values())

			require.True(t, l.DeleteAt(1))
			v, ok = l.Get(1)
			require.True(t, ok)
			require.Equal(t, 16, v)

			require.True(t, l.DeleteElement(35))
			require.False(t, l.DeleteElement(35))
			require.False(t, l.DeleteAt(l.Len()))
			require.Equal(t, []int{4, 16, 20, 30}, l.Values())

			for l.Len() > 0 {
				require.True(t, l.DeleteAt(0))
			}
			_, ok = l.Get(0)
			require.False(t, ok)
			fill(t, l, 1)
			require.Equal(t, []int{1}, l.Values())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for name, newList := range factories() {
		t.Run(name, func(t *testing.T) {
			l := newList(t)
			fill(t, l, 1, 2, 3)
			for p := 0; p <= 3; p++ {
				require.True(t, l.InsertAt(p, 42))
				require.True(t, l.DeleteAt(p))
				require.Equal(t, []int{1, 2, 3}, l.Values())
			}
		})
	}
}

func TestEqual(t *testing.T) {
	slab, err := slablist.New[int](4, nil)
	require.NoError(t, err)
	linked := linkedlist.New[int]()
	require.True(t, Equal[int](slab, linked))

	fill(t, slab, 1, 2)
	fill(t, linked, 1)
	require.False(t, Equal[int](slab, linked))

	fill(t, linked, 2)
	require.True(t, Equal[int](slab, linked))

	linked.UpdateAt(1, 3)
	require.False(t, Equal[int](slab, linked))
}

func TestLockedStats(t *testing.T) {
	l := NewLocked[int](linkedlist.New[int]())
	l.Insert(1)
	l.Get(0)
	l.Get(5)
	l.DeleteAt(3)
	l.Len()

	require.Equal(t, Stats{Reads: 3, Writes: 2, Failures: 2}, l.Stats())
}

func TestLockedConcurrent(t *testing.T) {
	slab, err := slablist.New[int](64, nil)
	require.NoError(t, err)
	l := NewLocked[int](slab)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v := g*1000 + i
				if l.Insert(v) {
					l.Find(v)
					l.DeleteElement(v)
				}
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, Stats{Reads: 8 * 200, Writes: 2 * 8 * 200}, l.Stats())
	require.Equal(t, 0, l.Len())
	require.Equal(t, 64, slab.Available())
	require.NoError(t, slab.Check())
}
